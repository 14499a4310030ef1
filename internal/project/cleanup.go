package project

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/models"
)

// ClearCaches deletes the dependency lock file and caches that embed the old
// project name: Podfile.lock, Pods/ and the Ruby vendor bundle. Missing
// entries are skipped. It returns the removed paths relative to the app root.
func ClearCaches(fs filesystem.FileSystem, layout *models.Layout, logger *log.Logger) ([]string, error) {
	var removed []string

	if fs.Exists(layout.PodfileLock()) {
		if err := fs.Remove(layout.PodfileLock()); err != nil {
			return removed, fmt.Errorf("failed to delete Podfile.lock: %w", err)
		}
		removed = append(removed, relativeTo(layout.RootPath, layout.PodfileLock()))
	}

	for _, dir := range []string{layout.PodsDir(), layout.VendorBundlePath} {
		if !fs.Exists(dir) {
			continue
		}
		if err := fs.RemoveAll(dir); err != nil {
			return removed, fmt.Errorf("failed to delete %s: %w", relativeTo(layout.RootPath, dir), err)
		}
		removed = append(removed, relativeTo(layout.RootPath, dir))
	}

	for _, path := range removed {
		logger.Info("deleted", "path", path)
	}

	return removed, nil
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
