// Package project renames a React Native app: its iOS folders, the references
// inside them, its manifests and its bundle identifier.
package project

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/ios"
	"github.com/jakoblorz/rnsetup/internal/manifest"
	"github.com/jakoblorz/rnsetup/internal/models"
	"github.com/jakoblorz/rnsetup/internal/rewrite"
)

// Summary records what a rename changed.
type Summary struct {
	Identity models.ProjectIdentity

	// SkipReason is set when nothing was renamed.
	SkipReason string

	RenamedFolders []string
	RewrittenFiles []string
	SchemeRenamed  bool
	PodfileUpdated bool
	PackageUpdated bool
	AppUpdated     bool
	BundleUpdated  bool
	RemovedCaches  []string
}

// Skipped reports whether the rename was skipped as a whole.
func (s *Summary) Skipped() bool {
	return s.SkipReason != ""
}

// Renamer runs the rename sequence against one app layout.
type Renamer struct {
	fs       filesystem.FileSystem
	layout   *models.Layout
	logger   *log.Logger
	platform *ios.Platform
	walker   *rewrite.Walker
}

// Option configures a Renamer.
type Option func(*Renamer)

// WithWalker replaces the default reference walker.
func WithWalker(w *rewrite.Walker) Option {
	return func(r *Renamer) {
		r.walker = w
	}
}

// NewRenamer creates a Renamer.
func NewRenamer(fs filesystem.FileSystem, layout *models.Layout, logger *log.Logger, options ...Option) *Renamer {
	r := &Renamer{
		fs:       fs,
		layout:   layout,
		logger:   logger,
		platform: ios.NewPlatform(fs, layout, logger),
		walker:   rewrite.NewWalker(fs),
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Rename renames the project to newName and sets bundleID.
//
// An undetectable project name or a missing platform directory skips the whole
// rename without touching the filesystem. Any later failure is logged and
// returned; completed steps are not rolled back.
func (r *Renamer) Rename(newName, bundleID string) (*Summary, error) {
	summary := &Summary{}

	oldName, found, err := r.platform.DetectProjectName()
	if err != nil {
		return summary, r.fail(fmt.Errorf("failed to detect project name: %w", err))
	}
	if !found {
		r.logger.Warn("Could not detect current iOS project name, skipping rename", "dir", r.layout.PlatformPath)
		summary.SkipReason = "project name not detected"
		return summary, nil
	}

	if !r.platform.Exists() {
		r.logger.Warn("iOS folder not found, skipping rename", "dir", r.layout.PlatformPath)
		summary.SkipReason = "platform directory missing"
		return summary, nil
	}

	id := models.ProjectIdentity{OldName: oldName, NewName: newName}
	summary.Identity = id
	r.logger.Info("renaming iOS project", "from", id.OldName, "to", id.NewName)

	if err := r.renamePlatform(id, summary); err != nil {
		return summary, r.fail(err)
	}

	if err := r.updateManifests(id, summary); err != nil {
		return summary, r.fail(err)
	}

	if summary.BundleUpdated, err = r.platform.UpdateBundleIdentifier(id.NewName, bundleID); err != nil {
		return summary, r.fail(err)
	}

	if summary.RemovedCaches, err = ClearCaches(r.fs, r.layout, r.logger); err != nil {
		return summary, r.fail(err)
	}

	return summary, nil
}

func (r *Renamer) renamePlatform(id models.ProjectIdentity, summary *Summary) error {
	var err error

	if summary.RenamedFolders, err = r.platform.RenameFolders(id); err != nil {
		return err
	}

	result, err := r.platform.RewriteReferences(id, r.walker)
	if result != nil {
		summary.RewrittenFiles = result.Rewritten
	}
	if err != nil {
		return err
	}

	if summary.SchemeRenamed, err = r.platform.RenameScheme(id); err != nil {
		return err
	}

	if summary.PodfileUpdated, err = r.platform.UpdatePodfile(id); err != nil {
		return err
	}

	return nil
}

func (r *Renamer) updateManifests(id models.ProjectIdentity, summary *Summary) error {
	var err error

	if summary.PackageUpdated, err = manifest.UpdatePackageName(r.fs, r.layout.PackageJSON(), id.NewName); err != nil {
		return err
	}
	if summary.PackageUpdated {
		r.logger.Info("updated package.json name", "name", id.NewName)
	}

	if summary.AppUpdated, err = manifest.UpdateAppName(r.fs, r.layout.AppJSON(), id.NewName); err != nil {
		return err
	}
	if summary.AppUpdated {
		r.logger.Info("updated app.json name", "name", id.NewName)
	}

	return nil
}

func (r *Renamer) fail(err error) error {
	r.logger.Error("Error renaming iOS project", "err", err)
	return err
}
