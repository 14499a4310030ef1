// Package ios knows the layout of a React Native iOS platform directory.
package ios

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/models"
)

// AppDelegateFiles are the application delegate sources that mark the main
// source folder, checked in order inside each candidate folder.
var AppDelegateFiles = []string{
	"AppDelegate.swift",
	"AppDelegate.mm",
	"AppDelegate.m",
}

// DetectProjectName infers the current project name from platformDir.
//
// The first child directory ending in .xcodeproj wins. Otherwise the first
// child directory holding an application delegate wins. A missing
// platformDir is reported as not found without listing anything.
func DetectProjectName(fs filesystem.FileSystem, platformDir string) (string, bool, error) {
	if !fs.IsDir(platformDir) {
		return "", false, nil
	}

	entries, err := fs.ReadDir(platformDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to list %s: %w", platformDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), models.XcodeProjectSuffix) {
			name := strings.TrimSuffix(entry.Name(), models.XcodeProjectSuffix)
			if name != "" {
				return name, true, nil
			}
		}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, delegate := range AppDelegateFiles {
			if fs.Exists(filepath.Join(platformDir, entry.Name(), delegate)) {
				return entry.Name(), true, nil
			}
		}
	}

	return "", false, nil
}
