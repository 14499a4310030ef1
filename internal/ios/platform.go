package ios

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/models"
	"github.com/jakoblorz/rnsetup/internal/rewrite"
)

// Platform performs the rename steps that touch the iOS platform directory.
type Platform struct {
	fs     filesystem.FileSystem
	layout *models.Layout
	logger *log.Logger
}

// NewPlatform creates a Platform for layout.
func NewPlatform(fs filesystem.FileSystem, layout *models.Layout, logger *log.Logger) *Platform {
	return &Platform{
		fs:     fs,
		layout: layout,
		logger: logger,
	}
}

// DetectProjectName runs DetectProjectName on the platform directory.
func (p *Platform) DetectProjectName() (string, bool, error) {
	return DetectProjectName(p.fs, p.layout.PlatformPath)
}

// Exists reports whether the platform directory is present.
func (p *Platform) Exists() bool {
	return p.fs.IsDir(p.layout.PlatformPath)
}

// RenameFolders renames the main source folder, the project bundle and the
// workspace bundle, in that order. Each one is optional. It returns the
// display names of the folders it renamed.
func (p *Platform) RenameFolders(id models.ProjectIdentity) ([]string, error) {
	if id.Unchanged() {
		return nil, nil
	}

	moves := []struct {
		from, to string
		label    string
	}{
		{p.layout.SourceDir(id.OldName), p.layout.SourceDir(id.NewName), id.OldName},
		{p.layout.XcodeProject(id.OldName), p.layout.XcodeProject(id.NewName), id.OldName + models.XcodeProjectSuffix},
		{p.layout.XcodeWorkspace(id.OldName), p.layout.XcodeWorkspace(id.NewName), id.OldName + models.XcodeWorkspaceSuffix},
	}

	var renamed []string
	for _, m := range moves {
		if !p.fs.Exists(m.from) {
			p.logger.Debug("skipping missing folder", "path", m.from)
			continue
		}
		if err := p.fs.Rename(m.from, m.to); err != nil {
			return renamed, fmt.Errorf("failed to rename %s: %w", m.label, err)
		}
		p.logger.Info("renamed folder", "from", m.label, "to", m.to)
		renamed = append(renamed, m.label)
	}

	return renamed, nil
}

// RewriteReferences walks the platform directory and replaces the old name
// with the new one in every allow-listed file.
func (p *Platform) RewriteReferences(id models.ProjectIdentity, walker *rewrite.Walker) (*rewrite.Result, error) {
	result, err := walker.Walk(p.layout.PlatformPath, id.OldName, id.NewName)
	if err != nil {
		return result, fmt.Errorf("failed to update references: %w", err)
	}

	for _, path := range result.Rewritten {
		p.logger.Info("updated references", "file", path)
	}

	return result, nil
}

// RenameScheme moves the old-named shared scheme inside the (already renamed)
// project bundle to the new name, rewriting its content on the way.
func (p *Platform) RenameScheme(id models.ProjectIdentity) (bool, error) {
	if id.Unchanged() {
		return false, nil
	}

	oldPath := p.layout.SchemeFile(id.NewName, id.OldName)
	newPath := p.layout.SchemeFile(id.NewName, id.NewName)
	if !p.fs.Exists(oldPath) {
		return false, nil
	}

	data, err := p.fs.ReadFile(oldPath)
	if err != nil {
		return false, fmt.Errorf("failed to read scheme: %w", err)
	}

	updated, _ := rewrite.Replace(data, id.OldName, id.NewName)
	if err := filesystem.WriteFileAtomic(p.fs, newPath, updated, filesystem.FileMode(p.fs, oldPath, 0644)); err != nil {
		return false, fmt.Errorf("failed to write scheme: %w", err)
	}

	if err := p.fs.Remove(oldPath); err != nil {
		return false, fmt.Errorf("failed to remove old scheme: %w", err)
	}

	p.logger.Info("renamed scheme", "from", id.OldName+models.SchemeSuffix, "to", id.NewName+models.SchemeSuffix)
	return true, nil
}

// UpdatePodfile replaces the old name in the Podfile, if there is one.
func (p *Platform) UpdatePodfile(id models.ProjectIdentity) (bool, error) {
	path := p.layout.Podfile()
	if !p.fs.Exists(path) {
		return false, nil
	}

	changed, err := rewrite.RewriteFile(p.fs, path, id.OldName, id.NewName)
	if err != nil {
		return false, fmt.Errorf("failed to update Podfile: %w", err)
	}
	if changed {
		p.logger.Info("updated Podfile references", "name", id.NewName)
	}

	return changed, nil
}

// UpdateBundleIdentifier writes bundleID into the Info.plist of the project
// named name.
func (p *Platform) UpdateBundleIdentifier(name, bundleID string) (bool, error) {
	changed, err := UpdateBundleIdentifier(p.fs, p.layout.InfoPlist(name), bundleID)
	if err != nil {
		return false, fmt.Errorf("failed to update bundle identifier: %w", err)
	}
	if changed {
		p.logger.Info("updated Info.plist bundle identifier", "bundle", bundleID)
	}

	return changed, nil
}
