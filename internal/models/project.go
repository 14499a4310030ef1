package models

import "path/filepath"

const (
	// XcodeProjectSuffix identifies the IDE project bundle.
	XcodeProjectSuffix = ".xcodeproj"

	// XcodeWorkspaceSuffix identifies the optional workspace bundle.
	XcodeWorkspaceSuffix = ".xcworkspace"

	// SchemeSuffix identifies shared scheme files.
	SchemeSuffix = ".xcscheme"

	DefaultPlatformDir = "ios"
	DefaultVendorDir   = "vendor/bundle"
)

// Layout resolves every fixed path of a React Native app relative to its root.
type Layout struct {
	// RootPath is the absolute path to the app root (the directory with package.json)
	RootPath string

	// PlatformPath is the absolute path to the iOS platform directory
	PlatformPath string

	// VendorBundlePath is the absolute path to the Ruby vendor cache
	VendorBundlePath string
}

// NewLayout creates a Layout. platformDir and vendorDir are relative to root.
func NewLayout(root, platformDir, vendorDir string) *Layout {
	if platformDir == "" {
		platformDir = DefaultPlatformDir
	}
	if vendorDir == "" {
		vendorDir = DefaultVendorDir
	}

	return &Layout{
		RootPath:         root,
		PlatformPath:     filepath.Join(root, platformDir),
		VendorBundlePath: filepath.Join(root, vendorDir),
	}
}

func (l *Layout) PackageJSON() string { return filepath.Join(l.RootPath, "package.json") }
func (l *Layout) AppJSON() string     { return filepath.Join(l.RootPath, "app.json") }
func (l *Layout) Podfile() string     { return filepath.Join(l.PlatformPath, "Podfile") }
func (l *Layout) PodfileLock() string { return filepath.Join(l.PlatformPath, "Podfile.lock") }
func (l *Layout) PodsDir() string     { return filepath.Join(l.PlatformPath, "Pods") }

// SourceDir is the main source folder named after the project.
func (l *Layout) SourceDir(name string) string {
	return filepath.Join(l.PlatformPath, name)
}

func (l *Layout) XcodeProject(name string) string {
	return filepath.Join(l.PlatformPath, name+XcodeProjectSuffix)
}

func (l *Layout) XcodeWorkspace(name string) string {
	return filepath.Join(l.PlatformPath, name+XcodeWorkspaceSuffix)
}

// SchemeFile is the shared scheme file inside the project bundle of project.
func (l *Layout) SchemeFile(project, scheme string) string {
	return filepath.Join(l.XcodeProject(project), "xcshareddata", "xcschemes", scheme+SchemeSuffix)
}

// InfoPlist is the Info.plist inside the main source folder.
func (l *Layout) InfoPlist(name string) string {
	return filepath.Join(l.SourceDir(name), "Info.plist")
}
