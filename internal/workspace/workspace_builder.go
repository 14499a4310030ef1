package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/rnsetup/internal/filesystem"
)

// WorkspaceBuilder helps create test React Native apps on a MockFileSystem.
type WorkspaceBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewWorkspaceBuilder creates a new WorkspaceBuilder
func NewWorkspaceBuilder(root string) *WorkspaceBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &WorkspaceBuilder{
		fs:   fs,
		root: root,
	}
}

func (wb *WorkspaceBuilder) ios(parts ...string) string {
	return filepath.Join(append([]string{wb.root, "ios"}, parts...)...)
}

// AddPackageJSON adds a package.json with the given name.
func (wb *WorkspaceBuilder) AddPackageJSON(name string) *WorkspaceBuilder {
	content := fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"0.0.1\",\n  \"private\": true\n}\n", name)
	wb.fs.AddFile(filepath.Join(wb.root, "package.json"), []byte(content))
	return wb
}

// AddAppJSON adds an app.json with the given name and display name.
func (wb *WorkspaceBuilder) AddAppJSON(name, displayName string) *WorkspaceBuilder {
	content := fmt.Sprintf("{\n  \"name\": %q,\n  \"displayName\": %q\n}\n", name, displayName)
	wb.fs.AddFile(filepath.Join(wb.root, "app.json"), []byte(content))
	return wb
}

// AddIOSProject adds the source folder, project bundle and shared scheme of
// an iOS project called name.
func (wb *WorkspaceBuilder) AddIOSProject(name, bundleID string) *WorkspaceBuilder {
	wb.fs.AddFile(wb.ios(name, "AppDelegate.swift"),
		[]byte(fmt.Sprintf("import UIKit\n\n@main\nclass AppDelegate: RCTAppDelegate {\n  override func application() {\n    self.moduleName = \"%s\"\n  }\n}\n", name)))
	wb.fs.AddFile(wb.ios(name, "Info.plist"),
		[]byte(fmt.Sprintf("<plist version=\"1.0\">\n<dict>\n\t<key>CFBundleDisplayName</key>\n\t<string>%s</string>\n\t<key>CFBundleIdentifier</key>\n\t<string>%s</string>\n</dict>\n</plist>\n", name, bundleID)))
	wb.fs.AddFile(wb.ios(name, "LaunchScreen.storyboard"),
		[]byte(fmt.Sprintf("<label text=\"%s\"/>\n", name)))
	wb.fs.AddFile(wb.ios(name+".xcodeproj", "project.pbxproj"),
		[]byte(fmt.Sprintf("/* %s.app */\nproductName = %s;\n", name, name)))
	wb.fs.AddFile(wb.ios(name+".xcodeproj", "xcshareddata", "xcschemes", name+".xcscheme"),
		[]byte(fmt.Sprintf("<BuildableReference BuildableName = \"%s.app\" BlueprintName = \"%s\"/>\n", name, name)))
	return wb
}

// AddXcodeWorkspace adds a workspace bundle referencing the project.
func (wb *WorkspaceBuilder) AddXcodeWorkspace(name string) *WorkspaceBuilder {
	wb.fs.AddFile(wb.ios(name+".xcworkspace", "contents.xcworkspacedata"),
		[]byte(fmt.Sprintf("<FileRef location = \"group:%s.xcodeproj\"></FileRef>\n", name)))
	return wb
}

// AddPodfile adds a Podfile targeting name.
func (wb *WorkspaceBuilder) AddPodfile(name string) *WorkspaceBuilder {
	wb.fs.AddFile(wb.ios("Podfile"), []byte(fmt.Sprintf("target '%s' do\n  use_react_native!\nend\n", name)))
	return wb
}

// AddCaches adds Podfile.lock, Pods/ and vendor/bundle.
func (wb *WorkspaceBuilder) AddCaches(name string) *WorkspaceBuilder {
	wb.fs.AddFile(wb.ios("Podfile.lock"), []byte("PODFILE CHECKSUM: abc\n"))
	wb.fs.AddFile(wb.ios("Pods", "Target Support Files", "Pods-"+name, "Pods-"+name+".debug.xcconfig"), []byte(name))
	wb.fs.AddFile(filepath.Join(wb.root, "vendor", "bundle", "ruby", "3.2.0", "bin", "pod"), []byte("#!/usr/bin/env ruby\n"))
	return wb
}

// AddApp adds a complete app named name: manifests, iOS project, workspace,
// Podfile and caches.
func (wb *WorkspaceBuilder) AddApp(name, bundleID string) *WorkspaceBuilder {
	return wb.AddPackageJSON(name).
		AddAppJSON(name, name).
		AddIOSProject(name, bundleID).
		AddXcodeWorkspace(name).
		AddPodfile(name).
		AddCaches(name)
}

// Build returns the constructed filesystem.
func (wb *WorkspaceBuilder) Build() *filesystem.MockFileSystem {
	return wb.fs
}
