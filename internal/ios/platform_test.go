package ios

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/models"
	"github.com/jakoblorz/rnsetup/internal/rewrite"
	"github.com/stretchr/testify/require"
)

func newPlatform(t *testing.T) (*Platform, *filesystem.MockFileSystem) {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/app/ios/OldApp/AppDelegate.swift", []byte("// OldApp"))
	fs.AddFile("/app/ios/OldApp/Info.plist", []byte("<string>com.old.app</string>"))
	fs.AddFile("/app/ios/OldApp.xcodeproj/project.pbxproj", []byte("OldApp.app"))
	fs.AddFile("/app/ios/OldApp.xcodeproj/xcshareddata/xcschemes/OldApp.xcscheme", []byte(`BuildableName = "OldApp.app"`))
	fs.AddFile("/app/ios/Podfile", []byte("target 'OldApp' do\nend\n"))

	layout := models.NewLayout("/app", "ios", "vendor/bundle")
	return NewPlatform(fs, layout, log.New(io.Discard)), fs
}

var oldToNew = models.ProjectIdentity{OldName: "OldApp", NewName: "NewApp"}

func TestPlatform_RenameFolders(t *testing.T) {
	p, fs := newPlatform(t)
	fs.AddFile("/app/ios/OldApp.xcworkspace/contents.xcworkspacedata", []byte(""))

	renamed, err := p.RenameFolders(oldToNew)
	require.NoError(t, err)
	require.Equal(t, []string{"OldApp", "OldApp.xcodeproj", "OldApp.xcworkspace"}, renamed)

	require.True(t, fs.IsDir("/app/ios/NewApp"))
	require.True(t, fs.Exists("/app/ios/NewApp/AppDelegate.swift"))
	require.True(t, fs.IsDir("/app/ios/NewApp.xcodeproj"))
	require.True(t, fs.IsDir("/app/ios/NewApp.xcworkspace"))
	require.False(t, fs.Exists("/app/ios/OldApp"))
	require.False(t, fs.Exists("/app/ios/OldApp.xcodeproj"))
	require.False(t, fs.Exists("/app/ios/OldApp.xcworkspace"))
}

func TestPlatform_RenameFolders_MissingWorkspaceIsFine(t *testing.T) {
	p, _ := newPlatform(t)

	renamed, err := p.RenameFolders(oldToNew)
	require.NoError(t, err)
	require.Equal(t, []string{"OldApp", "OldApp.xcodeproj"}, renamed)
}

func TestPlatform_RenameFolders_Idempotent(t *testing.T) {
	p, _ := newPlatform(t)

	_, err := p.RenameFolders(oldToNew)
	require.NoError(t, err)

	renamed, err := p.RenameFolders(oldToNew)
	require.NoError(t, err)
	require.Empty(t, renamed)

	renamed, err = p.RenameFolders(models.ProjectIdentity{OldName: "NewApp", NewName: "NewApp"})
	require.NoError(t, err)
	require.Empty(t, renamed)
}

func TestPlatform_RenameFolders_ErrorStopsSequence(t *testing.T) {
	p, fs := newPlatform(t)
	fs.RenameErrors["/app/ios/OldApp.xcodeproj"] = errors.New("permission denied")

	renamed, err := p.RenameFolders(oldToNew)
	require.Error(t, err)
	require.Contains(t, err.Error(), "OldApp.xcodeproj")
	require.Equal(t, []string{"OldApp"}, renamed)

	// no rollback: the first rename stays
	require.True(t, fs.IsDir("/app/ios/NewApp"))
}

func TestPlatform_RenameScheme(t *testing.T) {
	p, fs := newPlatform(t)

	_, err := p.RenameFolders(oldToNew)
	require.NoError(t, err)

	changed, err := p.RenameScheme(oldToNew)
	require.NoError(t, err)
	require.True(t, changed)

	require.False(t, fs.Exists("/app/ios/NewApp.xcodeproj/xcshareddata/xcschemes/OldApp.xcscheme"))
	data, err := fs.ReadFile("/app/ios/NewApp.xcodeproj/xcshareddata/xcschemes/NewApp.xcscheme")
	require.NoError(t, err)
	require.Equal(t, `BuildableName = "NewApp.app"`, string(data))

	changed, err = p.RenameScheme(oldToNew)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestPlatform_RenameScheme_SameNameKeepsFile(t *testing.T) {
	p, fs := newPlatform(t)
	same := models.ProjectIdentity{OldName: "OldApp", NewName: "OldApp"}

	changed, err := p.RenameScheme(same)
	require.NoError(t, err)
	require.False(t, changed)
	require.True(t, fs.Exists("/app/ios/OldApp.xcodeproj/xcshareddata/xcschemes/OldApp.xcscheme"))
}

func TestPlatform_UpdatePodfile(t *testing.T) {
	p, fs := newPlatform(t)

	changed, err := p.UpdatePodfile(oldToNew)
	require.NoError(t, err)
	require.True(t, changed)

	data, err := fs.ReadFile("/app/ios/Podfile")
	require.NoError(t, err)
	require.Equal(t, "target 'NewApp' do\nend\n", string(data))

	changed, err = p.UpdatePodfile(oldToNew)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestPlatform_UpdatePodfile_Missing(t *testing.T) {
	p, fs := newPlatform(t)
	require.NoError(t, fs.Remove("/app/ios/Podfile"))

	changed, err := p.UpdatePodfile(oldToNew)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestPlatform_RewriteReferences(t *testing.T) {
	p, fs := newPlatform(t)

	result, err := p.RewriteReferences(oldToNew, rewrite.NewWalker(fs))
	require.NoError(t, err)
	require.Len(t, result.Rewritten, 3)

	data, err := fs.ReadFile("/app/ios/OldApp/AppDelegate.swift")
	require.NoError(t, err)
	require.Equal(t, "// NewApp", string(data))
}

func TestPlatform_UpdateBundleIdentifier(t *testing.T) {
	p, fs := newPlatform(t)

	_, err := p.RenameFolders(oldToNew)
	require.NoError(t, err)

	changed, err := p.UpdateBundleIdentifier("NewApp", "com.acme.newapp")
	require.NoError(t, err)
	require.True(t, changed)

	data, err := fs.ReadFile("/app/ios/NewApp/Info.plist")
	require.NoError(t, err)
	require.Equal(t, "<string>com.acme.newapp</string>", string(data))
}
