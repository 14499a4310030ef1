package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	fs := NewMockFileSystem()
	fs.AddFile("/app/package.json", []byte("old"))

	require.NoError(t, WriteFileAtomic(fs, "/app/package.json", []byte("new"), 0644))

	data, err := fs.ReadFile("/app/package.json")
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
	require.Equal(t, []string{"package.json"}, fs.Paths("/app"))
}

func TestWriteFileAtomic_WriteFailureLeavesOriginal(t *testing.T) {
	fs := NewMockFileSystem()
	fs.AddFile("/app/package.json", []byte("old"))
	fs.WriteFileErrors["/app"] = errors.New("disk full")

	err := WriteFileAtomic(fs, "/app/package.json", []byte("new"), 0644)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")

	data, err := fs.ReadFile("/app/package.json")
	require.NoError(t, err)
	require.Equal(t, "old", string(data))
}

func TestWriteFileAtomic_RenameFailureRemovesTemp(t *testing.T) {
	fs := NewMockFileSystem()
	fs.AddFile("/app/package.json", []byte("old"))
	// a directory at the destination makes the final rename fail
	fs.AddDir("/app/app.json")
	fs.AddFile("/app/app.json/keep", []byte(""))

	err := WriteFileAtomic(fs, "/app/app.json", []byte("new"), 0644)
	require.Error(t, err)

	for _, p := range fs.Paths("/app") {
		require.False(t, strings.Contains(p, ".tmp-"), "temp file left behind: %s", p)
	}
}

func TestWriteFileAtomic_OS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Podfile")
	require.NoError(t, os.WriteFile(path, []byte("target 'OldApp'"), 0600))

	osfs := NewOSFileSystem()
	require.NoError(t, WriteFileAtomic(osfs, path, []byte("target 'NewApp'"), FileMode(osfs, path, 0644)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "target 'NewApp'", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileMode_Fallback(t *testing.T) {
	fs := NewMockFileSystem()
	require.Equal(t, os.FileMode(0640), FileMode(fs, "/missing", 0640))

	fs.AddDir("/workspace")
	require.NoError(t, fs.WriteFile("/workspace/x", []byte(""), 0600))
	require.Equal(t, os.FileMode(0600), FileMode(fs, "/workspace/x", 0640))
}
