package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string

	// Writes counts successful WriteFile calls per path.
	Writes map[string]int

	// Hooks for testing error scenarios, keyed by clean path. A
	// WriteFileErrors key may also name a directory, failing every write
	// directly inside it.
	WriteFileErrors map[string]error
	RenameErrors    map[string]error
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
	Target  string // symlink target, only set when Mode has fs.ModeSymlink
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	info fs.FileInfo
}

func (m *mockDirEntry) Name() string               { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode          { return m.info.Mode().Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:           make(map[string]*MockFile),
		currentDir:      "/workspace",
		Writes:          make(map[string]int),
		WriteFileErrors: make(map[string]error),
		RenameErrors:    make(map[string]error),
	}
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
	}
	mfs.ensureParents(cleanPath)
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
	mfs.ensureParents(cleanPath)
}

// AddSymlink adds a symlink at path pointing at target. The walker must never
// descend through it.
func (mfs *MockFileSystem) AddSymlink(path, target string) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Mode:    0777 | fs.ModeSymlink,
		ModTime: time.Now(),
		Target:  filepath.Clean(target),
	}
	mfs.ensureParents(cleanPath)
}

func (mfs *MockFileSystem) ensureParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:    0755 | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
		}
		dir = filepath.Dir(dir)
	}
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	return append([]byte(nil), file.Content...), nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)

	if err, ok := mfs.WriteFileErrors[cleanPath]; ok {
		return &fs.PathError{Op: "write", Path: path, Err: err}
	}
	if err, ok := mfs.WriteFileErrors[filepath.Dir(cleanPath)]; ok {
		return &fs.PathError{Op: "write", Path: path, Err: err}
	}

	dir := filepath.Dir(cleanPath)
	if dir != "." && dir != "/" {
		if parent, exists := mfs.files[dir]; !exists || !parent.IsDir {
			return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
	}

	mfs.files[cleanPath] = &MockFile{
		Content: append([]byte(nil), data...),
		Mode:    perm,
		ModTime: time.Now(),
	}
	mfs.Writes[cleanPath]++
	return nil
}

func (mfs *MockFileSystem) Remove(path string) error {
	cleanPath := filepath.Clean(path)
	file, exists := mfs.files[cleanPath]
	if !exists {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir && len(mfs.children(cleanPath)) > 0 {
		return &fs.PathError{Op: "remove", Path: path, Err: errors.New("directory not empty")}
	}
	delete(mfs.files, cleanPath)
	return nil
}

func (mfs *MockFileSystem) RemoveAll(path string) error {
	cleanPath := filepath.Clean(path)
	for p := range mfs.files {
		if p == cleanPath || strings.HasPrefix(p, cleanPath+string(filepath.Separator)) {
			delete(mfs.files, p)
		}
	}
	return nil
}

// Rename moves a file or a whole directory subtree, mirroring os.Rename:
// the destination parent must exist and a non-empty destination directory is
// an error.
func (mfs *MockFileSystem) Rename(oldPath, newPath string) error {
	oldClean := filepath.Clean(oldPath)
	newClean := filepath.Clean(newPath)

	if err, ok := mfs.RenameErrors[oldClean]; ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: err}
	}

	src, exists := mfs.files[oldClean]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if oldClean == newClean {
		return nil
	}
	if parent, ok := mfs.files[filepath.Dir(newClean)]; !ok || !parent.IsDir {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}
	if dst, ok := mfs.files[newClean]; ok {
		if dst.IsDir != src.IsDir {
			return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrExist}
		}
		if dst.IsDir && len(mfs.children(newClean)) > 0 {
			return &fs.PathError{Op: "rename", Path: newPath, Err: errors.New("directory not empty")}
		}
	}

	moved := make(map[string]*MockFile)
	for p, f := range mfs.files {
		if p == oldClean {
			moved[newClean] = f
			delete(mfs.files, p)
		} else if strings.HasPrefix(p, oldClean+string(filepath.Separator)) {
			moved[newClean+strings.TrimPrefix(p, oldClean)] = f
			delete(mfs.files, p)
		}
	}
	for p, f := range moved {
		mfs.files[p] = f
	}
	return nil
}

func (mfs *MockFileSystem) children(dir string) []string {
	var out []string
	for p := range mfs.files {
		if p != dir && filepath.Dir(p) == dir {
			out = append(out, p)
		}
	}
	return out
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	cleanPath := filepath.Clean(path)

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: errors.New("not a directory")}
	}

	var entries []fs.DirEntry
	for _, p := range mfs.children(cleanPath) {
		entries = append(entries, &mockDirEntry{info: mfs.info(p, mfs.files[p])})
	}

	// Sort entries by name for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

func (mfs *MockFileSystem) info(p string, f *MockFile) *mockFileInfo {
	return &mockFileInfo{
		name:    filepath.Base(p),
		size:    int64(len(f.Content)),
		mode:    f.Mode,
		modTime: f.ModTime,
		isDir:   f.IsDir,
	}
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	if f, exists := mfs.files[cleanPath]; exists && !f.IsDir {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	mfs.AddDir(cleanPath)
	mfs.files[cleanPath].Mode = perm | fs.ModeDir
	return nil
}

// Stat follows symlinks one level, like os.Stat for the cases tests build.
func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	cleanPath := filepath.Clean(path)
	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	if file.Mode&fs.ModeSymlink != 0 {
		target, ok := mfs.files[file.Target]
		if !ok {
			return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
		}
		return mfs.info(cleanPath, target), nil
	}
	return mfs.info(cleanPath, file), nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) IsDir(path string) bool {
	info, err := mfs.Stat(path)
	return err == nil && info.IsDir()
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

// Paths returns every path under root (root excluded), sorted, with a
// trailing slash on directories. Handy for snapshotting a tree.
func (mfs *MockFileSystem) Paths(root string) []string {
	cleanRoot := filepath.Clean(root)
	var paths []string
	for p, f := range mfs.files {
		if !strings.HasPrefix(p, cleanRoot+string(filepath.Separator)) {
			continue
		}
		rel := strings.TrimPrefix(p, cleanRoot+string(filepath.Separator))
		if f.IsDir {
			rel += "/"
		}
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	return paths
}

// TotalWrites returns the number of successful WriteFile calls.
func (mfs *MockFileSystem) TotalWrites() int {
	total := 0
	for _, n := range mfs.Writes {
		total += n
	}
	return total
}

// Snapshot returns a copy of every path and its content, for asserting that
// an operation left the tree untouched.
func (mfs *MockFileSystem) Snapshot() map[string]string {
	out := make(map[string]string, len(mfs.files))
	for p, f := range mfs.files {
		if f.IsDir {
			out[p] = "<dir>"
			continue
		}
		out[p] = string(f.Content)
	}
	return out
}

// PrintTree prints the filesystem tree (for debugging)
func (mfs *MockFileSystem) PrintTree() {
	var paths []string
	for p := range mfs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		marker := "f"
		if mfs.files[p].IsDir {
			marker = "d"
		}
		fmt.Printf("%s %s\n", marker, p)
	}
}
