package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const tempAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// WriteFileAtomic writes data to a hidden sibling of path and renames it into
// place, so a failed write never leaves a truncated file behind.
func WriteFileAtomic(fsys FileSystem, path string, data []byte, perm fs.FileMode) error {
	suffix, err := gonanoid.Generate(tempAlphabet, 8)
	if err != nil {
		return fmt.Errorf("failed to generate temp name: %w", err)
	}

	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp-"+suffix)
	if err := fsys.WriteFile(tmpPath, data, perm); err != nil {
		return err
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return err
	}

	return nil
}

// FileMode returns the permission bits of path, or fallback if it cannot be
// stat'ed.
func FileMode(fsys FileSystem, path string, fallback fs.FileMode) fs.FileMode {
	info, err := fsys.Stat(path)
	if err != nil {
		return fallback
	}
	return info.Mode().Perm()
}
