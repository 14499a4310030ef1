// Package rewrite replaces a literal identifier inside files and file trees.
package rewrite

import (
	"bytes"
	"fmt"

	"github.com/jakoblorz/rnsetup/internal/filesystem"
)

// RewriteFile replaces every non-overlapping occurrence of old with new in the
// file at path. The file is written back only when its content changed; the
// returned bool reports whether that happened.
func RewriteFile(fs filesystem.FileSystem, path, old, new string) (bool, error) {
	if old == "" || old == new {
		return false, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, changed := Replace(data, old, new)
	if !changed {
		return false, nil
	}

	if err := filesystem.WriteFileAtomic(fs, path, updated, filesystem.FileMode(fs, path, 0644)); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return true, nil
}

// Replace is the in-memory half of RewriteFile.
func Replace(data []byte, old, new string) ([]byte, bool) {
	if old == "" || !bytes.Contains(data, []byte(old)) {
		return data, false
	}
	return bytes.ReplaceAll(data, []byte(old), []byte(new)), true
}
