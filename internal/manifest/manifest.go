// Package manifest updates name fields in the top-level JSON manifests.
package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SetStringFields sets every field in fields to value in the JSON file at
// path, editing in place so the rest of the file keeps its formatting. The
// file is only written when at least one field differed. A missing file is
// skipped.
func SetStringFields(fs filesystem.FileSystem, path, value string, fields ...string) (bool, error) {
	if !fs.Exists(path) {
		return false, nil
	}

	name := filepath.Base(path)
	data, err := fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if !gjson.ValidBytes(data) {
		return false, fmt.Errorf("failed to parse %s: invalid JSON", name)
	}

	changed := false
	for _, field := range fields {
		current := gjson.GetBytes(data, field)
		if current.Type == gjson.String && current.Str == value {
			continue
		}

		data, err = sjson.SetBytes(data, field, value)
		if err != nil {
			return false, fmt.Errorf("failed to set %s in %s: %w", field, name, err)
		}
		changed = true
	}

	if !changed {
		return false, nil
	}

	if err := filesystem.WriteFileAtomic(fs, path, data, filesystem.FileMode(fs, path, 0644)); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", name, err)
	}

	return true, nil
}

// UpdatePackageName sets the name field of package.json.
func UpdatePackageName(fs filesystem.FileSystem, path, name string) (bool, error) {
	return SetStringFields(fs, path, name, "name")
}

// UpdateAppName sets the name and displayName fields of app.json.
func UpdateAppName(fs filesystem.FileSystem, path, name string) (bool, error) {
	return SetStringFields(fs, path, name, "name", "displayName")
}

// ReadName returns the name field of the JSON file at path, or "" when the
// file or the field is missing.
func ReadName(fs filesystem.FileSystem, path string) (string, error) {
	if !fs.Exists(path) {
		return "", nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	return gjson.GetBytes(data, "name").String(), nil
}
