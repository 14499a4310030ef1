package ios

import (
	"fmt"
	"regexp"

	"github.com/jakoblorz/rnsetup/internal/filesystem"
)

// bundleIDRegex matches a literal com.<word>.<word> bundle identifier. The
// com. anchor keeps it off the apple.com DTD URL in the plist header.
var bundleIDRegex = regexp.MustCompile(`com\.\w+\.\w+`)

// ReplaceBundleIdentifier substitutes the first bundle identifier in data.
// Data that already carries bundleID as a whole identifier is left alone so
// repeated runs do not walk on to the next match.
func ReplaceBundleIdentifier(data []byte, bundleID string) ([]byte, bool) {
	if containsIdentifier(data, bundleID) {
		return data, false
	}

	loc := bundleIDRegex.FindIndex(data)
	if loc == nil || string(data[loc[0]:loc[1]]) == bundleID {
		return data, false
	}

	out := make([]byte, 0, len(data)-(loc[1]-loc[0])+len(bundleID))
	out = append(out, data[:loc[0]]...)
	out = append(out, bundleID...)
	out = append(out, data[loc[1]:]...)
	return out, true
}

// containsIdentifier reports whether id occurs in data with no identifier
// character directly before or after it. com.acme is not found inside
// com.acme.app.
func containsIdentifier(data []byte, id string) bool {
	re := regexp.MustCompile(`(^|[^\w.-])` + regexp.QuoteMeta(id) + `($|[^\w.-])`)
	return re.Match(data)
}

// UpdateBundleIdentifier rewrites the first bundle identifier found in the
// Info.plist at path. A missing plist or one without a literal identifier is
// not an error.
func UpdateBundleIdentifier(fs filesystem.FileSystem, path, bundleID string) (bool, error) {
	if !fs.Exists(path) {
		return false, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, changed := ReplaceBundleIdentifier(data, bundleID)
	if !changed {
		return false, nil
	}

	if err := filesystem.WriteFileAtomic(fs, path, updated, filesystem.FileMode(fs, path, 0644)); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return true, nil
}
