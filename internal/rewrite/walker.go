package rewrite

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/rnsetup/internal/filesystem"
)

// DefaultExtensions lists the file suffixes whose content references the
// project name: sources, property lists, UI layouts, schemes and project
// definitions.
var DefaultExtensions = []string{
	".swift",
	".m",
	".mm",
	".h",
	".plist",
	".entitlements",
	".storyboard",
	".xib",
	".xcscheme",
	".pbxproj",
	".xcworkspacedata",
}

// Result lists the files a walk rewrote.
type Result struct {
	Visited   int
	Rewritten []string
}

// Walker recursively rewrites every matching file below a root directory.
type Walker struct {
	fs               filesystem.FileSystem
	extensions       []string
	respectGitIgnore bool
}

// Option configures a Walker.
type Option func(*Walker)

// WithExtensions overrides DefaultExtensions.
func WithExtensions(exts ...string) Option {
	return func(w *Walker) {
		w.extensions = exts
	}
}

// WithGitIgnore skips paths matched by a .gitignore at the walk root.
func WithGitIgnore(enabled bool) Option {
	return func(w *Walker) {
		w.respectGitIgnore = enabled
	}
}

// NewWalker creates a Walker using DefaultExtensions.
func NewWalker(fs filesystem.FileSystem, options ...Option) *Walker {
	w := &Walker{
		fs:         fs,
		extensions: DefaultExtensions,
	}

	for _, option := range options {
		option(w)
	}

	return w
}

// Walk visits every descendant of root and rewrites old to new in each file
// whose name ends with one of the configured extensions. Symlinks are never
// followed. The first read or write error aborts the walk.
func (w *Walker) Walk(root, old, new string) (*Result, error) {
	ignore, err := w.loadGitIgnore(root)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	if err := w.walkDir(root, root, ignore, old, new, result); err != nil {
		return result, err
	}

	return result, nil
}

func (w *Walker) walkDir(root, dir string, ignore gitignore.GitIgnore, old, new string, result *Result) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if ignore != nil {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			if match := ignore.Relative(filepath.ToSlash(rel), entry.IsDir()); match != nil && match.Ignore() {
				continue
			}
		}

		switch {
		case entry.IsDir():
			if err := w.walkDir(root, path, ignore, old, new, result); err != nil {
				return err
			}
		case entry.Type()&fs.ModeType != 0:
			// symlinks, sockets and devices are left alone
			continue
		case w.matches(entry.Name()):
			result.Visited++
			changed, err := RewriteFile(w.fs, path, old, new)
			if err != nil {
				return err
			}
			if changed {
				result.Rewritten = append(result.Rewritten, path)
			}
		}
	}

	return nil
}

func (w *Walker) matches(name string) bool {
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (w *Walker) loadGitIgnore(root string) (gitignore.GitIgnore, error) {
	if !w.respectGitIgnore {
		return nil, nil
	}

	ignorePath := filepath.Join(root, ".gitignore")
	if !w.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := w.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}
