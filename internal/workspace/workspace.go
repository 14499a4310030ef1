package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/models"
)

// Workspace is a React Native app checkout.
type Workspace struct {
	fs          filesystem.FileSystem
	RootPath    string
	HasManifest bool
	platformDir string
	vendorDir   string
}

// Option configures workspace behavior.
type Option func(*Workspace)

// WithPlatformDir overrides the iOS platform directory (relative to the root).
func WithPlatformDir(dir string) Option {
	return func(w *Workspace) {
		w.platformDir = dir
	}
}

// WithVendorDir overrides the Ruby vendor bundle directory (relative to the root).
func WithVendorDir(dir string) Option {
	return func(w *Workspace) {
		w.vendorDir = dir
	}
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem, options ...Option) *Workspace {
	ws := &Workspace{
		fs:          fs,
		platformDir: models.DefaultPlatformDir,
		vendorDir:   models.DefaultVendorDir,
	}

	ws.Configure(options...)
	return ws
}

// Configure applies options to an existing workspace.
func (w *Workspace) Configure(options ...Option) {
	for _, option := range options {
		option(w)
	}
}

// Detect finds the app root starting at start, or at the working directory
// when start is empty.
func (w *Workspace) Detect(start string) error {
	if start == "" {
		cwd, err := w.fs.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		start = cwd
	}

	start, err := filepath.Abs(start)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	root, found := w.findRoot(start)
	w.RootPath = root
	w.HasManifest = found
	return nil
}

// findRoot walks up the directory tree looking for package.json. Without one
// the start directory is the root.
func (w *Workspace) findRoot(start string) (string, bool) {
	dir := start
	for {
		if w.fs.Exists(filepath.Join(dir, "package.json")) {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, false
		}
		dir = parent
	}
}

// Layout returns the fixed paths of the detected app.
func (w *Workspace) Layout() *models.Layout {
	return models.NewLayout(w.RootPath, w.platformDir, w.vendorDir)
}
