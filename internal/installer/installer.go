package installer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// StepError wraps the failure of one setup step.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Installer runs setup steps one after another from the app root.
type Installer struct {
	runner Runner
	root   string
	logger *log.Logger
}

// New creates an Installer.
func New(runner Runner, root string, logger *log.Logger) *Installer {
	return &Installer{
		runner: runner,
		root:   root,
		logger: logger,
	}
}

// Run executes steps in order and stops at the first failure.
func (i *Installer) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		i.logger.Info(step.Name + "...")

		dir := i.root
		if step.Dir != "" {
			dir = filepath.Join(i.root, step.Dir)
		}

		for _, argv := range step.Commands {
			i.logger.Debug("running", "dir", dir, "cmd", argv)
			if err := i.runner.Run(ctx, dir, argv); err != nil {
				return &StepError{Step: step.Name, Err: err}
			}
		}
	}

	return nil
}
