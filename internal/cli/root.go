package cli

import (
	"fmt"
	"os"

	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/installer"
	"github.com/jakoblorz/rnsetup/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, runner installer.Runner, prompter tui.Prompter) *cobra.Command {
	return newSetupCommand(fs, runner, prompter, isTerminal)
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	runner := installer.NewOSRunner()
	prompter := tui.NewHuhPrompter()

	rootCmd := NewRootCommand(fs, runner, prompter)

	if err := executeArgs(rootCmd, os.Args[1:]); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
