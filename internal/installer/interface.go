// Package installer runs the external setup commands that follow a rename.
package installer

import (
	"context"
)

// Runner provides an abstraction over external process execution for
// testability.
type Runner interface {
	// Run executes argv in dir and blocks until it exits. A non-zero exit is
	// an error.
	Run(ctx context.Context, dir string, argv []string) error
}

// Step is one named setup stage made of commands run in sequence.
type Step struct {
	Name     string
	Dir      string // relative to the app root; empty means the root
	Commands [][]string
}

// DefaultSteps returns dependency installation, font asset linking and
// CocoaPods installation, in that order.
func DefaultSteps(platformDir string) []Step {
	return []Step{
		{
			Name:     "Installing dependencies",
			Commands: [][]string{{"yarn", "install"}},
		},
		{
			Name:     "Linking font assets",
			Commands: [][]string{{"npx", "react-native-asset"}},
		},
		{
			Name: "Installing iOS dependencies",
			Dir:  platformDir,
			Commands: [][]string{
				{"bundle", "install"},
				{"bundle", "exec", "pod", "install"},
			},
		},
	}
}
