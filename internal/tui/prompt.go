// Package tui holds the interactive prompts shown with --interactive.
package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/rnsetup/internal/models"
)

// Prompter asks for whichever naming parameters are still missing.
type Prompter interface {
	// PromptNames returns params with the missing names filled in, or nil if
	// the user aborted.
	PromptNames(ctx context.Context, params models.InvocationParameters, current string) (*models.InvocationParameters, error)
}

// HuhPrompter implements Prompter with huh forms.
type HuhPrompter struct {
	theme *huh.Theme
}

// NewHuhPrompter constructs a HuhPrompter with the shared theme.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{theme: NewHuhTheme()}
}

// PromptNames shows one form with an input for every missing name. current is
// the detected project name, shown as a hint.
func (p *HuhPrompter) PromptNames(ctx context.Context, params models.InvocationParameters, current string) (*models.InvocationParameters, error) {
	result := params
	if params.HasProjectName() && params.HasBundleName() {
		return &result, nil
	}

	var fields []huh.Field
	if !params.HasProjectName() {
		input := huh.NewInput().
			Title("Project name").
			Value(&result.ProjectName).
			Validate(func(v string) error {
				return models.ValidateProjectName(strings.TrimSpace(v))
			})
		if current != "" {
			input = input.Description("Currently " + current).Placeholder(current)
		}
		fields = append(fields, input)
	}
	if !params.HasBundleName() {
		fields = append(fields, huh.NewInput().
			Title("Bundle identifier").
			Description("Reverse-DNS identifier, for example com.acme.app").
			Placeholder("com.acme.app").
			Value(&result.BundleName).
			Validate(func(v string) error {
				return models.ValidateBundleID(strings.TrimSpace(v))
			}))
	}

	form := huh.NewForm(
		huh.NewGroup(fields...).
			Title("Rename Project").
			Description("Both names are needed to rename the iOS project."),
	).
		WithTheme(p.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	result.ProjectName = strings.TrimSpace(result.ProjectName)
	result.BundleName = strings.TrimSpace(result.BundleName)
	return &result, nil
}

// StaticPrompter answers every prompt with fixed names. Used in tests and
// when a caller already knows the answers.
type StaticPrompter struct {
	ProjectName string
	BundleName  string
	Aborted     bool
	Err         error

	Calls   int
	Current string
}

// PromptNames fills only the names missing from params.
func (p *StaticPrompter) PromptNames(_ context.Context, params models.InvocationParameters, current string) (*models.InvocationParameters, error) {
	p.Calls++
	p.Current = current
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Aborted {
		return nil, nil
	}

	result := params
	if !result.HasProjectName() {
		result.ProjectName = p.ProjectName
	}
	if !result.HasBundleName() {
		result.BundleName = p.BundleName
	}
	return &result, nil
}
