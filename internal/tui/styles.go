package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/jakoblorz/rnsetup/internal/output"
)

// NewHuhTheme returns the purple/green form theme shared by all prompts.
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeCharm()

	t.Focused.Base = t.Focused.Base.BorderForeground(output.ColorPurple)
	t.Focused.Title = t.Focused.Title.Foreground(output.ColorPurple).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(output.ColorGray)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(output.ColorRed)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(output.ColorRed)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(output.ColorPurple)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(output.ColorGreen)

	return t
}
