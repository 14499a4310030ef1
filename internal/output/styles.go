package output

import "github.com/charmbracelet/lipgloss"

var (
	ColorPurple = lipgloss.Color("#7D56F4")
	ColorGreen  = lipgloss.Color("#04B575")
	ColorGray   = lipgloss.Color("#888888")
	ColorRed    = lipgloss.Color("#FF0000")
)

var (
	// Banner line at the end of a successful run
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	// Section headings in the summary
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	// Project names, bundle identifiers, paths
	NounStyle = lipgloss.NewStyle().
			Foreground(ColorPurple)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// styles maps the names usable from the summary template.
var styles = map[string]lipgloss.Style{
	"success": SuccessStyle,
	"header":  HeaderStyle,
	"noun":    NounStyle,
	"subtle":  SubtleStyle,
}
