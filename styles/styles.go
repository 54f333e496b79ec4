package styles

import "github.com/charmbracelet/lipgloss"

const (
	// Fixed layout width. The detected terminal width is only used to truncate.
	Width = 72
)

// https://github.com/inngest/inngest/blob/main/pkg/cli/styles.go
var (
	Color   = lipgloss.AdaptiveColor{Light: "#111222", Dark: "#FAFAFA"}
	Primary = lipgloss.Color("#4636f5")
	Green   = lipgloss.Color("#9dcc3a")
	Red     = lipgloss.Color("#ff0000")
	White   = lipgloss.Color("#ffffff")
	Black   = lipgloss.Color("#000000")
	Orange  = lipgloss.Color("#D3A347")

	TextStyle = lipgloss.NewStyle().Foreground(Color)
	BoldStyle = TextStyle.Copy().Bold(true)

	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	TitleStyle = BoldStyle.Copy().
			Foreground(White).
			Background(Primary).
			Padding(0, 1)

	SubtleText = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Scale degrees that set a mode apart from its parent scale.
	CharacteristicStyle = BoldStyle.Copy().Foreground(Orange)

	UnresolvedStyle = lipgloss.NewStyle().Foreground(Red)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1).
			MarginRight(1)

	MessageText = lipgloss.NewStyle().Align(lipgloss.Left)

	HelpMenu = lipgloss.NewStyle().Align(lipgloss.Center).PaddingTop(2)
	// Page
	DocStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)
)

// RenderError returns a formatted error string.
func RenderError(msg string) string {
	// Error applies styles to an error message
	err := lipgloss.NewStyle().Background(Red).Foreground(White).Bold(true).Padding(0, 1).Render("Error")
	content := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(msg)
	return err + content
}
