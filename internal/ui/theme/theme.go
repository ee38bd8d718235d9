// Package theme holds the terminal palette and shared lipgloss styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: violet brand with a coral accent on a deep navy card.
var (
	Primary   = lipgloss.Color("#8B5CF6")
	Secondary = lipgloss.Color("#06B6D4")
	Accent    = lipgloss.Color("#FB7185")
	Success   = lipgloss.Color("#34D399")
	Warning   = lipgloss.Color("#FBBF24")
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#A1A1AA")
	BgCard    = lipgloss.Color("#1E1B4B")
	Border    = lipgloss.Color("#4C1D95")
)

var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle  = lipgloss.NewStyle().Foreground(TextDim)
	Body      = lipgloss.NewStyle().Foreground(Text)
	Hint      = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Highlight = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Speaker   = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	InfoText    = lipgloss.NewStyle().Foreground(Secondary)
	SuccessText = lipgloss.NewStyle().Foreground(Success).Bold(true)
	WarningText = lipgloss.NewStyle().Foreground(Warning)
	ErrorText   = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Page pads a screen body and fixes it to the content area.
func Page(width, height int, body string) string {
	return lipgloss.NewStyle().Padding(1, 2).Width(width).Height(height).Render(body)
}
