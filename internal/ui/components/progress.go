package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/ui/theme"
)

var (
	barFilled = lipgloss.NewStyle().Foreground(theme.Secondary)
	barEmpty  = lipgloss.NewStyle().Foreground(theme.Border)
)

// ProgressBar draws a labelled bar from a 0..1 ratio.
type ProgressBar struct {
	Label       string
	Ratio       float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, ratio float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Ratio:       min(max(ratio, 0), 1),
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var prefix, suffix string
	if p.Label != "" {
		prefix = theme.Body.Render(p.Label) + " "
	}
	if p.ShowPercent {
		suffix = theme.Subtitle.Render(fmt.Sprintf(" %3.0f%%", p.Ratio*100))
	}

	cells := max(p.Width-lipgloss.Width(prefix)-lipgloss.Width(suffix), 4)
	full := int(float64(cells)*p.Ratio + 0.5)
	return prefix +
		barFilled.Render(strings.Repeat("█", full)) +
		barEmpty.Render(strings.Repeat("░", cells-full)) +
		suffix
}
