// Package layout frames a screen between the header and footer bars.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one footer entry, e.g. "Esc Back".
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats is the learner summary on the right of the header.
// A zero value hides it.
type HeaderStats struct {
	User         string
	SignsLearned int
	Streak       string
}

var (
	bar = lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
	brand   = theme.Title.Padding(0, 1)
	keyName = theme.Body.Bold(true)
	stat    = lipgloss.NewStyle().Foreground(theme.Accent)
)

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return theme.Body.Align(lipgloss.Center).Width(width).Height(height).Render(msg)
}

// spread places left, center and right across an inner width, keeping
// center in the middle when there is room for it.
func spread(left, center, right string, inner int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gap1 := max((inner-cw)/2-lw, 1)
	gap2 := max(inner-lw-gap1-cw-rw, 1)
	return left + strings.Repeat(" ", gap1) + center + strings.Repeat(" ", gap2) + right
}

func RenderHeader(title string, stats HeaderStats, width int) string {
	var right string
	if stats.User != "" {
		right = strings.Join([]string{
			theme.Subtitle.Render(stats.User),
			stat.Render(fmt.Sprintf("◆ %d signs", stats.SignsLearned)),
			stat.Render("★ " + stats.Streak),
		}, "   ")
	}
	content := spread(brand.Render("Signaura"), theme.Body.Render(title), right, max(width-4, 0))
	return bar.Width(width).Render(content)
}

// RenderFooter lists key hints on the left and the tagline on the right.
// When the hints leave no room the tagline moves to a second line, and it
// is dropped only if it is wider than the bar itself.
func RenderFooter(hints []KeyHint, tagline string, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyName.Render(h.Key) + " " + theme.Subtitle.Render(h.Description)
	}
	content := " " + strings.Join(parts, "   ")

	inner := width - 4
	right := theme.Hint.Render(tagline)
	rw := lipgloss.Width(right)
	switch {
	case tagline == "" || rw > inner:
	case inner-lipgloss.Width(content)-rw >= 2:
		content += strings.Repeat(" ", inner-lipgloss.Width(content)-rw) + right
	default:
		content += "\n" + strings.Repeat(" ", inner-rw) + right
	}
	return bar.Width(width).Render(content)
}

// RenderFrame stacks header, content and footer, sizing the content to
// whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(h).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
