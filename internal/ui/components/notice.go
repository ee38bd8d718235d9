package components

import (
	"strings"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/ui/theme"
)

// Notices renders page notices one per line, colored by level.
func Notices(ns []pages.Notice) string {
	lines := make([]string, 0, len(ns))
	for _, n := range ns {
		lines = append(lines, NoticeLine(n.Level, n.Text))
	}
	return strings.Join(lines, "\n")
}

// NoticeLine renders a single notice.
func NoticeLine(level pages.Level, text string) string {
	switch level {
	case pages.LevelSuccess:
		return theme.SuccessText.Render("✓ " + text)
	case pages.LevelWarning:
		return theme.WarningText.Render("! " + text)
	case pages.LevelError:
		return theme.ErrorText.Render("✗ " + text)
	default:
		return theme.InfoText.Render("ℹ " + text)
	}
}

// ErrorLine renders an action error as an error notice.
func ErrorLine(err error) string {
	if err == nil {
		return ""
	}
	return NoticeLine(pages.LevelError, pages.UserMessage(err))
}

// Status renders the notices of the last view followed by the last action
// error, skipping whichever is empty.
func Status(ns []pages.Notice, err error) string {
	parts := make([]string, 0, 2)
	if len(ns) > 0 {
		parts = append(parts, Notices(ns))
	}
	if err != nil {
		parts = append(parts, ErrorLine(err))
	}
	return strings.Join(parts, "\n")
}
