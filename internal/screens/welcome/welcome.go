// Package welcome is the splash shown when the terminal app starts.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	handsEnd     = 400 * time.Millisecond
	bannerEnd    = 1200 * time.Millisecond
	totalDur     = 3 * time.Second
)

// Tagline is shown under the banner.
const Tagline = "Making sign language accessible to everyone"

// handFrames wave the hand while the splash is up.
var handFrames = []string{
	`   _.-._
  | | | |_
  | | | | |
  | | | | |
 _|  ' '  |
| \       /
 \       /
  \_____/`,
	`    _.-._
   | | | |_
   | | | | |
   | | | | |
  _|  ' '  |
 | \       /
  \       /
   \_____/`,
}

type tickMsg time.Time

// WelcomeScreen waves a hand and shows the banner until a key is pressed.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that is replaced by next() on the first key.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	s := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	frame := 0
	if w.elapsed >= handsEnd {
		frame = (w.tickCount / 3) % len(handFrames)
	}
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Accent).Render(handFrames[frame]),
	}

	if w.elapsed >= bannerEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
