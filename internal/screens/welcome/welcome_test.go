package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "login" }
func (s *stubScreen) Title() string                           { return "Login" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) {
	for range n {
		w.Update(tickMsg(time.Now()))
	}
}

func TestBannerAppearsAfterHands(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(100, 30), Tagline) {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 4)
	if w.elapsed != handsEnd {
		t.Errorf("expected elapsed %v, got %v", handsEnd, w.elapsed)
	}

	sendTicks(w, 8)
	if !strings.Contains(w.View(100, 30), Tagline) {
		t.Error("tagline should be visible once the banner is up")
	}
}

func TestCompactBannerOnNarrowTerminal(t *testing.T) {
	if got := RenderBanner(bannerMinWidth - 1); !strings.Contains(got, bannerCompact) {
		t.Errorf("expected compact banner, got %q", got)
	}
	if got := RenderBanner(bannerMinWidth); strings.Contains(got, bannerCompact) {
		t.Error("expected full banner on wide terminal")
	}
}

func TestKeypressReplacesScreen(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command from keypress")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, calls := newTestWelcome()

	sendTicks(w, 50)
	if *calls != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *calls)
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestTransitionOnce(t *testing.T) {
	w, calls := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: 'a'})
	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop after the transition")
	}
	if *calls != 1 {
		t.Errorf("factory should be called exactly once, got %d", *calls)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
