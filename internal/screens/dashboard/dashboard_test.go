package dashboard

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/translate"
)

func newScreen(t *testing.T) (*DashboardScreen, *screen.Env) {
	t.Helper()
	svc := pages.NewService(pages.Options{Analyzer: translate.NewAnalyzer(0)})
	env := screen.NewEnv(context.Background(), svc)
	v, err := svc.DemoLogin(env.Ctx, env.State)
	if err != nil {
		t.Fatalf("demo login: %v", err)
	}
	return New(env, v), env
}

func TestViewShowsMetrics(t *testing.T) {
	d, _ := newScreen(t)
	out := d.View(120, 40)
	for _, want := range []string{"Welcome back, demo!", "Letters Learned", "Study Streak", "LEARN", "AI ASSISTANT"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuNavigates(t *testing.T) {
	d, _ := newScreen(t)

	// Second item is the translator.
	d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.Page != session.PageTranslator {
		t.Errorf("expected translator, got %q", nav.Page)
	}
}

func TestLogout(t *testing.T) {
	d, env := newScreen(t)

	for range len(session.NavPages()) - 1 {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if env.State.Authenticated {
		t.Fatal("expected logout")
	}
	nav := cmd().(router.NavigateMsg)
	if nav.Page != session.PageLogin {
		t.Errorf("expected login page, got %q", nav.Page)
	}
}
