// Package app is the terminal front-end: a Bubble Tea program that drives a
// single session through the page service.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/screens/chatbot"
	"github.com/signaura/signaura/internal/screens/dashboard"
	"github.com/signaura/signaura/internal/screens/dictionary"
	"github.com/signaura/signaura/internal/screens/learning"
	"github.com/signaura/signaura/internal/screens/login"
	"github.com/signaura/signaura/internal/screens/profile"
	"github.com/signaura/signaura/internal/screens/translator"
	"github.com/signaura/signaura/internal/screens/welcome"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/ui/layout"
)

// screenFor builds the screen that shows v.
func screenFor(env *screen.Env, v pages.View) screen.Screen {
	switch v.Page {
	case session.PageLearning:
		return learning.New(env, v)
	case session.PageTranslator:
		return translator.New(env, v)
	case session.PageChatbot:
		return chatbot.New(env, v)
	case session.PageDictionary:
		return dictionary.New(env, v)
	case session.PageProfile:
		return profile.New(env, v)
	case session.PageDashboard:
		return dashboard.New(env, v)
	default:
		return login.New(env, v)
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model. With splash set the welcome screen
// comes first.
func newAppModel(env *screen.Env, splash bool) AppModel {
	first := func() screen.Screen {
		return screenFor(env, env.Pages.Render(env.State))
	}
	initial := first()
	if splash {
		initial = welcome.New(first)
	}
	return AppModel{
		env:    env,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.NavigateMsg:
		v := msg.View
		if v == nil {
			rendered := m.env.Pages.Navigate(m.env.State, string(msg.Page))
			v = &rendered
		}
		return m, m.router.Replace(screenFor(m.env, *v))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.capturing() && m.onSubPage() {
				return m, router.Navigate(session.PageDashboard)
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturing() bool {
	ic, ok := m.router.Active().(screen.InputCapturer)
	return ok && ic.CapturingInput()
}

// onSubPage reports whether the active screen is a page reached from the
// dashboard.
func (m AppModel) onSubPage() bool {
	switch m.router.Active().(type) {
	case *dashboard.DashboardScreen, *login.LoginScreen, *welcome.WelcomeScreen:
		return false
	}
	return true
}

func (m AppModel) headerStats() layout.HeaderStats {
	st := m.env.State
	if !st.Authenticated {
		return layout.HeaderStats{}
	}
	sb := m.env.Pages.SidebarFor(st)
	return layout.HeaderStats{
		User:         st.Username,
		SignsLearned: sb.SignsLearned,
		Streak:       sb.StudyStreak,
	}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if kp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	if _, ok := active.(*welcome.WelcomeScreen); ok {
		return active.View(m.width, m.height)
	}

	header := layout.RenderHeader(active.Title(), m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(), pages.Footer, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the terminal app on env's session and blocks until it exits.
func Run(ctx context.Context, env *screen.Env) error {
	p := tea.NewProgram(newAppModel(env, true), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal app: %w", err)
	}
	return nil
}
