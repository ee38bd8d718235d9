// Package login is the terminal login and signup form.
package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/auth"
	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/ui/components"
	"github.com/signaura/signaura/internal/ui/layout"
	"github.com/signaura/signaura/internal/ui/theme"
)

// cardWidth leaves room for the longest notice on one line and still fits
// the minimum terminal width.
const cardWidth = 76

type mode int

const (
	modeLogin mode = iota
	modeSignup
)

// Field order within each form.
const (
	loginUser = iota
	loginPass
)

const (
	signupUser = iota
	signupEmail
	signupPass
	signupConfirm
)

// LoginScreen implements screen.Screen for the login page.
type LoginScreen struct {
	env    *screen.Env
	view   pages.View
	err    error
	mode   mode
	login  []components.TextInput
	signup []components.TextInput
	focus  int
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)
var _ screen.InputCapturer = (*LoginScreen)(nil)

// New creates the login screen showing v.
func New(env *screen.Env, v pages.View) *LoginScreen {
	s := &LoginScreen{
		env:  env,
		view: v,
		login: []components.TextInput{
			components.NewTextInput("Username", "demo", false, 64),
			components.NewTextInput("Password", "", true, 64),
		},
		signup: []components.TextInput{
			components.NewTextInput("Username", "", false, 64),
			components.NewTextInput("Email", "", false, 128),
			components.NewTextInput("Password", "", true, 64),
			components.NewTextInput("Confirm Password", "", true, 64),
		},
	}
	s.fields()[0].Focus()
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return nil
}

func (s *LoginScreen) Title() string {
	return s.view.Title
}

// CapturingInput is always true: every plain key belongs to a form field.
func (s *LoginScreen) CapturingInput() bool {
	return true
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
	}
	if s.mode == modeLogin {
		return append(hints,
			layout.KeyHint{Key: "Ctrl+D", Description: "Demo login"},
			layout.KeyHint{Key: "Ctrl+N", Description: "Sign up"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+N", Description: "Back to login"})
}

func (s *LoginScreen) fields() []components.TextInput {
	if s.mode == modeSignup {
		return s.signup
	}
	return s.login
}

func (s *LoginScreen) setFocus(i int) {
	fields := s.fields()
	fields[s.focus].Blur()
	s.focus = (i + len(fields)) % len(fields)
	fields[s.focus].Focus()
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		s.setFocus(s.focus + 1)
		return s, nil
	case "shift+tab", "up":
		s.setFocus(s.focus - 1)
		return s, nil
	case "ctrl+n":
		s.fields()[s.focus].Blur()
		if s.mode == modeLogin {
			s.mode = modeSignup
		} else {
			s.mode = modeLogin
		}
		s.focus = 0
		s.fields()[0].Focus()
		s.err = nil
		return s, nil
	case "ctrl+d":
		if s.mode != modeLogin {
			return s, nil
		}
		return s, s.apply(s.env.Pages.DemoLogin(s.env.Ctx, s.env.State))
	case "enter":
		return s, s.submit()
	}

	fields := s.fields()
	var cmd tea.Cmd
	fields[s.focus], cmd = fields[s.focus].Update(msg)
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	if s.mode == modeLogin {
		user := strings.TrimSpace(s.login[loginUser].Value())
		pass := s.login[loginPass].Value()
		cmd := s.apply(s.env.Pages.Login(s.env.Ctx, s.env.State, user, pass))
		if s.err != nil {
			s.login[loginPass].Reset()
		}
		return cmd
	}

	req := auth.SignupRequest{
		Username: strings.TrimSpace(s.signup[signupUser].Value()),
		Email:    strings.TrimSpace(s.signup[signupEmail].Value()),
		Password: s.signup[signupPass].Value(),
		Confirm:  s.signup[signupConfirm].Value(),
	}
	cmd := s.apply(s.env.Pages.Signup(s.env.Ctx, s.env.State, req))
	if s.err == nil {
		for i := range s.signup {
			s.signup[i].Reset()
		}
		s.signup[s.focus].Blur()
		s.mode = modeLogin
		s.focus = 0
		s.login[0].Focus()
	}
	return cmd
}

func (s *LoginScreen) apply(v pages.View, err error) tea.Cmd {
	s.err = err
	if err == nil {
		s.view = v
	}
	return router.Follow(session.PageLogin, v, err)
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(s.view.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Learn sign language with flashcards, a translator and an AI assistant"))
	b.WriteString("\n\n")

	heading := "Login"
	if s.mode == modeSignup {
		heading = "Sign Up"
	}
	b.WriteString(theme.Selected.Render(heading))
	b.WriteString("\n\n")
	for _, f := range s.fields() {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	if status := components.Status(s.view.Notices, s.err); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}
	if s.view.Login != nil && s.mode == modeLogin {
		b.WriteString("\n")
		b.WriteString(components.NoticeLine(pages.LevelInfo, s.view.Login.DemoHint))
	}

	card := theme.Card.Width(min(width-4, cardWidth)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
