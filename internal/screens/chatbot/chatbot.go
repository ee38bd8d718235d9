// Package chatbot is the terminal AI assistant page.
package chatbot

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/chat"
	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/ui/components"
	"github.com/signaura/signaura/internal/ui/layout"
	"github.com/signaura/signaura/internal/ui/theme"
)

// ChatbotScreen implements screen.Screen for the assistant.
type ChatbotScreen struct {
	env      *screen.Env
	view     pages.View
	err      error
	input    components.TextInput
	question int // next quick question offered by Tab
}

var _ screen.Screen = (*ChatbotScreen)(nil)
var _ screen.KeyHintProvider = (*ChatbotScreen)(nil)
var _ screen.InputCapturer = (*ChatbotScreen)(nil)

// New creates the chatbot screen showing v.
func New(env *screen.Env, v pages.View) *ChatbotScreen {
	s := &ChatbotScreen{
		env:   env,
		view:  v,
		input: components.NewTextInput("You", "Ask me anything about sign language...", false, 500),
	}
	s.input.Focus()
	return s
}

func (s *ChatbotScreen) Init() tea.Cmd {
	return nil
}

func (s *ChatbotScreen) Title() string {
	return s.view.Title
}

func (s *ChatbotScreen) CapturingInput() bool {
	return true
}

func (s *ChatbotScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Quick question"},
		{Key: "Ctrl+L", Description: "Clear chat"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatbotScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, router.Navigate(session.PageDashboard)
	case "tab":
		qs := chat.QuickQuestions()
		s.input.SetValue(qs[s.question%len(qs)])
		s.input.Model.CursorEnd()
		s.question++
		return s, nil
	case "ctrl+l":
		return s, s.apply(s.env.Pages.ClearChat(s.env.Ctx, s.env.State))
	case "enter":
		text := s.input.Value()
		s.input.Reset()
		return s, s.apply(s.env.Pages.SendChat(s.env.Ctx, s.env.State, text))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatbotScreen) apply(v pages.View, err error) tea.Cmd {
	s.err = err
	if err == nil {
		s.view = v
	}
	return router.Follow(session.PageChatbot, v, err)
}

func (s *ChatbotScreen) View(width, height int) string {
	cv := s.view.Chatbot
	if cv == nil {
		return ""
	}

	var lines []string
	if len(cv.Messages) == 0 {
		lines = append(lines, theme.Hint.Render("Hi! I'm your sign language learning assistant. How can I help you today?"))
	}
	wrap := lipgloss.NewStyle().Width(max(width-12, 20))
	for _, m := range cv.Messages {
		if m.Role == chat.RoleUser {
			lines = append(lines, theme.Selected.Render("You: ")+wrap.Render(theme.Body.Render(m.Content)))
		} else {
			lines = append(lines, theme.Speaker.Render("Assistant: ")+
				wrap.Render(theme.Body.Render(m.Content)))
		}
	}

	// Keep the newest messages when the transcript is taller than the page.
	transcript := strings.Join(lines, "\n\n")
	budget := max(height-10, 3)
	if all := strings.Split(transcript, "\n"); len(all) > budget {
		transcript = strings.Join(all[len(all)-budget:], "\n")
	}

	var b strings.Builder
	b.WriteString(transcript)
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Quick questions: "))
	b.WriteString(theme.Hint.Render(strings.Join(cv.QuickQuestions, " · ")))
	if status := components.Status(s.view.Notices, s.err); status != "" {
		b.WriteString("\n\n")
		b.WriteString(status)
	}

	return theme.Page(width, height, b.String())
}
