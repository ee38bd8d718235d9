package pages

import (
	"context"
	"strings"

	"github.com/signaura/signaura/internal/chat"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/store"
)

func (s *Service) renderChatbot(st *session.State, v *View) {
	v.Chatbot = &ChatbotView{
		Messages:       st.Chat.Messages(),
		QuickQuestions: chat.QuickQuestions(),
	}
}

// SendChat appends message and the assistant's reply to the transcript.
// Blank messages are ignored.
func (s *Service) SendChat(ctx context.Context, st *session.State, message string) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	st.Navigate(session.PageChatbot)
	if strings.TrimSpace(message) == "" {
		return s.Render(st), nil
	}
	st.Chat.Append(chat.RoleUser, message)
	st.Chat.Append(chat.RoleAssistant, chat.Respond(message, st.Progress.Summary()))
	s.record(ctx, st, store.KindChatMessage, message)
	return s.Render(st), nil
}

// ClearChat empties the transcript.
func (s *Service) ClearChat(ctx context.Context, st *session.State) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	st.Navigate(session.PageChatbot)
	st.ClearChat()
	s.record(ctx, st, store.KindChatCleared, "")
	return s.render(st, Notice{Level: LevelInfo, Text: MsgChatCleared}), nil
}
