package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signaura/signaura/internal/chat"
	"github.com/signaura/signaura/internal/store"
)

func TestSendChat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)

	v, err := svc.SendChat(ctx, st, "How do I sign hello?")
	require.NoError(t, err)
	require.Len(t, v.Chatbot.Messages, 2)
	assert.Equal(t, chat.RoleUser, v.Chatbot.Messages[0].Role)
	assert.Equal(t, chat.RoleAssistant, v.Chatbot.Messages[1].Role)
	assert.Contains(t, v.Chatbot.Messages[1].Content, "wave")
	assert.Len(t, v.Chatbot.QuickQuestions, 5)

	_, _ = svc.Advance(ctx, st, "words")
	v, err = svc.SendChat(ctx, st, "what's my progress")
	require.NoError(t, err)
	assert.Contains(t, v.Chatbot.Messages[3].Content, "Words: 1 completed")
}

func TestSendChat_BlankIgnored(t *testing.T) {
	svc, act := newTestService(t)
	st := loggedIn(t, svc)

	v, err := svc.SendChat(context.Background(), st, "  ")
	require.NoError(t, err)
	assert.Empty(t, v.Chatbot.Messages)
	assert.NotContains(t, act.kinds(), store.KindChatMessage)
}

func TestClearChat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)
	_, _ = svc.SendChat(ctx, st, "hi")

	v, err := svc.ClearChat(ctx, st)
	require.NoError(t, err)
	assert.Empty(t, v.Chatbot.Messages)
	assert.Equal(t, 0, st.Chat.Len())
}
