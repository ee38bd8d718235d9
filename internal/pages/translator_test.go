package pages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/translate"
)

func TestAnalyzeImage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)

	v, err := svc.AnalyzeImage(ctx, st, "hand.JPG")
	require.NoError(t, err)
	assert.Equal(t, session.PageTranslator, v.Page)
	require.NotNil(t, v.Translator.Prediction)
	assert.Equal(t, "Hello", v.Translator.Prediction.Label)
	assert.Equal(t, 95.2, v.Translator.Prediction.Confidence)
	assert.Equal(t, translate.PlaceholderAudio, v.Translator.Prediction.Audio)
	assert.Len(t, v.Translator.History, 3)

	_, err = svc.AnalyzeImage(ctx, st, "hand.gif")
	assert.ErrorIs(t, err, translate.ErrUnsupportedImage)
	assert.Equal(t, MsgUnsupportedImage, UserMessage(err))
}

func TestCaptureCamera(t *testing.T) {
	svc, _ := newTestService(t)
	st := loggedIn(t, svc)

	v, err := svc.CaptureCamera(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, "Thank you", v.Translator.Prediction.Label)
	assert.Equal(t, 89.7, v.Translator.Prediction.Confidence)
}

func TestCaptureCamera_Cancelled(t *testing.T) {
	svc := NewService(Options{Analyzer: translate.NewAnalyzer(time.Hour)})
	st := loggedIn(t, svc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.CaptureCamera(ctx, st)
	require.Error(t, err)
	assert.Equal(t, MsgAnalysisInterrupted, UserMessage(err))
}

func TestTextToSigns(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)

	v, err := svc.TextToSigns(ctx, st, "Hello zzz")
	require.NoError(t, err)
	segs := v.Translator.Segments
	require.Len(t, segs, 2)
	assert.True(t, segs[0].Matched())
	assert.False(t, segs[1].Matched())
	assert.Empty(t, segs[1].Letters)

	v, err = svc.TextToSigns(ctx, st, "   ")
	require.NoError(t, err)
	assert.Empty(t, v.Translator.Segments)
}

func TestPhrase(t *testing.T) {
	svc, _ := newTestService(t)
	st := loggedIn(t, svc)

	v, err := svc.Phrase(st, "How are you?")
	require.NoError(t, err)
	require.NotNil(t, v.Translator.Phrase)
	assert.Equal(t, "placeholder_how_are_you.mp4", v.Translator.Phrase.MediaRef)

	_, err = svc.Phrase(st, "Goodbye")
	assert.ErrorIs(t, err, ErrUnknownPhrase)
}

func TestVoiceInput(t *testing.T) {
	svc, _ := newTestService(t)
	st := loggedIn(t, svc)

	v, err := svc.VoiceInput(st)
	require.NoError(t, err)
	require.Len(t, v.Notices, 2)
	assert.Equal(t, translate.VoiceInputNotice, v.Notices[0].Text)
}
