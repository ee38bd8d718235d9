package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/store"
	"github.com/signaura/signaura/internal/translate"
)

func (s *Service) renderTranslator(_ *session.State, v *View) {
	v.Translator = &TranslatorView{
		QuickPhrases: translate.QuickPhrases(),
		History:      translate.SampleHistory(),
		CameraNotice: translate.CameraNotice,
		VoiceNotice:  translate.VoiceInputNotice,
	}
}

func (s *Service) translatorView(st *session.State) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	st.Navigate(session.PageTranslator)
	return s.Render(st), nil
}

// AnalyzeImage runs sign analysis on an uploaded image. Only the file name
// is inspected.
func (s *Service) AnalyzeImage(ctx context.Context, st *session.State, filename string) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	p, err := s.analyzer.AnalyzeImage(ctx, filename)
	if err != nil {
		return View{}, err
	}
	return s.ShowPrediction(ctx, st, p)
}

// CaptureCamera runs sign analysis on a camera capture.
func (s *Service) CaptureCamera(ctx context.Context, st *session.State) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	p, err := s.analyzer.CaptureCamera(ctx)
	if err != nil {
		return View{}, err
	}
	return s.ShowPrediction(ctx, st, p)
}

// ShowPrediction renders the translator with a finished analysis. Front-ends
// that run the analyzer in the background call it once the prediction is in.
func (s *Service) ShowPrediction(ctx context.Context, st *session.State, p translate.Prediction) (View, error) {
	v, err := s.translatorView(st)
	if err != nil {
		return View{}, err
	}
	s.record(ctx, st, store.KindSignAnalysis, string(p.Source)+":"+p.Label)
	v.Translator.Prediction = &p
	if p.Source == translate.SourceCamera {
		v.notify(LevelInfo, translate.CameraNotice)
	}
	return v, nil
}

// TextToSigns converts text into sign segments. Empty text renders nothing.
func (s *Service) TextToSigns(ctx context.Context, st *session.State, text string) (View, error) {
	v, err := s.translatorView(st)
	if err != nil {
		return View{}, err
	}
	if strings.TrimSpace(text) == "" {
		return v, nil
	}
	v.Translator.Segments = translate.TextToSigns(s.catalog, text)
	s.record(ctx, st, store.KindTextToSign, text)
	return v, nil
}

// Phrase renders the sign card of a quick phrase.
func (s *Service) Phrase(st *session.State, phrase string) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	if !translate.IsQuickPhrase(phrase) {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownPhrase, phrase)
	}
	v, err := s.translatorView(st)
	if err != nil {
		return View{}, err
	}
	v.Translator.Phrase = &PhraseCard{
		Phrase:   phrase,
		MediaRef: "placeholder_" + strings.ReplaceAll(strings.ToLower(strings.Trim(phrase, "?")), " ", "_") + ".mp4",
		Caption:  "Sign for: " + phrase,
	}
	return v, nil
}

// VoiceInput explains that speech capture is unavailable.
func (s *Service) VoiceInput(st *session.State) (View, error) {
	v, err := s.translatorView(st)
	if err != nil {
		return View{}, err
	}
	v.notify(LevelInfo, translate.VoiceInputNotice)
	v.notify(LevelSuccess, translate.VoiceRecordingNote)
	return v, nil
}
