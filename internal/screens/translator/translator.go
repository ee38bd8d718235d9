// Package translator is the terminal sign translator page.
package translator

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/translate"
	"github.com/signaura/signaura/internal/ui/components"
	"github.com/signaura/signaura/internal/ui/layout"
	"github.com/signaura/signaura/internal/ui/theme"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type inputMode int

const (
	inputNone inputMode = iota
	inputImage
	inputText
)

// TranslatorScreen implements screen.Screen for the translator.
type TranslatorScreen struct {
	env    *screen.Env
	view   pages.View
	err    error
	input  components.TextInput
	mode   inputMode
	phrase int
	busy   bool
	frame  int
}

var _ screen.Screen = (*TranslatorScreen)(nil)
var _ screen.KeyHintProvider = (*TranslatorScreen)(nil)
var _ screen.InputCapturer = (*TranslatorScreen)(nil)

// New creates the translator screen showing v.
func New(env *screen.Env, v pages.View) *TranslatorScreen {
	return &TranslatorScreen{
		env:   env,
		view:  v,
		input: components.NewTextInput("", "", false, 256),
	}
}

func (s *TranslatorScreen) Init() tea.Cmd {
	return nil
}

func (s *TranslatorScreen) Title() string {
	return s.view.Title
}

// CapturingInput is true while typing and while an analysis runs.
func (s *TranslatorScreen) CapturingInput() bool {
	return s.mode != inputNone || s.busy
}

func (s *TranslatorScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.busy:
		return []layout.KeyHint{{Key: "", Description: "Analyzing sign..."}}
	case s.mode != inputNone:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "F", Description: "Upload image"},
		{Key: "C", Description: "Camera"},
		{Key: "T", Description: "Text to sign"},
		{Key: "V", Description: "Voice"},
		{Key: "↑↓", Description: "Phrase"},
		{Key: "Enter", Description: "Show phrase"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TranslatorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.busy {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case analysisDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.err = msg.Err
			return s, nil
		}
		return s, s.apply(s.env.Pages.ShowPrediction(s.env.Ctx, s.env.State, msg.Prediction))

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		if s.mode != inputNone {
			return s.handleInputKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TranslatorScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	svc, st := s.env.Pages, s.env.State
	phrases := translate.QuickPhrases()

	switch msg.String() {
	case "f":
		return s, s.startInput(inputImage, "Image file", "sign.png")
	case "t":
		return s, s.startInput(inputText, "Text", "hello world")
	case "c":
		return s, s.analyze(func() (translate.Prediction, error) {
			return svc.Analyzer().CaptureCamera(s.env.Ctx)
		})
	case "v":
		return s, s.apply(svc.VoiceInput(st))
	case "up", "k":
		s.phrase = (s.phrase + len(phrases) - 1) % len(phrases)
	case "down", "j":
		s.phrase = (s.phrase + 1) % len(phrases)
	case "enter":
		return s, s.apply(svc.Phrase(st, phrases[s.phrase]))
	}
	return s, nil
}

func (s *TranslatorScreen) handleInputKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.stopInput()
		return s, nil
	case "enter":
		value := strings.TrimSpace(s.input.Value())
		mode := s.mode
		s.stopInput()
		if mode == inputText {
			return s, s.apply(s.env.Pages.TextToSigns(s.env.Ctx, s.env.State, value))
		}
		if err := translate.ValidateImageName(value); err != nil {
			s.err = err
			return s, nil
		}
		return s, s.analyze(func() (translate.Prediction, error) {
			return s.env.Pages.Analyzer().AnalyzeImage(s.env.Ctx, value)
		})
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TranslatorScreen) startInput(mode inputMode, label, placeholder string) tea.Cmd {
	s.mode = mode
	s.err = nil
	s.input.Label = label
	s.input.Model.Placeholder = placeholder
	s.input.Reset()
	return s.input.Focus()
}

func (s *TranslatorScreen) stopInput() {
	s.mode = inputNone
	s.input.Blur()
}

// analyze runs the analyzer off the update loop. Only the analyzer runs in
// the background; the session is updated once the result is back.
func (s *TranslatorScreen) analyze(run func() (translate.Prediction, error)) tea.Cmd {
	s.busy = true
	s.err = nil
	s.frame = 0
	return tea.Batch(
		func() tea.Msg {
			p, err := run()
			return analysisDoneMsg{Prediction: p, Err: err}
		},
		spinnerTick(),
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *TranslatorScreen) apply(v pages.View, err error) tea.Cmd {
	s.err = err
	if err == nil {
		s.view = v
	}
	return router.Follow(session.PageTranslator, v, err)
}

func (s *TranslatorScreen) View(width, height int) string {
	tv := s.view.Translator
	if tv == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Sign to Text"))
	b.WriteString("\n")
	switch {
	case s.busy:
		b.WriteString(theme.InfoText.Render(spinnerFrames[s.frame] + " Analyzing sign..."))
	case tv.Prediction != nil:
		p := tv.Prediction
		b.WriteString(theme.SuccessText.Render(fmt.Sprintf("Detected Sign: %s", p.Label)))
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   Confidence: %.1f%%", p.Confidence)))
		if p.Audio != "" {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Audio ready"))
		}
	default:
		b.WriteString(theme.Hint.Render("Upload an image (F) or capture from the camera (C)."))
	}
	b.WriteString("\n\n")

	if s.mode != inputNone {
		b.WriteString(s.input.View())
		b.WriteString("\n\n")
	}

	if len(tv.Segments) > 0 {
		b.WriteString(theme.Title.Render("Text to Sign"))
		b.WriteString("\n")
		for _, seg := range tv.Segments {
			if seg.Matched() {
				b.WriteString(theme.Body.Render(fmt.Sprintf("  %s  →  %s", seg.Word, seg.Sign.MediaRef)))
			} else {
				letters := make([]string, 0, len(seg.Letters))
				for _, l := range seg.Letters {
					letters = append(letters, l.Label)
				}
				b.WriteString(theme.Body.Render(fmt.Sprintf("  %s  →  spelled %s", seg.Word, strings.Join(letters, "-"))))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Title.Render("Quick Phrases"))
	b.WriteString("\n")
	for i, p := range tv.QuickPhrases {
		if i == s.phrase {
			b.WriteString(theme.Selected.Render("  ▸ " + p))
		} else {
			b.WriteString(theme.Unselected.Render("    " + p))
		}
		b.WriteString("\n")
	}
	if tv.Phrase != nil {
		b.WriteString(theme.Card.Render(theme.Body.Render(tv.Phrase.Caption) + "\n" + theme.Hint.Render(tv.Phrase.MediaRef)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Recent Translations"))
	b.WriteString("\n")
	for _, h := range tv.History {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %-10s %-12s %s", h.Ago, h.Sign, h.Confidence)))
		b.WriteString("\n")
	}

	if status := components.Status(s.view.Notices, s.err); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	return theme.Page(width, height, b.String())
}
