// Package learning is the terminal flashcard lesson page.
package learning

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/ui/components"
	"github.com/signaura/signaura/internal/ui/layout"
	"github.com/signaura/signaura/internal/ui/theme"
)

// LearningScreen implements screen.Screen for the lesson tabs.
type LearningScreen struct {
	env  *screen.Env
	view pages.View
	err  error
	tab  int
}

var _ screen.Screen = (*LearningScreen)(nil)
var _ screen.KeyHintProvider = (*LearningScreen)(nil)

// New creates the learning screen showing v.
func New(env *screen.Env, v pages.View) *LearningScreen {
	return &LearningScreen{env: env, view: v}
}

func (s *LearningScreen) Init() tea.Cmd {
	return nil
}

func (s *LearningScreen) Title() string {
	return s.view.Title
}

func (s *LearningScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "Enter", Description: "Got it!"},
		{Key: "R", Description: "Replay"},
		{Key: "S", Description: "Start over"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LearningScreen) category() catalog.Category {
	return catalog.AllCategories()[s.tab]
}

func (s *LearningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	n := len(catalog.AllCategories())
	cat := string(s.category())
	svc, ctx, st := s.env.Pages, s.env.Ctx, s.env.State

	switch kmsg.String() {
	case "right", "l", "tab":
		s.tab = (s.tab + 1) % n
		s.err = nil
	case "left", "h", "shift+tab":
		s.tab = (s.tab + n - 1) % n
		s.err = nil
	case "1", "2", "3":
		s.tab = int(kmsg.String()[0] - '1')
		s.err = nil
	case "enter", "g", " ", "space":
		return s, s.apply(svc.Advance(ctx, st, cat))
	case "r":
		return s, s.apply(svc.Replay(st, cat))
	case "s":
		return s, s.apply(svc.Restart(ctx, st, cat))
	}
	return s, nil
}

func (s *LearningScreen) apply(v pages.View, err error) tea.Cmd {
	s.err = err
	if err == nil {
		s.view = v
	}
	return router.Follow(session.PageLearning, v, err)
}

func (s *LearningScreen) lesson() (pages.LessonView, bool) {
	if s.view.Learning == nil {
		return pages.LessonView{}, false
	}
	cat := s.category()
	for _, l := range s.view.Learning.Lessons {
		if l.Category == cat {
			return l, true
		}
	}
	return pages.LessonView{}, false
}

func (s *LearningScreen) View(width, height int) string {
	var b strings.Builder

	tabs := make([]string, 0, 3)
	for i, c := range catalog.AllCategories() {
		if i == s.tab {
			tabs = append(tabs, theme.Selected.Render("["+c.DisplayName()+"]"))
		} else {
			tabs = append(tabs, theme.Subtitle.Render(" "+c.DisplayName()+" "))
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	l, ok := s.lesson()
	if !ok {
		return b.String()
	}

	b.WriteString(theme.Title.Render(l.Heading))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	b.WriteString(components.NewProgressBar("Progress", l.Ratio, true, barWidth).View())
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(l.ProgressOf))
	b.WriteString("\n\n")

	if l.Done {
		b.WriteString(theme.SuccessText.Render(l.DoneText))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press S to start over."))
	} else if l.Current != nil {
		card := theme.Body.Bold(true).Render(l.Title) + "\n\n" +
			theme.Highlight.Render(strings.ToUpper(l.Current.Label)) + "\n" +
			theme.Body.Render(l.Current.Description) + "\n" +
			theme.Hint.Render("Video: "+l.Current.MediaRef)
		b.WriteString(theme.Card.Width(barWidth).Render(card))
	}
	b.WriteString("\n\n")

	if len(l.Completed) > 0 {
		b.WriteString(theme.Subtitle.Render("Learned: "))
		b.WriteString(theme.Body.Render(strings.Join(l.Completed, ", ")))
		b.WriteString("\n")
	}
	if status := components.Status(s.view.Notices, s.err); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	return theme.Page(width, height, b.String())
}
