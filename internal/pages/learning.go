package pages

import (
	"context"
	"fmt"

	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/store"
)

type lessonText struct {
	heading string
	title   func(label string) string
	done    string
}

var lessonTexts = map[catalog.Category]lessonText{
	catalog.CategoryAlphabets: {
		heading: "ASL Alphabet Learning",
		title:   func(l string) string { return "Learning: Letter " + l },
		done:    "Congratulations! You've completed all alphabets!",
	},
	catalog.CategoryNumbers: {
		heading: "ASL Numbers Learning",
		title:   func(l string) string { return "Learning: Number " + l },
		done:    "Great job! You've learned all numbers!",
	},
	catalog.CategoryWords: {
		heading: "Basic Words & Phrases",
		title:   func(l string) string { return "Learning: " + titleCase(l) },
		done:    "Excellent! You've learned all basic words!",
	},
}

func (s *Service) renderLearning(st *session.State, v *View) {
	lv := &LearningView{}
	for _, cat := range catalog.AllCategories() {
		lv.Lessons = append(lv.Lessons, s.lesson(st, cat))
	}
	v.Learning = lv
}

// Lesson renders the lesson of a single category.
func (s *Service) Lesson(st *session.State, cat catalog.Category) LessonView {
	return s.lesson(st, cat)
}

func (s *Service) lesson(st *session.State, cat catalog.Category) LessonView {
	text := lessonTexts[cat]
	ps := st.Progress.State(cat)
	n := s.catalog.Len(cat)

	lv := LessonView{
		Category:   cat,
		Heading:    text.heading,
		Cursor:     min(ps.Cursor, n),
		Total:      n,
		Ratio:      ps.LessonRatio(n),
		Completed:  append([]string{}, ps.Completed...),
		ProgressOf: fmt.Sprintf("%d/%d completed", min(ps.Cursor, n), n),
	}
	if e, ok := st.Progress.Current(cat); ok {
		lv.Current = &e
		lv.Title = text.title(e.Label)
	} else {
		lv.Done = true
		lv.DoneText = text.done
	}
	return lv
}

func (s *Service) lessonAction(st *session.State, name string) (catalog.Category, error) {
	if err := requireAuth(st); err != nil {
		return "", err
	}
	cat, err := catalog.ParseCategory(name)
	if err != nil {
		return "", err
	}
	st.Navigate(session.PageLearning)
	return cat, nil
}

// Advance handles "Got it!": the current item is marked learned and the
// lesson moves to the next one.
func (s *Service) Advance(ctx context.Context, st *session.State, category string) (View, error) {
	cat, err := s.lessonAction(st, category)
	if err != nil {
		return View{}, err
	}
	out := st.Progress.Advance(cat)
	if out.Label != "" {
		s.record(ctx, st, store.KindLessonAdvance, string(cat)+":"+out.Label)
	}
	v := s.Render(st)
	if out.Completed {
		v.notify(LevelSuccess, lessonTexts[cat].done)
	}
	return v, nil
}

// Restart handles "Start over": the cursor returns to the first item and
// learned items are kept.
func (s *Service) Restart(ctx context.Context, st *session.State, category string) (View, error) {
	cat, err := s.lessonAction(st, category)
	if err != nil {
		return View{}, err
	}
	st.Progress.Restart(cat)
	s.record(ctx, st, store.KindLessonRestart, string(cat))
	return s.Render(st), nil
}

// Replay handles "Replay". Nothing changes.
func (s *Service) Replay(st *session.State, category string) (View, error) {
	if _, err := s.lessonAction(st, category); err != nil {
		return View{}, err
	}
	return s.render(st, Notice{Level: LevelInfo, Text: MsgReplayed}), nil
}
