// Package dictionary is the terminal sign dictionary page.
package dictionary

import (
	"fmt"
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

// DictionaryScreen implements screen.Screen for the dictionary.
type DictionaryScreen struct {
	env      *screen.Env
	view     pages.View
	err      error
	input    components.TextInput
	selected int
}

var _ screen.Screen = (*DictionaryScreen)(nil)
var _ screen.KeyHintProvider = (*DictionaryScreen)(nil)
var _ screen.InputCapturer = (*DictionaryScreen)(nil)

// New creates the dictionary screen showing v.
func New(env *screen.Env, v pages.View) *DictionaryScreen {
	s := &DictionaryScreen{
		env:   env,
		view:  v,
		input: components.NewTextInput("Search", "Type a letter, number, or word...", false, 64),
	}
	s.input.Focus()
	return s
}

func (s *DictionaryScreen) Init() tea.Cmd {
	return nil
}

func (s *DictionaryScreen) Title() string {
	return s.view.Title
}

func (s *DictionaryScreen) CapturingInput() bool {
	return true
}

func (s *DictionaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Search"},
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Select"},
		{Key: "Ctrl+P", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

// entries lists the signs on screen in display order.
func (s *DictionaryScreen) entries() []catalog.Entry {
	dv := s.view.Dictionary
	if dv == nil {
		return nil
	}
	var out []catalog.Entry
	for _, r := range dv.Results {
		out = append(out, r.Entry)
	}
	for _, g := range dv.Groups {
		out = append(out, g.Entries...)
	}
	return out
}

func (s *DictionaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	svc, ctx, st := s.env.Pages, s.env.Ctx, s.env.State

	switch kmsg.String() {
	case "esc":
		return s, router.Navigate(session.PageDashboard)
	case "enter":
		return s, s.apply(svc.Search(ctx, st, s.input.Value(), ""))
	case "tab":
		cmd := s.apply(svc.SetFilter(st, s.nextFilter()))
		if s.err == nil && strings.TrimSpace(s.input.Value()) != "" {
			cmd = s.apply(svc.Search(ctx, st, s.input.Value(), ""))
		}
		return s, cmd
	case "up":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down":
		if s.selected < len(s.entries())-1 {
			s.selected++
		}
		return s, nil
	case "ctrl+p":
		entries := s.entries()
		if s.selected >= len(entries) {
			return s, nil
		}
		label := entries[s.selected].Label
		selected := s.selected
		cmd := s.apply(svc.PlaySign(st, label))
		s.selected = selected
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *DictionaryScreen) nextFilter() string {
	filters := pages.Filters()
	current := catalog.FilterAll
	if s.view.Dictionary != nil {
		current = s.view.Dictionary.Filter
	}
	for i, f := range filters {
		if f == current {
			return filters[(i+1)%len(filters)]
		}
	}
	return filters[0]
}

func (s *DictionaryScreen) apply(v pages.View, err error) tea.Cmd {
	s.err = err
	if err == nil {
		s.view = v
		s.selected = 0
	}
	return router.Follow(session.PageDictionary, v, err)
}

func (s *DictionaryScreen) View(width, height int) string {
	dv := s.view.Dictionary
	if dv == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n")

	filters := make([]string, 0, len(dv.Filters))
	for _, f := range dv.Filters {
		if f == dv.Filter {
			filters = append(filters, theme.Selected.Render("["+f+"]"))
		} else {
			filters = append(filters, theme.Subtitle.Render(" "+f+" "))
		}
	}
	b.WriteString(strings.Join(filters, " "))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render(dv.Heading))
	b.WriteString("\n")

	i := 0
	line := func(e catalog.Entry, heading string) {
		text := fmt.Sprintf("%-14s %s", heading, theme.Hint.Render(e.Description))
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ ") + theme.Body.Bold(true).Render(text))
		} else {
			b.WriteString("    " + theme.Body.Render(text))
		}
		b.WriteString("\n")
		i++
	}
	for _, r := range dv.Results {
		line(r.Entry, r.Heading)
	}
	for _, g := range dv.Groups {
		b.WriteString(theme.Subtitle.Render(g.Title))
		b.WriteString("\n")
		for _, e := range g.Entries {
			line(e, strings.ToUpper(e.Label))
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Total Signs: %d   Categories: %d", dv.TotalSigns, dv.Categories)))
	if status := components.Status(s.view.Notices, s.err); status != "" {
		b.WriteString("\n\n")
		b.WriteString(status)
	}

	return theme.Page(width, height, b.String())
}
