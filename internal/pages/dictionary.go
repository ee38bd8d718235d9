package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/store"
)

// Filters lists the dictionary filter names in menu order.
func Filters() []string {
	out := []string{catalog.FilterAll}
	for _, c := range catalog.AllCategories() {
		out = append(out, c.DisplayName())
	}
	return out
}

func (s *Service) renderDictionary(st *session.State, v *View) {
	v.Dictionary = s.browse(st.DictFilter)
}

func (s *Service) browse(f catalog.Filter) *DictionaryView {
	dv := s.dictionaryBase(f)
	dv.Heading = "Browse Dictionary"
	for _, g := range s.catalog.Browse(f) {
		dv.Groups = append(dv.Groups, DictionaryGroup{
			Title:   titleCase(string(g.Category)),
			Entries: g.Entries,
		})
	}
	return dv
}

func (s *Service) dictionaryBase(f catalog.Filter) *DictionaryView {
	return &DictionaryView{
		Filter:     f.String(),
		Filters:    Filters(),
		TotalSigns: s.catalog.Total(),
		Categories: len(catalog.AllCategories()),
	}
}

// Search looks term up in the dictionary. An empty filter name uses the
// session's quick-navigation filter; an empty term switches to browse mode.
func (s *Service) Search(ctx context.Context, st *session.State, term, filter string) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	f := st.DictFilter
	if filter != "" {
		var err error
		if f, err = catalog.ParseFilter(filter); err != nil {
			return View{}, err
		}
	}
	st.Navigate(session.PageDictionary)
	v := s.Render(st)

	// Blank queries browse rather than match entries containing spaces.
	term = strings.TrimSpace(term)
	if term == "" {
		v.Dictionary = s.browse(f)
		return v, nil
	}

	dv := s.dictionaryBase(f)
	dv.Term = term
	dv.Heading = fmt.Sprintf("Search results for: '%s'", term)
	for _, r := range s.catalog.Search(term, f) {
		dv.Results = append(dv.Results, DictionaryResult{
			Category: titleCase(string(r.Category)),
			Heading:  fmt.Sprintf("%s (%s)", strings.ToUpper(r.Entry.Label), titleCase(string(r.Category))),
			Entry:    r.Entry,
		})
	}
	v.Dictionary = dv
	if len(dv.Results) == 0 {
		v.notify(LevelWarning, MsgNoResults)
	}
	s.record(ctx, st, store.KindSearch, term)
	return v, nil
}

// SetFilter applies a quick-navigation filter and shows the dictionary.
func (s *Service) SetFilter(st *session.State, filter string) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	f, err := catalog.ParseFilter(filter)
	if err != nil {
		return View{}, err
	}
	st.DictFilter = f
	st.Navigate(session.PageDictionary)
	return s.Render(st), nil
}

// PlaySign acknowledges a dictionary "play" request for label.
func (s *Service) PlaySign(st *session.State, label string) (View, error) {
	if err := requireAuth(st); err != nil {
		return View{}, err
	}
	st.Navigate(session.PageDictionary)
	return s.render(st, Notice{Level: LevelInfo, Text: "Playing video for: " + label}), nil
}
