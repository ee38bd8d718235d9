// Package router holds the screen on display and the messages screens use
// to move between pages.
package router

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/session"
)

// ReplaceScreenMsg swaps the screen on display without a page change.
// The splash uses it to hand over to login.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// NavigateMsg requests a switch to a top-level page. When View is set it
// is shown as is; otherwise the app renders Page itself.
type NavigateMsg struct {
	Page session.Page
	View *pages.View
}

// Navigate returns a command emitting NavigateMsg for p.
func Navigate(p session.Page) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Page: p} }
}

// Show returns a command that switches to the page of an already rendered
// view, keeping its notices.
func Show(v pages.View) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Page: v.Page, View: &v} }
}

// Follow returns what a screen showing page current runs after a page
// action. A lost login goes back to the login page and a view of another
// page switches to it; otherwise there is nothing to do.
func Follow(current session.Page, v pages.View, err error) tea.Cmd {
	if errors.Is(err, pages.ErrNotAuthenticated) {
		return Navigate(session.PageLogin)
	}
	if err != nil || v.Page == current {
		return nil
	}
	return Show(v)
}

// Router owns the active screen. Pages are flat, so there is no history:
// every switch replaces the current screen.
type Router struct {
	active screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Replace shows s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.active = s
	if s == nil {
		return nil
	}
	return s.Init()
}

func (r *Router) Active() screen.Screen {
	return r.active
}

// Update handles ReplaceScreenMsg and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ReplaceScreenMsg); ok {
		return r.Replace(msg.Screen)
	}
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
