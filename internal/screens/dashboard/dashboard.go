// Package dashboard is the terminal landing page and navigation hub.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/ui/components"
	"github.com/signaura/signaura/internal/ui/theme"
)

// DashboardScreen implements screen.Screen for the dashboard.
type DashboardScreen struct {
	env  *screen.Env
	view pages.View
	menu components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard showing v.
func New(env *screen.Env, v pages.View) *DashboardScreen {
	d := &DashboardScreen{env: env, view: v}

	var items []components.MenuItem
	for _, p := range session.NavPages() {
		if p == session.PageDashboard {
			continue
		}
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(p.NavLabel()),
			Key:    strconv.Itoa(len(items) + 1),
			Action: func() tea.Cmd { return router.Navigate(p) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "LOGOUT", Hint: "end this session", Action: d.logout},
		components.MenuItem{Label: "QUIT", Key: "q", Action: func() tea.Cmd { return tea.Quit }},
	)
	d.menu = components.NewMenu(items)
	return d
}

func (d *DashboardScreen) logout() tea.Cmd {
	v := d.env.Pages.Logout(d.env.Ctx, d.env.State)
	return router.Show(v)
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return d.view.Title
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	dv := d.view.Dashboard
	if dv == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(dv.Welcome))
	b.WriteString("\n")
	if status := components.Status(d.view.Notices, nil); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cards := make([]string, 0, len(dv.Metrics))
	for _, m := range dv.Metrics {
		body := theme.Subtitle.Render(m.Label) + "\n" +
			theme.Highlight.Render(m.Value)
		if m.Delta != "" {
			body += "  " + theme.SuccessText.Render("+"+m.Delta)
		}
		cards = append(cards, theme.Card.Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	features := make([]string, 0, len(dv.Features))
	for _, f := range dv.Features {
		features = append(features, fmt.Sprintf("%s  %s",
			theme.Body.Bold(true).Render(f.Title),
			theme.Hint.Render(f.Description)))
	}
	b.WriteString(strings.Join(features, "\n"))
	b.WriteString("\n\n")
	b.WriteString(d.menu.View())

	return theme.Page(width, height, b.String())
}
