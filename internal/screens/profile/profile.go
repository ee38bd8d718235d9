// Package profile is the terminal profile, progress and settings page.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/router"
	"github.com/signaura/signaura/internal/screen"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/ui/components"
	"github.com/signaura/signaura/internal/ui/layout"
	"github.com/signaura/signaura/internal/ui/theme"
)

// ProfileScreen implements screen.Screen for the profile page. Edits are
// made on drafts and only reach the session when saved.
type ProfileScreen struct {
	env  *screen.Env
	view pages.View
	err  error

	profile  session.Profile
	settings session.Settings
	rows     []row
	cursor   int

	editing    bool
	input      components.TextInput
	confirming bool

	// ExportDir is where Export Data writes its file.
	ExportDir string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.InputCapturer = (*ProfileScreen)(nil)

// New creates the profile screen showing v.
func New(env *screen.Env, v pages.View) *ProfileScreen {
	s := &ProfileScreen{
		env:       env,
		input:     components.NewTextInput("", "", false, 256),
		ExportDir: ".",
	}
	s.load(v)
	s.rows = s.buildRows()
	s.cursor = s.nextSelectable(0, 1)
	return s
}

func (s *ProfileScreen) load(v pages.View) {
	s.view = v
	if v.Profile != nil {
		s.profile = v.Profile.Profile
		s.settings = v.Profile.Settings
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return s.view.Title
}

func (s *ProfileScreen) CapturingInput() bool {
	return s.editing || s.confirming
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirming:
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset all progress"},
			{Key: "N", Description: "Cancel"},
		}
	case s.editing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) nextSelectable(from, dir int) int {
	for i := from; i >= 0 && i < len(s.rows); i += dir {
		if s.rows[i].selectable() {
			return i
		}
	}
	return s.cursor
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case s.confirming:
		return s, s.handleConfirm(kmsg)
	case s.editing:
		return s, s.handleEdit(msg, kmsg)
	}

	r := s.rows[s.cursor]
	switch kmsg.String() {
	case "up", "k":
		s.cursor = s.nextSelectable(s.cursor-1, -1)
	case "down", "j":
		s.cursor = s.nextSelectable(s.cursor+1, 1)
	case "left", "h":
		if r.kind == rowChoice {
			r.step(-1)
		}
	case "right", "l":
		if r.kind == rowChoice {
			r.step(1)
		}
	case "enter", "space", " ":
		switch r.kind {
		case rowToggle:
			*r.flag = !*r.flag
		case rowChoice:
			r.step(1)
		case rowText:
			s.editing = true
			s.input.Label = r.label
			s.input.SetValue(*r.text)
			s.input.Model.CursorEnd()
			return s, s.input.Focus()
		case rowButton:
			return s, r.act()
		}
	}
	return s, nil
}

func (s *ProfileScreen) handleEdit(msg tea.Msg, kmsg tea.KeyMsg) tea.Cmd {
	switch kmsg.String() {
	case "enter":
		*s.rows[s.cursor].text = s.input.Value()
		fallthrough
	case "esc":
		s.editing = false
		s.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *ProfileScreen) handleConfirm(kmsg tea.KeyMsg) tea.Cmd {
	switch kmsg.String() {
	case "y", "Y":
		s.confirming = false
		return s.apply(s.env.Pages.ResetProgress(s.env.Ctx, s.env.State, true))
	case "n", "N", "esc":
		s.confirming = false
	}
	return nil
}

func (s *ProfileScreen) saveProfile() tea.Cmd {
	return s.apply(s.env.Pages.SaveProfile(s.env.Ctx, s.env.State, pages.ProfileUpdate{
		FullName: s.profile.FullName,
		Email:    s.profile.Email,
		Bio:      s.profile.Bio,
	}))
}

func (s *ProfileScreen) saveSettings() tea.Cmd {
	return s.apply(s.env.Pages.SaveSettings(s.env.Ctx, s.env.State, s.settings))
}

func (s *ProfileScreen) askReset() tea.Cmd {
	s.confirming = true
	s.err = nil
	return nil
}

func (s *ProfileScreen) resetPassword() tea.Cmd {
	return s.apply(s.env.Pages.ResetPassword(s.env.State))
}

func (s *ProfileScreen) uploadPhoto() tea.Cmd {
	return s.apply(s.env.Pages.UploadPhoto(s.env.State))
}

func (s *ProfileScreen) deleteAccount() tea.Cmd {
	return s.apply(s.env.Pages.DeleteAccount(s.env.State))
}

// export writes the session export next to the working directory.
func (s *ProfileScreen) export() tea.Cmd {
	data, err := s.env.Pages.ExportJSON(s.env.State)
	if err != nil {
		return s.apply(pages.View{}, err)
	}
	path := filepath.Join(s.ExportDir, fmt.Sprintf("signaura-export-%s.json", s.env.State.Username))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		s.err = fmt.Errorf("write export: %w", err)
		return nil
	}
	v := s.env.Pages.Render(s.env.State)
	v.Notices = append(v.Notices,
		pages.Notice{Level: pages.LevelInfo, Text: pages.MsgExportReady},
		pages.Notice{Level: pages.LevelSuccess, Text: "Saved to " + path},
	)
	return s.apply(v, nil)
}

func (s *ProfileScreen) apply(v pages.View, err error) tea.Cmd {
	s.err = err
	if err == nil && v.Page == session.PageProfile {
		s.load(v)
	}
	return router.Follow(session.PageProfile, v, err)
}

func (s *ProfileScreen) View(width, height int) string {
	pv := s.view.Profile
	if pv == nil {
		return ""
	}

	left := s.renderForm()
	right := s.renderProgress(pv)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width/2).Render(left),
		right,
	))
	if s.confirming {
		b.WriteString("\n")
		b.WriteString(components.NoticeLine(pages.LevelWarning, pages.MsgConfirmReset+"? (y/n)"))
	}
	if status := components.Status(s.view.Notices, s.err); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(width).Height(height).Render(b.String())
}

func (s *ProfileScreen) renderForm() string {
	var b strings.Builder
	for i, r := range s.rows {
		if r.kind == rowHeading {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(theme.Title.Render(r.label))
			b.WriteString("\n")
			continue
		}

		selected := i == s.cursor
		prefix := "    "
		if selected {
			prefix = "  ▸ "
		}
		if selected && s.editing {
			b.WriteString(theme.Selected.Render(prefix) + s.input.View() + "\n")
			continue
		}

		line := r.label
		if d := r.display(); d != "" {
			line = fmt.Sprintf("%-28s %s", r.label, d)
		}
		if r.kind == rowButton {
			line = "[ " + r.label + " ]"
		}
		if selected {
			b.WriteString(theme.Selected.Render(prefix + line))
		} else {
			b.WriteString(theme.Unselected.Render(prefix + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ProfileScreen) renderProgress(pv *pages.ProfileView) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(pv.Username))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Member since " + pv.Profile.MemberSince))
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render("Learning Progress"))
	b.WriteString("\n")
	for _, c := range pv.Progress {
		label := fmt.Sprintf("%-10s %d/%d", c.Title, c.Count, c.Total)
		b.WriteString(components.NewProgressBar(label, c.Percent/100, true, 44).View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Study Statistics"))
	b.WriteString("\n")
	for _, m := range pv.Statistics {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%-20s", m.Label)))
		b.WriteString(theme.Body.Render(m.Value))
		b.WriteString("\n")
	}
	return b.String()
}
