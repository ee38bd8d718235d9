package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/chat"
	"github.com/signaura/signaura/internal/progress"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/store"
)

var studyStatistics = []Metric{
	{Label: "Total Study Time", Value: "2h 30m"},
	{Label: "Sessions Completed", Value: "15"},
	{Label: "Current Streak", Value: studyStreak},
	{Label: "Best Streak", Value: "12 days"},
}

func (s *Service) renderProfile(st *session.State, v *View) {
	pv := &ProfileView{
		Username:   st.Username,
		Profile:    st.Profile,
		Statistics: append([]Metric(nil), studyStatistics...),
		Settings:   st.Settings,
		FontSizes:  session.FontSizes,
		Paces:      session.LearningPaces,
	}
	for _, cat := range catalog.AllCategories() {
		ps := st.Progress.State(cat)
		n := s.catalog.Len(cat)
		pv.Progress = append(pv.Progress, ProgressCard{
			Category:  cat,
			Title:     cat.DisplayName(),
			Completed: append([]string{}, ps.Completed...),
			Count:     len(ps.Completed),
			Total:     n,
			Percent:   math.Round(ps.CompletedRatio(n)*1000) / 10,
		})
	}
	v.Profile = pv
}

func (s *Service) profileAction(st *session.State) error {
	if err := requireAuth(st); err != nil {
		return err
	}
	st.Navigate(session.PageProfile)
	return nil
}

// ProfileUpdate holds the editable profile fields.
type ProfileUpdate struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}

// SaveProfile stores profile edits for the rest of the session.
func (s *Service) SaveProfile(ctx context.Context, st *session.State, u ProfileUpdate) (View, error) {
	if err := s.profileAction(st); err != nil {
		return View{}, err
	}
	st.Profile.FullName = strings.TrimSpace(u.FullName)
	st.Profile.Email = strings.TrimSpace(u.Email)
	st.Profile.Bio = u.Bio
	s.record(ctx, st, store.KindProfileSaved, "")
	return s.render(st, Notice{Level: LevelSuccess, Text: MsgProfileSaved}), nil
}

// SaveSettings replaces the session's settings after validating them.
func (s *Service) SaveSettings(ctx context.Context, st *session.State, set session.Settings) (View, error) {
	if err := s.profileAction(st); err != nil {
		return View{}, err
	}
	if err := set.Validate(); err != nil {
		return View{}, err
	}
	themeChanged := set.Theme != st.Settings.Theme
	st.Settings = set
	s.record(ctx, st, store.KindSettingsSaved, string(set.Theme))

	var notices []Notice
	if themeChanged {
		notices = append(notices, Notice{Level: LevelInfo, Text: MsgThemeUpdated})
	}
	notices = append(notices, Notice{Level: LevelSuccess, Text: MsgSettingsSaved})
	return s.render(st, notices...), nil
}

// ResetProgress clears all learning progress once confirmed.
func (s *Service) ResetProgress(ctx context.Context, st *session.State, confirm bool) (View, error) {
	if err := s.profileAction(st); err != nil {
		return View{}, err
	}
	if err := st.ResetProgress(confirm); err != nil {
		return View{}, err
	}
	s.record(ctx, st, store.KindProgressReset, "")
	return s.render(st, Notice{Level: LevelSuccess, Text: MsgProgressReset}), nil
}

// ResetPassword pretends to send a password reset email.
func (s *Service) ResetPassword(st *session.State) (View, error) {
	if err := s.profileAction(st); err != nil {
		return View{}, err
	}
	return s.render(st, Notice{Level: LevelInfo, Text: MsgPasswordReset}), nil
}

// UploadPhoto explains that profile photos are unavailable.
func (s *Service) UploadPhoto(st *session.State) (View, error) {
	if err := s.profileAction(st); err != nil {
		return View{}, err
	}
	return s.render(st, Notice{Level: LevelInfo, Text: MsgPhotoUpload}), nil
}

// DeleteAccount explains that accounts cannot be deleted. Nothing changes.
func (s *Service) DeleteAccount(st *session.State) (View, error) {
	if err := s.profileAction(st); err != nil {
		return View{}, err
	}
	return s.render(st, Notice{Level: LevelError, Text: MsgDeleteAccount}), nil
}

// Export is the downloadable copy of a session's data.
type Export struct {
	Username   string                              `json:"username"`
	ExportedAt time.Time                           `json:"exported_at"`
	Profile    session.Profile                     `json:"profile"`
	Settings   session.Settings                    `json:"settings"`
	Progress   map[catalog.Category]progress.State `json:"progress"`
	Chat       []chat.Message                      `json:"chat"`
}

// ExportData returns the session's profile, settings, progress and chat.
func (s *Service) ExportData(st *session.State) (Export, error) {
	if err := requireAuth(st); err != nil {
		return Export{}, err
	}
	return Export{
		Username:   st.Username,
		ExportedAt: time.Now().UTC(),
		Profile:    st.Profile,
		Settings:   st.Settings,
		Progress:   st.Progress.Snapshot(),
		Chat:       st.Chat.Messages(),
	}, nil
}

// ExportJSON is ExportData encoded as indented JSON.
func (s *Service) ExportJSON(st *session.State) ([]byte, error) {
	exp, err := s.ExportData(st)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return b, nil
}
