package pages

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/session"
)

func TestProfileView(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)
	_, _ = svc.Advance(ctx, st, "alphabets")

	v := svc.Navigate(st, "profile")
	pv := v.Profile
	require.NotNil(t, pv)
	assert.Equal(t, "Demo User", pv.Profile.FullName)
	assert.Equal(t, "demo@signaura.com", pv.Profile.Email)
	assert.Equal(t, "January 2025", pv.Profile.MemberSince)
	require.Len(t, pv.Progress, 3)
	assert.Equal(t, 1, pv.Progress[0].Count)
	assert.Equal(t, 33.3, pv.Progress[0].Percent)
	assert.Equal(t, []string{"A"}, pv.Progress[0].Completed)
	assert.Len(t, pv.Statistics, 4)
}

func TestSaveProfile(t *testing.T) {
	svc, _ := newTestService(t)
	st := loggedIn(t, svc)

	v, err := svc.SaveProfile(context.Background(), st, ProfileUpdate{
		FullName: "  Ada  ",
		Email:    "ada@example.com",
		Bio:      "Signing daily",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", v.Profile.Profile.FullName)
	assert.Equal(t, "January 2025", v.Profile.Profile.MemberSince)
	assert.Equal(t, MsgProfileSaved, v.Notices[0].Text)
}

func TestSaveSettings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)

	set := session.DefaultSettings()
	set.Theme = session.ThemeDark
	set.VoiceSpeed = 1.5
	v, err := svc.SaveSettings(ctx, st, set)
	require.NoError(t, err)
	require.Len(t, v.Notices, 2)
	assert.Equal(t, MsgThemeUpdated, v.Notices[0].Text)
	assert.Equal(t, MsgSettingsSaved, v.Notices[1].Text)
	assert.Equal(t, session.ThemeDark, st.Settings.Theme)

	bad := set
	bad.FontSize = "huge"
	_, err = svc.SaveSettings(ctx, st, bad)
	assert.ErrorIs(t, err, session.ErrInvalidSettings)
	assert.Equal(t, "medium", st.Settings.FontSize, "invalid settings are not applied")
}

func TestResetProgress(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)
	_, _ = svc.Advance(ctx, st, "words")

	_, err := svc.ResetProgress(ctx, st, false)
	assert.ErrorIs(t, err, session.ErrConfirmationRequired)
	assert.Equal(t, MsgConfirmReset, UserMessage(err))
	assert.Equal(t, 1, st.Progress.Summary().Words)

	v, err := svc.ResetProgress(ctx, st, true)
	require.NoError(t, err)
	assert.Equal(t, MsgProgressReset, v.Notices[0].Text)
	assert.Zero(t, st.Progress.Summary().Total())
}

func TestProfileInfoActions(t *testing.T) {
	svc, _ := newTestService(t)
	st := loggedIn(t, svc)

	v, err := svc.ResetPassword(st)
	require.NoError(t, err)
	assert.Equal(t, MsgPasswordReset, v.Notices[0].Text)

	v, err = svc.DeleteAccount(st)
	require.NoError(t, err)
	assert.Equal(t, LevelError, v.Notices[0].Level)
	assert.True(t, st.Authenticated)

	v, err = svc.UploadPhoto(st)
	require.NoError(t, err)
	assert.Equal(t, MsgPhotoUpload, v.Notices[0].Text)
}

func TestExportJSON(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)
	_, _ = svc.Advance(ctx, st, "numbers")
	_, _ = svc.SendChat(ctx, st, "hello")

	b, err := svc.ExportJSON(st)
	require.NoError(t, err)

	var exp Export
	require.NoError(t, json.Unmarshal(b, &exp))
	assert.Equal(t, "demo", exp.Username)
	assert.Equal(t, []string{"1"}, exp.Progress[catalog.CategoryNumbers].Completed)
	assert.Len(t, exp.Chat, 2)
	assert.Equal(t, session.ThemeLight, exp.Settings.Theme)
}
