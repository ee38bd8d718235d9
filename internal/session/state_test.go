package session

import (
	"errors"
	"testing"

	"github.com/signaura/signaura/internal/auth"
	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/chat"
)

func TestNew_Defaults(t *testing.T) {
	s := New("sid", catalog.Default())

	if s.Authenticated {
		t.Error("new session should not be authenticated")
	}
	if s.Page != PageLogin {
		t.Errorf("Page = %q, want Login", s.Page)
	}
	if s.Settings.Theme != ThemeLight {
		t.Errorf("Theme = %q, want light", s.Settings.Theme)
	}
	if s.Progress.Summary().Total() != 0 {
		t.Error("new session should have no progress")
	}
	if s.Chat.Len() != 0 {
		t.Error("new session should have an empty transcript")
	}
}

func TestLoginLogout(t *testing.T) {
	s := New("sid", catalog.Default())
	s.Login(auth.User{Username: "user1", Email: "user1@example.com"})

	if !s.Authenticated || s.Username != "user1" {
		t.Fatalf("after Login: authenticated=%v username=%q", s.Authenticated, s.Username)
	}
	if s.Page != PageDashboard {
		t.Errorf("Page = %q, want Dashboard", s.Page)
	}
	if s.Profile.Email != "user1@example.com" {
		t.Errorf("Profile.Email = %q", s.Profile.Email)
	}

	s.Progress.Advance(catalog.CategoryAlphabets)
	s.Chat.Append(chat.RoleUser, "hi")
	s.Logout()

	if s.Authenticated || s.Username != "" || s.Page != PageLogin {
		t.Errorf("after Logout: %+v", s)
	}
	if s.Progress.Summary().Letters != 1 {
		t.Error("progress should survive logout within the session")
	}
	if s.Chat.Len() != 1 {
		t.Error("chat should survive logout within the session")
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		in   string
		want Page
		ok   bool
	}{
		{"Dashboard", PageDashboard, true},
		{"learning", PageLearning, true},
		{" PROFILE ", PageProfile, true},
		{"Login", PageLogin, true},
		{"Settings", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePage(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePage(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSettings_Validate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"theme", func(s *Settings) { s.Theme = "sepia" }},
		{"font size", func(s *Settings) { s.FontSize = "huge" }},
		{"pace", func(s *Settings) { s.LearningPace = "expert" }},
		{"reminder time", func(s *Settings) { s.ReminderTime = "25:00" }},
		{"voice speed low", func(s *Settings) { s.VoiceSpeed = 0.4 }},
		{"voice speed high", func(s *Settings) { s.VoiceSpeed = 2.1 }},
		{"voice speed step", func(s *Settings) { s.VoiceSpeed = 1.05 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestSettings_ValidateAccepts(t *testing.T) {
	s := DefaultSettings()
	s.Theme = ThemeDark
	s.ReminderTime = "07:30"
	s.VoiceSpeed = 1.7

	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestResetProgress_RequiresConfirmation(t *testing.T) {
	s := New("sid", catalog.Default())
	s.Progress.Advance(catalog.CategoryAlphabets)

	if err := s.ResetProgress(false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("ResetProgress(false) = %v, want ErrConfirmationRequired", err)
	}
	if got := s.Progress.Summary().Letters; got != 1 {
		t.Errorf("unconfirmed reset changed progress: letters = %d", got)
	}

	if err := s.ResetProgress(true); err != nil {
		t.Fatalf("ResetProgress(true): %v", err)
	}
	if got := s.Progress.Summary().Total(); got != 0 {
		t.Errorf("after reset total = %d, want 0", got)
	}
}

func TestClearChat(t *testing.T) {
	s := New("sid", catalog.Default())
	s.Chat.Append(chat.RoleUser, "hi")
	s.ClearChat()
	if s.Chat.Len() != 0 {
		t.Errorf("Len = %d after clear", s.Chat.Len())
	}
}
