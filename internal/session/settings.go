package session

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidSettings is returned when a settings value is out of range.
var ErrInvalidSettings = errors.New("invalid settings")

// Theme is the display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds the app preferences of a session.
type Settings struct {
	Theme         Theme  `json:"theme"`
	FontSize      string `json:"font_size"`      // small, medium, large
	ShowProgress  bool   `json:"show_progress"`  // show progress indicators
	AutoPlay      bool   `json:"auto_play"`      // auto-play videos
	RepeatVideos  bool   `json:"repeat_videos"`  // repeat videos automatically
	LearningPace  string `json:"learning_pace"`  // beginner, intermediate, advanced
	DailyReminder bool   `json:"daily_reminder"` // daily learning reminder
	ReminderTime  string `json:"reminder_time"`  // HH:MM, empty when unset

	AchievementNotifications bool `json:"achievement_notifications"`
	ProgressEmails           bool `json:"progress_emails"`

	SoundEffects  bool    `json:"sound_effects"`
	VoiceFeedback bool    `json:"voice_feedback"`
	VoiceSpeed    float64 `json:"voice_speed"` // 0.5-2.0 in steps of 0.1
}

// Allowed values for the enumerated settings.
var (
	FontSizes     = []string{"small", "medium", "large"}
	LearningPaces = []string{"beginner", "intermediate", "advanced"}
)

// DefaultSettings returns the settings a new session starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:                    ThemeLight,
		FontSize:                 "medium",
		ShowProgress:             true,
		AutoPlay:                 true,
		RepeatVideos:             false,
		LearningPace:             "beginner",
		DailyReminder:            true,
		AchievementNotifications: true,
		ProgressEmails:           false,
		SoundEffects:             true,
		VoiceFeedback:            true,
		VoiceSpeed:               1.0,
	}
}

// Validate checks every field against its allowed range.
func (s Settings) Validate() error {
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		return fmt.Errorf("%w: theme %q", ErrInvalidSettings, s.Theme)
	}
	if !oneOf(s.FontSize, FontSizes) {
		return fmt.Errorf("%w: font size %q", ErrInvalidSettings, s.FontSize)
	}
	if !oneOf(s.LearningPace, LearningPaces) {
		return fmt.Errorf("%w: learning pace %q", ErrInvalidSettings, s.LearningPace)
	}
	if s.ReminderTime != "" {
		if _, err := time.Parse("15:04", s.ReminderTime); err != nil {
			return fmt.Errorf("%w: reminder time %q", ErrInvalidSettings, s.ReminderTime)
		}
	}
	if s.VoiceSpeed < 0.5 || s.VoiceSpeed > 2.0 {
		return fmt.Errorf("%w: voice speed %.2f out of range", ErrInvalidSettings, s.VoiceSpeed)
	}
	if tenths := s.VoiceSpeed * 10; math.Abs(tenths-math.Round(tenths)) > 1e-9 {
		return fmt.Errorf("%w: voice speed %.2f is not a multiple of 0.1", ErrInvalidSettings, s.VoiceSpeed)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Profile is the editable account information shown on the profile page.
// Edits live only as long as the session.
type Profile struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
	MemberSince string `json:"member_since"`
}

// DefaultProfile returns the placeholder profile for a user email.
func DefaultProfile(email string) Profile {
	return Profile{
		FullName:    "Demo User",
		Email:       email,
		Bio:         "Learning sign language with Signaura!",
		MemberSince: "January 2025",
	}
}
