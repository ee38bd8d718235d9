package profile

import (
	"fmt"
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/signaura/signaura/internal/session"
)

type rowKind int

const (
	rowText rowKind = iota
	rowToggle
	rowChoice
	rowButton
	rowHeading
)

// row is one line of the profile form.
type row struct {
	label string
	kind  rowKind

	// text rows
	text *string

	// toggle rows
	flag *bool

	// choice rows step through values; delta is -1 or +1.
	value func() string
	step  func(delta int)

	// button rows
	act func() tea.Cmd
}

func (r row) display() string {
	switch r.kind {
	case rowText:
		return *r.text
	case rowToggle:
		if *r.flag {
			return "[x]"
		}
		return "[ ]"
	case rowChoice:
		return "‹ " + r.value() + " ›"
	}
	return ""
}

func (r row) selectable() bool {
	return r.kind != rowHeading
}

// cycle returns the value delta steps after current in values, wrapping.
func cycle(values []string, current string, delta int) string {
	for i, v := range values {
		if v == current {
			return values[(i+delta+len(values))%len(values)]
		}
	}
	return values[0]
}

// stepSpeed moves the voice speed by delta tenths within 0.5-2.0.
func stepSpeed(speed float64, delta int) float64 {
	tenths := math.Round(speed*10) + float64(delta)
	return math.Min(math.Max(tenths, 5), 20) / 10
}

func (s *ProfileScreen) buildRows() []row {
	p, set := &s.profile, &s.settings
	return []row{
		{label: "Profile Information", kind: rowHeading},
		{label: "Full Name", kind: rowText, text: &p.FullName},
		{label: "Email", kind: rowText, text: &p.Email},
		{label: "Bio", kind: rowText, text: &p.Bio},
		{label: "Save Profile", kind: rowButton, act: s.saveProfile},

		{label: "Display Settings", kind: rowHeading},
		{label: "Theme", kind: rowChoice,
			value: func() string { return string(set.Theme) },
			step: func(int) {
				if set.Theme == session.ThemeDark {
					set.Theme = session.ThemeLight
				} else {
					set.Theme = session.ThemeDark
				}
			}},
		{label: "Font Size", kind: rowChoice,
			value: func() string { return set.FontSize },
			step:  func(d int) { set.FontSize = cycle(session.FontSizes, set.FontSize, d) }},
		{label: "Show progress indicators", kind: rowToggle, flag: &set.ShowProgress},

		{label: "Learning Preferences", kind: rowHeading},
		{label: "Auto-play videos", kind: rowToggle, flag: &set.AutoPlay},
		{label: "Repeat videos automatically", kind: rowToggle, flag: &set.RepeatVideos},
		{label: "Learning Pace", kind: rowChoice,
			value: func() string { return set.LearningPace },
			step:  func(d int) { set.LearningPace = cycle(session.LearningPaces, set.LearningPace, d) }},

		{label: "Notifications", kind: rowHeading},
		{label: "Daily learning reminder", kind: rowToggle, flag: &set.DailyReminder},
		{label: "Reminder Time", kind: rowText, text: &set.ReminderTime},
		{label: "Achievement notifications", kind: rowToggle, flag: &set.AchievementNotifications},
		{label: "Weekly progress emails", kind: rowToggle, flag: &set.ProgressEmails},

		{label: "Audio", kind: rowHeading},
		{label: "Sound effects", kind: rowToggle, flag: &set.SoundEffects},
		{label: "Voice feedback", kind: rowToggle, flag: &set.VoiceFeedback},
		{label: "Voice Speed", kind: rowChoice,
			value: func() string { return fmt.Sprintf("%.1f", set.VoiceSpeed) },
			step:  func(d int) { set.VoiceSpeed = stepSpeed(set.VoiceSpeed, d) }},
		{label: "Save Settings", kind: rowButton, act: s.saveSettings},

		{label: "Account", kind: rowHeading},
		{label: "Reset Progress", kind: rowButton, act: s.askReset},
		{label: "Export Data", kind: rowButton, act: s.export},
		{label: "Reset Password", kind: rowButton, act: s.resetPassword},
		{label: "Upload Photo", kind: rowButton, act: s.uploadPhoto},
		{label: "Delete Account", kind: rowButton, act: s.deleteAccount},
	}
}
