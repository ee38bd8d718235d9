package pages

import (
	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/chat"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/translate"
)

// Level classifies a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a one-off message shown above the page.
type Notice struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// View is the complete rendering of one page. Exactly one of the page
// fields is set, matching Page.
type View struct {
	Page    session.Page `json:"page"`
	Title   string       `json:"title"`
	Sidebar Sidebar      `json:"sidebar"`
	Notices []Notice     `json:"notices,omitempty"`

	Login      *LoginView      `json:"login,omitempty"`
	Dashboard  *DashboardView  `json:"dashboard,omitempty"`
	Learning   *LearningView   `json:"learning,omitempty"`
	Translator *TranslatorView `json:"translator,omitempty"`
	Chatbot    *ChatbotView    `json:"chatbot,omitempty"`
	Dictionary *DictionaryView `json:"dictionary,omitempty"`
	Profile    *ProfileView    `json:"profile,omitempty"`

	Footer string `json:"footer"`
}

func (v *View) notify(level Level, text string) {
	v.Notices = append(v.Notices, Notice{Level: level, Text: text})
}

// NavItem is one sidebar navigation entry.
type NavItem struct {
	Page   session.Page `json:"page"`
	Label  string       `json:"label"`
	Active bool         `json:"active"`
}

// Sidebar is shown next to every page.
type Sidebar struct {
	Welcome      string    `json:"welcome,omitempty"`
	Nav          []NavItem `json:"nav,omitempty"`
	SignsLearned int       `json:"signs_learned"`
	StudyStreak  string    `json:"study_streak,omitempty"`
	Hint         string    `json:"hint,omitempty"`
}

// LoginView is the login / signup page.
type LoginView struct {
	DemoHint string `json:"demo_hint"`
}

// Metric is a labelled number on the dashboard or profile.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// FeatureCard links the dashboard to a page.
type FeatureCard struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Action      string       `json:"action"`
	Target      session.Page `json:"target"`
}

// DashboardView is the landing page after login.
type DashboardView struct {
	Welcome  string        `json:"welcome"`
	Metrics  []Metric      `json:"metrics"`
	Features []FeatureCard `json:"features"`
}

// LessonView is the flashcard lesson of one category.
type LessonView struct {
	Category   catalog.Category `json:"category"`
	Heading    string           `json:"heading"`
	Current    *catalog.Entry   `json:"current,omitempty"` // nil when complete
	Title      string           `json:"title,omitempty"`
	Cursor     int              `json:"cursor"`
	Total      int              `json:"total"`
	Ratio      float64          `json:"ratio"` // cursor / total
	Completed  []string         `json:"completed"`
	Done       bool             `json:"done"`
	DoneText   string           `json:"done_text,omitempty"`
	ProgressOf string           `json:"progress_of"` // "1/3 completed"
}

// LearningView holds one lesson per category.
type LearningView struct {
	Lessons []LessonView `json:"lessons"`
}

// TranslatorView is the translator page.
type TranslatorView struct {
	Prediction   *translate.Prediction   `json:"prediction,omitempty"`
	Segments     []translate.Segment     `json:"segments,omitempty"`
	Phrase       *PhraseCard             `json:"phrase,omitempty"`
	QuickPhrases []string                `json:"quick_phrases"`
	History      []translate.HistoryItem `json:"history"`
	CameraNotice string                  `json:"camera_notice"`
	VoiceNotice  string                  `json:"voice_notice"`
}

// PhraseCard is the placeholder sign card of a quick phrase.
type PhraseCard struct {
	Phrase   string `json:"phrase"`
	MediaRef string `json:"media_ref"`
	Caption  string `json:"caption"`
}

// ChatbotView is the assistant page.
type ChatbotView struct {
	Messages       []chat.Message `json:"messages"`
	QuickQuestions []string       `json:"quick_questions"`
}

// DictionaryResult is one search hit.
type DictionaryResult struct {
	Category string        `json:"category"`
	Heading  string        `json:"heading"` // upper-cased label with category
	Entry    catalog.Entry `json:"entry"`
}

// DictionaryGroup is one category in browse mode.
type DictionaryGroup struct {
	Title   string          `json:"title"`
	Entries []catalog.Entry `json:"entries"`
}

// DictionaryView is the dictionary page, in search or browse mode.
type DictionaryView struct {
	Term       string             `json:"term,omitempty"`
	Filter     string             `json:"filter"`
	Filters    []string           `json:"filters"`
	Heading    string             `json:"heading"`
	Results    []DictionaryResult `json:"results,omitempty"`
	Groups     []DictionaryGroup  `json:"groups,omitempty"`
	TotalSigns int                `json:"total_signs"`
	Categories int                `json:"categories"`
}

// ProgressCard summarizes one category on the profile page.
type ProgressCard struct {
	Category  catalog.Category `json:"category"`
	Title     string           `json:"title"`
	Completed []string         `json:"completed"`
	Count     int              `json:"count"`
	Total     int              `json:"total"`
	Percent   float64          `json:"percent"`
}

// ProfileView is the profile, progress and settings page.
type ProfileView struct {
	Username   string           `json:"username"`
	Profile    session.Profile  `json:"profile"`
	Progress   []ProgressCard   `json:"progress"`
	Statistics []Metric         `json:"statistics"`
	Settings   session.Settings `json:"settings"`
	FontSizes  []string         `json:"font_sizes"`
	Paces      []string         `json:"learning_paces"`
}
