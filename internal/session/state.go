package session

import (
	"errors"
	"time"

	"github.com/signaura/signaura/internal/auth"
	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/chat"
	"github.com/signaura/signaura/internal/progress"
)

// ErrConfirmationRequired is returned when a destructive action was not
// explicitly confirmed.
var ErrConfirmationRequired = errors.New("confirmation required")

// State is everything one session knows. It is created with defaults when a
// session starts and discarded when the session ends; nothing is persisted.
// A State is not safe for concurrent use; callers serialize access.
type State struct {
	// ID identifies the session.
	ID string

	// Authenticated is true after a successful or demo login.
	Authenticated bool

	// Username is the logged-in user ("" when logged out).
	Username string

	// Page is the page the router renders next.
	Page Page

	// Progress tracks per-category learning progress.
	Progress *progress.Tracker

	// Chat is the assistant transcript.
	Chat chat.Transcript

	// Settings are the display, learning and notification preferences.
	Settings Settings

	// Profile is the editable account information.
	Profile Profile

	// DictFilter is the dictionary's quick-navigation filter.
	DictFilter catalog.Filter

	// CreatedAt is when the session started.
	CreatedAt time.Time
}

// New creates a session state with defaults.
func New(id string, c *catalog.Catalog) *State {
	return &State{
		ID:        id,
		Page:      PageLogin,
		Progress:  progress.NewTracker(c),
		Settings:  DefaultSettings(),
		Profile:   DefaultProfile(""),
		CreatedAt: time.Now(),
	}
}

// Login marks the session authenticated as u and opens the dashboard.
func (s *State) Login(u auth.User) {
	s.Authenticated = true
	s.Username = u.Username
	s.Profile.Email = u.Email
	s.Page = PageDashboard
}

// Logout clears the identity and returns to the login page. Progress, chat
// and settings stay with the session until it ends.
func (s *State) Logout() {
	s.Authenticated = false
	s.Username = ""
	s.Page = PageLogin
}

// Navigate sets the next page to render.
func (s *State) Navigate(p Page) {
	s.Page = p
}

// ResetProgress clears progress in every category. It refuses to act
// unless confirm is true.
func (s *State) ResetProgress(confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	s.Progress.ResetAll()
	return nil
}

// ClearChat empties the assistant transcript.
func (s *State) ClearChat() {
	s.Chat.Clear()
}
