package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that are currently reading text.
// While CapturingInput is true the app leaves plain keys to the screen.
type InputCapturer interface {
	CapturingInput() bool
}

// Env is what every screen needs to drive the app: the page service and the
// terminal's single session.
type Env struct {
	Ctx   context.Context
	Pages *pages.Service
	State *session.State
}

// NewEnv creates an Env around a fresh session.
func NewEnv(ctx context.Context, svc *pages.Service) *Env {
	return &Env{
		Ctx:   ctx,
		Pages: svc,
		State: svc.NewSession(uuid.NewString()),
	}
}
