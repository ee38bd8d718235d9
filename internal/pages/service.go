// Package pages renders the app's pages as view-models and applies the
// user actions available on each page. The HTTP server and the terminal
// front-end both drive the app through a Service.
package pages

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/signaura/signaura/internal/auth"
	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/observability"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/store"
	"github.com/signaura/signaura/internal/translate"
)

// ErrNotAuthenticated is returned by actions that need a logged-in session.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrUnknownPhrase is returned for a phrase outside the quick-phrase list.
var ErrUnknownPhrase = errors.New("unknown phrase")

// Options configures a Service. Nil fields fall back to defaults.
type Options struct {
	Catalog  *catalog.Catalog
	Users    *auth.Directory
	Analyzer *translate.Analyzer
	Activity store.ActivityRepo // nil disables the activity log
	Logger   *slog.Logger
}

// Service holds the shared, read-only resources every page needs.
// It is safe for concurrent use; per-session state is passed in.
type Service struct {
	catalog  *catalog.Catalog
	users    *auth.Directory
	analyzer *translate.Analyzer
	activity store.ActivityRepo
	logger   *slog.Logger
}

// NewService creates a Service from opts.
func NewService(opts Options) *Service {
	s := &Service{
		catalog:  opts.Catalog,
		users:    opts.Users,
		analyzer: opts.Analyzer,
		activity: opts.Activity,
		logger:   opts.Logger,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.users == nil {
		s.users = auth.DefaultDirectory()
	}
	if s.analyzer == nil {
		s.analyzer = translate.NewAnalyzer(translate.DefaultAnalysisDelay)
	}
	if s.logger == nil {
		s.logger = observability.Discard()
	}
	return s
}

// Catalog returns the sign catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Analyzer returns the sign analyzer.
func (s *Service) Analyzer() *translate.Analyzer {
	return s.analyzer
}

// NewSession creates a fresh session state for id.
func (s *Service) NewSession(id string) *session.State {
	return session.New(id, s.catalog)
}

// record appends an activity event. Failures are logged, never returned.
func (s *Service) record(ctx context.Context, st *session.State, kind store.Kind, detail string) {
	if s.activity == nil {
		return
	}
	err := s.activity.AppendActivity(ctx, store.ActivityEventData{
		SessionID: st.ID,
		Username:  st.Username,
		Kind:      kind,
		Detail:    detail,
	})
	if err != nil {
		observability.LoggerFromContext(ctx, s.logger).Warn("record activity failed",
			"kind", kind, "error", err)
	}
}

func requireAuth(st *session.State) error {
	if !st.Authenticated {
		return ErrNotAuthenticated
	}
	return nil
}

// titleCase capitalizes each word. A Caser keeps state, so one is made per
// call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// UserMessage turns an action error into the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, auth.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, auth.ErrPasswordMismatch), errors.Is(err, auth.ErrPasswordTooShort):
		return MsgSignupInvalid
	case errors.Is(err, ErrNotAuthenticated):
		return MsgLoginRequired
	case errors.Is(err, session.ErrConfirmationRequired):
		return MsgConfirmReset
	case errors.Is(err, translate.ErrUnsupportedImage):
		return MsgUnsupportedImage
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return MsgAnalysisInterrupted
	case errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, session.ErrInvalidSettings),
		errors.Is(err, ErrUnknownPhrase):
		return err.Error()
	default:
		return "Something went wrong. Please try again."
	}
}
