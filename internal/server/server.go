// Package server exposes the app as a JSON HTTP API. Every action responds
// with the re-rendered page so a browser front-end can redraw from it.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/signaura/signaura/internal/observability"
	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/sessionstore"
)

// DefaultMaxUploadBytes bounds image uploads.
const DefaultMaxUploadBytes = 10 << 20

const shutdownTimeout = 5 * time.Second

type sessionLease = sessionstore.Lease

// Options configures a Server.
type Options struct {
	Pages          *pages.Service
	Sessions       *sessionstore.Store
	Secret         []byte
	SessionTTL     time.Duration
	MaxUploadBytes int64
	SecureCookie   bool
	Logger         *slog.Logger
}

// Server routes HTTP requests to page actions.
type Server struct {
	pages     *pages.Service
	sessions  *sessionstore.Store
	cookies   *cookieCodec
	maxUpload int64
	logger    *slog.Logger
	router    *mux.Router
}

// New creates a Server. Secret must not be empty.
func New(opts Options) (*Server, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("session secret is required")
	}
	if opts.Pages == nil {
		opts.Pages = pages.NewService(pages.Options{})
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = sessionstore.DefaultTTL
	}
	if opts.Sessions == nil {
		opts.Sessions = sessionstore.New(opts.Pages.Catalog(), opts.SessionTTL)
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.Logger == nil {
		opts.Logger = observability.Discard()
	}

	s := &Server{
		pages:    opts.Pages,
		sessions: opts.Sessions,
		cookies: &cookieCodec{
			secret: opts.Secret,
			ttl:    opts.SessionTTL,
			secure: opts.SecureCookie,
			now:    time.Now,
		},
		maxUpload: opts.MaxUploadBytes,
		logger:    opts.Logger,
	}
	s.router = s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
