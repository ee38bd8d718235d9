package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/signaura/signaura/internal/observability"
	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/session"
)

type ctxKey string

const ctxKeyState ctxKey = "session_state"

// stateFrom returns the session state attached by withSession.
func stateFrom(ctx context.Context) *session.State {
	st, _ := ctx.Value(ctxKeyState).(*session.State)
	return st
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID tags the request context with an id, reusing X-Request-ID
// when the client sent one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(observability.WithRequestID(r.Context(), id)))
	})
}

// withLogging logs every request once it completes.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		observability.LoggerFromContext(r.Context(), s.logger).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// withRecover turns a panic into a 500 response.
func (s *Server) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				observability.LoggerFromContext(r.Context(), s.logger).Error("panic in handler", "panic", v)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withSession leases the caller's session for the duration of the request,
// starting a new one when the cookie is missing, invalid or expired.
// Requests on one session are handled one at a time.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lease := s.lease(r)
		defer lease.Release()

		if err := s.cookies.set(w, lease.State.ID); err != nil {
			s.fail(w, r, err)
			return
		}

		ctx := observability.WithSessionID(r.Context(), lease.State.ID)
		ctx = context.WithValue(ctx, ctxKeyState, lease.State)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) lease(r *http.Request) *sessionLease {
	if id, err := s.cookies.sessionID(r); err == nil {
		if l, err := s.sessions.Acquire(id); err == nil {
			return l
		}
	}
	return s.sessions.Create()
}

// requireAuth rejects requests from sessions that are not logged in.
func requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := stateFrom(r.Context())
		if st == nil || !st.Authenticated {
			writeError(w, http.StatusUnauthorized, pages.MsgLoginRequired)
			return
		}
		next(w, r)
	})
}
