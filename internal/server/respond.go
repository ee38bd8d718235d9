package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signaura/signaura/internal/auth"
	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/observability"
	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/translate"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps an action error to an HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, pages.ErrNotAuthenticated),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, pages.ErrUnknownPhrase):
		return http.StatusNotFound
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, session.ErrInvalidSettings),
		errors.Is(err, session.ErrConfirmationRequired),
		errors.Is(err, translate.ErrUnsupportedImage):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageFor is the user-facing text of err.
func messageFor(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return "Upload is too large"
	}
	if errors.Is(err, errInvalidRequest) {
		return err.Error()
	}
	return pages.UserMessage(err)
}

// fail writes err as a JSON error response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.failWithStatus(w, r, statusFor(err), err)
}

func (s *Server) failWithStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	log := observability.LoggerFromContext(r.Context(), s.logger)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "status", status, "error", err)
	} else {
		log.Debug("request rejected", "status", status, "error", err)
	}
	writeError(w, status, messageFor(err))
}

// respond writes a view or the action's error.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, v pages.View, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
