package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/signaura/signaura/internal/auth"
	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/session"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.Render(stateFrom(r.Context())))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, "login", &req); err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.pages.Login(r.Context(), stateFrom(r.Context()), req.Username, req.Password)
	s.respond(w, r, v, err)
}

func (s *Server) handleDemoLogin(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.DemoLogin(r.Context(), stateFrom(r.Context()))
	s.respond(w, r, v, err)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupRequest
	if err := decodeJSON(r, "signup", &req); err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.pages.Signup(r.Context(), stateFrom(r.Context()), req)
	s.respond(w, r, v, err)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.Logout(r.Context(), stateFrom(r.Context())))
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page string `json:"page"`
	}
	if err := decodeJSON(r, "navigate", &req); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.pages.Navigate(stateFrom(r.Context()), req.Page))
}

func (s *Server) handleLearning(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.Navigate(stateFrom(r.Context()), string(session.PageLearning)))
}

// lessonResult maps an unknown category in the path to 404.
func (s *Server) lessonResult(w http.ResponseWriter, r *http.Request, v pages.View, err error) {
	if errors.Is(err, catalog.ErrUnknownCategory) {
		s.failWithStatus(w, r, http.StatusNotFound, err)
		return
	}
	s.respond(w, r, v, err)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.Advance(r.Context(), stateFrom(r.Context()), mux.Vars(r)["category"])
	s.lessonResult(w, r, v, err)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.Restart(r.Context(), stateFrom(r.Context()), mux.Vars(r)["category"])
	s.lessonResult(w, r, v, err)
}

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.Replay(stateFrom(r.Context()), mux.Vars(r)["category"])
	s.lessonResult(w, r, v, err)
}

func (s *Server) handleAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, err)
			return
		}
		s.fail(w, r, fmt.Errorf("%w: expected a multipart form with an image field", errInvalidRequest))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, hdr, err := r.FormFile("image")
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: missing image upload", errInvalidRequest))
		return
	}
	file.Close()

	v, err := s.pages.AnalyzeImage(r.Context(), stateFrom(r.Context()), hdr.Filename)
	s.respond(w, r, v, err)
}

func (s *Server) handleCamera(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.CaptureCamera(r.Context(), stateFrom(r.Context()))
	s.respond(w, r, v, err)
}

func (s *Server) handleTextToSigns(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, "text", &req); err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.pages.TextToSigns(r.Context(), stateFrom(r.Context()), req.Text)
	s.respond(w, r, v, err)
}

func (s *Server) handleVoice(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.VoiceInput(stateFrom(r.Context()))
	s.respond(w, r, v, err)
}

func (s *Server) handlePhrase(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.Phrase(stateFrom(r.Context()), mux.Vars(r)["phrase"])
	s.respond(w, r, v, err)
}

func (s *Server) handleChatView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.Navigate(stateFrom(r.Context()), string(session.PageChatbot)))
}

func (s *Server) handleSendChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(r, "chat", &req); err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.pages.SendChat(r.Context(), stateFrom(r.Context()), req.Message)
	s.respond(w, r, v, err)
}

func (s *Server) handleClearChat(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.ClearChat(r.Context(), stateFrom(r.Context()))
	s.respond(w, r, v, err)
}

func (s *Server) handleDictionary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v, err := s.pages.Search(r.Context(), stateFrom(r.Context()), q.Get("q"), q.Get("category"))
	s.respond(w, r, v, err)
}

func (s *Server) handleDictionaryFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if err := decodeJSON(r, "filter", &req); err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.pages.SetFilter(stateFrom(r.Context()), req.Category)
	s.respond(w, r, v, err)
}

func (s *Server) handlePlaySign(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.PlaySign(stateFrom(r.Context()), mux.Vars(r)["label"])
	s.respond(w, r, v, err)
}

func (s *Server) handleProfileView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.Navigate(stateFrom(r.Context()), string(session.PageProfile)))
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	st := stateFrom(r.Context())
	req := pages.ProfileUpdate{
		FullName: st.Profile.FullName,
		Email:    st.Profile.Email,
		Bio:      st.Profile.Bio,
	}
	if err := decodeJSON(r, "profile", &req); err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.pages.SaveProfile(r.Context(), st, req)
	s.respond(w, r, v, err)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	st := stateFrom(r.Context())
	set := st.Settings
	if err := decodeJSON(r, "settings", &set); err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.pages.SaveSettings(r.Context(), st, set)
	s.respond(w, r, v, err)
}

func (s *Server) handleResetProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := decodeJSON(r, "reset", &req); err != nil {
		s.fail(w, r, err)
		return
	}
	v, err := s.pages.ResetProgress(r.Context(), stateFrom(r.Context()), req.Confirm)
	s.respond(w, r, v, err)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.ResetPassword(stateFrom(r.Context()))
	s.respond(w, r, v, err)
}

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.UploadPhoto(stateFrom(r.Context()))
	s.respond(w, r, v, err)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	v, err := s.pages.DeleteAccount(stateFrom(r.Context()))
	s.respond(w, r, v, err)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	b, err := s.pages.ExportJSON(stateFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="signaura-export.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
