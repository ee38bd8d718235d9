package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(withRequestID, s.withLogging, s.withRecover)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.withSession)

	api.HandleFunc("/view", s.handleView).Methods(http.MethodGet)
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/login/demo", s.handleDemoLogin).Methods(http.MethodPost)
	api.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)

	api.Handle("/logout", requireAuth(s.handleLogout)).Methods(http.MethodPost)
	api.Handle("/navigate", requireAuth(s.handleNavigate)).Methods(http.MethodPost)

	api.Handle("/learning", requireAuth(s.handleLearning)).Methods(http.MethodGet)
	api.Handle("/learning/{category}/advance", requireAuth(s.handleAdvance)).Methods(http.MethodPost)
	api.Handle("/learning/{category}/restart", requireAuth(s.handleRestart)).Methods(http.MethodPost)
	api.Handle("/learning/{category}/replay", requireAuth(s.handleReplay)).Methods(http.MethodPost)

	api.Handle("/translate/image", requireAuth(s.handleAnalyzeImage)).Methods(http.MethodPost)
	api.Handle("/translate/camera", requireAuth(s.handleCamera)).Methods(http.MethodPost)
	api.Handle("/translate/text", requireAuth(s.handleTextToSigns)).Methods(http.MethodPost)
	api.Handle("/translate/voice", requireAuth(s.handleVoice)).Methods(http.MethodPost)
	api.Handle("/translate/phrases/{phrase}", requireAuth(s.handlePhrase)).Methods(http.MethodGet)

	api.Handle("/chat", requireAuth(s.handleChatView)).Methods(http.MethodGet)
	api.Handle("/chat", requireAuth(s.handleSendChat)).Methods(http.MethodPost)
	api.Handle("/chat", requireAuth(s.handleClearChat)).Methods(http.MethodDelete)

	api.Handle("/dictionary", requireAuth(s.handleDictionary)).Methods(http.MethodGet)
	api.Handle("/dictionary/filter", requireAuth(s.handleDictionaryFilter)).Methods(http.MethodPost)
	api.Handle("/dictionary/{label}/play", requireAuth(s.handlePlaySign)).Methods(http.MethodPost)

	api.Handle("/profile", requireAuth(s.handleProfileView)).Methods(http.MethodGet)
	api.Handle("/profile", requireAuth(s.handleSaveProfile)).Methods(http.MethodPut)
	api.Handle("/profile/settings", requireAuth(s.handleSaveSettings)).Methods(http.MethodPut)
	api.Handle("/profile/progress/reset", requireAuth(s.handleResetProgress)).Methods(http.MethodPost)
	api.Handle("/profile/password/reset", requireAuth(s.handleResetPassword)).Methods(http.MethodPost)
	api.Handle("/profile/photo", requireAuth(s.handleUploadPhoto)).Methods(http.MethodPost)
	api.Handle("/profile/export", requireAuth(s.handleExport)).Methods(http.MethodGet)
	api.Handle("/profile", requireAuth(s.handleDeleteAccount)).Methods(http.MethodDelete)

	// Subrouters keep their own fallbacks; without these a wrong method
	// under /api reports 404.
	for _, router := range []*mux.Router{r, api} {
		router.NotFoundHandler = http.HandlerFunc(notFound)
		router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	}
	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
