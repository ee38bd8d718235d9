package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signaura/signaura/internal/pages"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/translate"
)

var testSecret = []byte("test-secret")

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(Options{
		Pages:  pages.NewService(pages.Options{Analyzer: translate.NewAnalyzer(0)}),
		Secret: testSecret,
	})
	require.NoError(t, err)
	return srv
}

// client replays the session cookie between requests.
type client struct {
	t      *testing.T
	srv    http.Handler
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	return &client{t: t, srv: newTestServer(t)}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.srv.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == CookieName {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) call(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

func (c *client) view(method, path, body string) pages.View {
	c.t.Helper()
	w := c.call(method, path, body)
	require.Equal(c.t, http.StatusOK, w.Code, "body=%s", w.Body.String())
	var v pages.View
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func (c *client) login() {
	c.t.Helper()
	c.view(http.MethodPost, "/api/login/demo", "")
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), "body=%s", w.Body.String())
	return e.Error
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestHealthz(t *testing.T) {
	c := newClient(t)
	w := c.call(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	c := newClient(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := c.do(req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestViewStartsAtLogin(t *testing.T) {
	c := newClient(t)
	v := c.view(http.MethodGet, "/api/view", "")
	assert.Equal(t, session.PageLogin, v.Page)
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	c := newClient(t)
	for _, path := range []string{"/api/learning", "/api/chat", "/api/profile", "/api/dictionary"} {
		w := c.call(http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, pages.MsgLoginRequired, errorOf(t, w))
	}
}

func TestLoginFlow(t *testing.T) {
	c := newClient(t)

	w := c.call(http.MethodPost, "/api/login", `{"username":"demo","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, pages.MsgInvalidCredentials, errorOf(t, w))

	v := c.view(http.MethodPost, "/api/login", `{"username":"demo","password":"demo123"}`)
	assert.Equal(t, session.PageDashboard, v.Page)
	assert.Equal(t, "Welcome, demo!", v.Sidebar.Welcome)

	// The cookie carries the session to the next request.
	v = c.view(http.MethodGet, "/api/view", "")
	assert.Equal(t, session.PageDashboard, v.Page)

	v = c.view(http.MethodPost, "/api/logout", "")
	assert.Equal(t, session.PageLogin, v.Page)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	c := newClient(t)

	w := c.call(http.MethodPost, "/api/login", `{"username":"demo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.call(http.MethodPost, "/api/login", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup(t *testing.T) {
	c := newClient(t)

	w := c.call(http.MethodPost, "/api/signup", `{"username":"x","email":"x@y.z","password":"abc","confirm":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, pages.MsgSignupInvalid, errorOf(t, w))

	v := c.view(http.MethodPost, "/api/signup", `{"username":"x","email":"x@y.z","password":"abcdef","confirm":"abcdef"}`)
	require.NotEmpty(t, v.Notices)
	assert.Equal(t, pages.MsgSignupSuccess, v.Notices[0].Text)
}

func TestInvalidCookieStartsFreshSession(t *testing.T) {
	c := newClient(t)
	c.login()

	c.cookie = &http.Cookie{Name: CookieName, Value: "garbage"}
	v := c.view(http.MethodGet, "/api/view", "")
	assert.Equal(t, session.PageLogin, v.Page)
}

func TestLearningRoutes(t *testing.T) {
	c := newClient(t)
	c.login()

	v := c.view(http.MethodGet, "/api/learning", "")
	require.NotNil(t, v.Learning)
	assert.Len(t, v.Learning.Lessons, 3)

	for i := 0; i < 3; i++ {
		v = c.view(http.MethodPost, "/api/learning/alphabets/advance", "")
	}
	assert.True(t, v.Learning.Lessons[0].Done)
	assert.Equal(t, []string{"A", "B", "C"}, v.Learning.Lessons[0].Completed)

	v = c.view(http.MethodPost, "/api/learning/alphabets/restart", "")
	assert.Equal(t, 0, v.Learning.Lessons[0].Cursor)
	assert.Len(t, v.Learning.Lessons[0].Completed, 3)

	v = c.view(http.MethodPost, "/api/learning/words/replay", "")
	assert.Equal(t, pages.MsgReplayed, v.Notices[0].Text)

	w := c.call(http.MethodPost, "/api/learning/colors/advance", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNavigate(t *testing.T) {
	c := newClient(t)
	c.login()

	v := c.view(http.MethodPost, "/api/navigate", `{"page":"Translator"}`)
	assert.Equal(t, session.PageTranslator, v.Page)

	v = c.view(http.MethodPost, "/api/navigate", `{"page":"Nowhere"}`)
	assert.Equal(t, session.PageDashboard, v.Page)
}

func TestChatRoutes(t *testing.T) {
	c := newClient(t)
	c.login()

	v := c.view(http.MethodPost, "/api/chat", `{"message":"Show me the alphabet"}`)
	require.Len(t, v.Chatbot.Messages, 2)

	v = c.view(http.MethodGet, "/api/chat", "")
	assert.Len(t, v.Chatbot.Messages, 2)

	v = c.view(http.MethodDelete, "/api/chat", "")
	assert.Empty(t, v.Chatbot.Messages)
}

func TestDictionaryRoutes(t *testing.T) {
	c := newClient(t)
	c.login()

	v := c.view(http.MethodGet, "/api/dictionary?q=than&category=All", "")
	require.NotNil(t, v.Dictionary)
	require.Len(t, v.Dictionary.Results, 1)
	assert.Equal(t, "thank you", v.Dictionary.Results[0].Entry.Label)

	v = c.view(http.MethodGet, "/api/dictionary?q=zzz", "")
	assert.Equal(t, pages.MsgNoResults, v.Notices[0].Text)

	w := c.call(http.MethodGet, "/api/dictionary?q=a&category=shapes", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	v = c.view(http.MethodPost, "/api/dictionary/filter", `{"category":"Words"}`)
	assert.Len(t, v.Dictionary.Groups, 1)

	v = c.view(http.MethodPost, "/api/dictionary/hello/play", "")
	assert.Equal(t, "Playing video for: hello", v.Notices[0].Text)
}

func TestTranslateRoutes(t *testing.T) {
	c := newClient(t)
	c.login()

	v := c.view(http.MethodPost, "/api/translate/text", `{"text":"hello abc"}`)
	require.Len(t, v.Translator.Segments, 2)
	assert.Len(t, v.Translator.Segments[1].Letters, 3)

	v = c.view(http.MethodPost, "/api/translate/camera", "")
	assert.Equal(t, "Thank you", v.Translator.Prediction.Label)

	v = c.view(http.MethodGet, "/api/translate/phrases/Good%20morning", "")
	assert.Equal(t, "Good morning", v.Translator.Phrase.Phrase)

	w := c.call(http.MethodGet, "/api/translate/phrases/Goodbye", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func uploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/translate/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImageUpload(t *testing.T) {
	c := newClient(t)
	c.login()

	w := c.do(uploadRequest(t, "sign.PNG"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var v pages.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, "Hello", v.Translator.Prediction.Label)
	assert.Equal(t, 95.2, v.Translator.Prediction.Confidence)

	w = c.do(uploadRequest(t, "sign.bmp"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, pages.MsgUnsupportedImage, errorOf(t, w))

	w = c.call(http.MethodPost, "/api/translate/image", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRoutes(t *testing.T) {
	c := newClient(t)
	c.login()

	v := c.view(http.MethodGet, "/api/profile", "")
	assert.Equal(t, "Demo User", v.Profile.Profile.FullName)

	v = c.view(http.MethodPut, "/api/profile", `{"bio":"New bio"}`)
	assert.Equal(t, "New bio", v.Profile.Profile.Bio)
	assert.Equal(t, "Demo User", v.Profile.Profile.FullName, "omitted fields keep their value")

	v = c.view(http.MethodPost, "/api/profile/password/reset", "")
	assert.Equal(t, pages.MsgPasswordReset, v.Notices[0].Text)

	v = c.view(http.MethodDelete, "/api/profile", "")
	assert.Equal(t, pages.MsgDeleteAccount, v.Notices[0].Text)
}

func TestSettingsValidation(t *testing.T) {
	c := newClient(t)
	c.login()

	v := c.view(http.MethodPut, "/api/profile/settings", `{"theme":"dark","voice_speed":1.2}`)
	assert.Equal(t, session.ThemeDark, v.Profile.Settings.Theme)
	assert.Equal(t, "medium", v.Profile.Settings.FontSize, "omitted fields keep their value")

	bad := []string{
		`{"theme":"purple"}`,
		`{"voice_speed":3}`,
		`{"reminder_time":"25:00"}`,
		`{"unknown":true}`,
		`{"voice_speed":1.25}`,
	}
	for _, body := range bad {
		w := c.call(http.MethodPut, "/api/profile/settings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestResetProgressNeedsConfirm(t *testing.T) {
	c := newClient(t)
	c.login()
	c.view(http.MethodPost, "/api/learning/numbers/advance", "")

	w := c.call(http.MethodPost, "/api/profile/progress/reset", `{"confirm":false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, pages.MsgConfirmReset, errorOf(t, w))

	v := c.view(http.MethodPost, "/api/profile/progress/reset", `{"confirm":true}`)
	assert.Equal(t, 0, v.Sidebar.SignsLearned)
}

func TestExport(t *testing.T) {
	c := newClient(t)
	c.login()
	c.view(http.MethodPost, "/api/chat", `{"message":"hello"}`)

	w := c.call(http.MethodGet, "/api/profile/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "signaura-export.json")

	var exp pages.Export
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exp))
	assert.Equal(t, "demo", exp.Username)
	assert.Len(t, exp.Chat, 2)
}

func TestMethodNotAllowed(t *testing.T) {
	c := newClient(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodPut, "/api/login"},
		{http.MethodGet, "/api/logout"},
		{http.MethodPost, "/healthz"},
	} {
		w := c.call(tc.method, tc.path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, w.Body.String(), "method not allowed")
	}
}

func TestUnknownRoute(t *testing.T) {
	c := newClient(t)
	for _, path := range []string{"/api/nope", "/nope"} {
		w := c.call(http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "not found")
	}
}

func TestCookieCodec(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	codec := &cookieCodec{secret: testSecret, ttl: time.Minute, now: func() time.Time { return now }}

	token, err := codec.encode("sess-1")
	require.NoError(t, err)

	id, err := codec.decode(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", id)

	other := &cookieCodec{secret: []byte("other"), ttl: time.Minute, now: codec.now}
	_, err = other.decode(token)
	assert.ErrorIs(t, err, errInvalidToken)

	now = now.Add(2 * time.Minute)
	_, err = codec.decode(token)
	assert.ErrorIs(t, err, errInvalidToken)
}
