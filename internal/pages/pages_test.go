package pages

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/store"
	"github.com/signaura/signaura/internal/translate"
)

// memActivity records activity events in memory.
type memActivity struct {
	mu     sync.Mutex
	events []store.ActivityEventData
	err    error
}

func (m *memActivity) AppendActivity(_ context.Context, d store.ActivityEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, d)
	return nil
}

func (m *memActivity) CountByKind(context.Context) ([]store.KindCount, error) { return nil, nil }

func (m *memActivity) Recent(context.Context, store.QueryOpts) ([]store.ActivityEvent, error) {
	return nil, nil
}

func (m *memActivity) Clear(context.Context) (int64, error) { return 0, nil }

func (m *memActivity) kinds() []store.Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.Kind
	for _, e := range m.events {
		out = append(out, e.Kind)
	}
	return out
}

func newTestService(t *testing.T) (*Service, *memActivity) {
	t.Helper()
	act := &memActivity{}
	svc := NewService(Options{
		Analyzer: translate.NewAnalyzer(0),
		Activity: act,
	})
	return svc, act
}

func loggedIn(t *testing.T, svc *Service) *session.State {
	t.Helper()
	st := svc.NewSession("test-session")
	_, err := svc.DemoLogin(context.Background(), st)
	require.NoError(t, err)
	return st
}

func TestRoute(t *testing.T) {
	tests := []struct {
		id   string
		want session.Page
	}{
		{"Learning", session.PageLearning},
		{"chatbot", session.PageChatbot},
		{"", session.PageDashboard},
		{"nowhere", session.PageDashboard},
		{"Login", session.PageLogin},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Route(tt.id), "Route(%q)", tt.id)
	}
}

func TestRender_UnauthenticatedAlwaysLogin(t *testing.T) {
	svc, _ := newTestService(t)
	st := svc.NewSession("s")
	st.Page = session.PageProfile

	v := svc.Render(st)
	assert.Equal(t, session.PageLogin, v.Page)
	require.NotNil(t, v.Login)
	assert.Nil(t, v.Profile)
	assert.Equal(t, MsgDemoHint, v.Sidebar.Hint)
	assert.Empty(t, v.Sidebar.Nav)
	assert.Equal(t, Footer, v.Footer)
}

func TestRender_LoginPageWhenAuthenticatedShowsDashboard(t *testing.T) {
	svc, _ := newTestService(t)
	st := loggedIn(t, svc)
	st.Page = session.PageLogin
	assert.Equal(t, session.PageDashboard, svc.Render(st).Page)
}

func TestLogin(t *testing.T) {
	svc, act := newTestService(t)
	ctx := context.Background()
	st := svc.NewSession("s")

	_, err := svc.Login(ctx, st, "demo", "wrong")
	require.Error(t, err)
	assert.Equal(t, MsgInvalidCredentials, UserMessage(err))
	assert.False(t, st.Authenticated)

	v, err := svc.Login(ctx, st, "user1", "pass123")
	require.NoError(t, err)
	assert.Equal(t, session.PageDashboard, v.Page)
	assert.Equal(t, "Welcome, user1!", v.Sidebar.Welcome)
	assert.Equal(t, "user1@example.com", st.Profile.Email)
	assert.Equal(t, []store.Kind{store.KindLoginFailed, store.KindLogin}, act.kinds())
}

func TestDemoLoginAndLogout(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)
	assert.Equal(t, "demo", st.Username)

	_, err := svc.Advance(ctx, st, "alphabets")
	require.NoError(t, err)

	v := svc.Logout(ctx, st)
	assert.Equal(t, session.PageLogin, v.Page)
	assert.False(t, st.Authenticated)
	assert.Equal(t, 1, st.Progress.Summary().Letters, "progress survives logout")
}

func TestSignup(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := svc.NewSession("s")

	_, err := svc.Signup(ctx, st, signupReq("secret", "other"))
	assert.Equal(t, MsgSignupInvalid, UserMessage(err))

	_, err = svc.Signup(ctx, st, signupReq("abc", "abc"))
	assert.Equal(t, MsgSignupInvalid, UserMessage(err))

	v, err := svc.Signup(ctx, st, signupReq("secret", "secret"))
	require.NoError(t, err)
	require.Len(t, v.Notices, 1)
	assert.Equal(t, MsgSignupSuccess, v.Notices[0].Text)
	assert.False(t, st.Authenticated)

	_, err = svc.Login(ctx, st, "newbie", "secret")
	assert.Error(t, err, "signup must not create an account")
}

func TestNavigate(t *testing.T) {
	svc, _ := newTestService(t)
	st := loggedIn(t, svc)

	v := svc.Navigate(st, "dictionary")
	assert.Equal(t, session.PageDictionary, v.Page)
	require.NotNil(t, v.Dictionary)
	for _, item := range v.Sidebar.Nav {
		assert.Equal(t, item.Page == session.PageDictionary, item.Active, item.Label)
	}

	v = svc.Navigate(st, "bogus")
	assert.Equal(t, session.PageDashboard, v.Page)
}

func TestActionsRequireAuth(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := svc.NewSession("s")

	calls := map[string]func() error{
		"advance": func() error { _, err := svc.Advance(ctx, st, "words"); return err },
		"chat":    func() error { _, err := svc.SendChat(ctx, st, "hi"); return err },
		"search":  func() error { _, err := svc.Search(ctx, st, "a", ""); return err },
		"camera":  func() error { _, err := svc.CaptureCamera(ctx, st); return err },
		"reset":   func() error { _, err := svc.ResetProgress(ctx, st, true); return err },
		"export":  func() error { _, err := svc.ExportJSON(st); return err },
	}
	for name, call := range calls {
		assert.ErrorIs(t, call(), ErrNotAuthenticated, name)
	}
}

func TestActivityFailureDoesNotFailAction(t *testing.T) {
	svc, act := newTestService(t)
	act.err = assert.AnError
	st := svc.NewSession("s")

	_, err := svc.DemoLogin(context.Background(), st)
	require.NoError(t, err)
	assert.True(t, st.Authenticated)
}

func TestNilActivityRepo(t *testing.T) {
	svc := NewService(Options{Analyzer: translate.NewAnalyzer(0)})
	st := svc.NewSession("s")
	_, err := svc.DemoLogin(context.Background(), st)
	require.NoError(t, err)
}

func TestDashboard(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st := loggedIn(t, svc)
	_, _ = svc.Advance(ctx, st, "numbers")

	st.Navigate(session.PageDashboard)
	v := svc.Render(st)
	require.NotNil(t, v.Dashboard)
	assert.Equal(t, "Welcome back, demo!", v.Dashboard.Welcome)
	assert.Equal(t, "1", v.Dashboard.Metrics[1].Value)
	assert.Equal(t, "7 days", v.Dashboard.Metrics[3].Value)

	var targets []session.Page
	for _, f := range v.Dashboard.Features {
		targets = append(targets, f.Target)
	}
	assert.Equal(t, []session.Page{session.PageLearning, session.PageTranslator, session.PageChatbot}, targets)
	assert.Equal(t, 1, v.Sidebar.SignsLearned)
}
