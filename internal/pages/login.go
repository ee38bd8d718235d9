package pages

import (
	"context"

	"github.com/signaura/signaura/internal/auth"
	"github.com/signaura/signaura/internal/session"
	"github.com/signaura/signaura/internal/store"
)

func (s *Service) renderLogin(_ *session.State, v *View) {
	v.Login = &LoginView{DemoHint: MsgDemoHint}
}

// Login authenticates username/password against the user directory.
func (s *Service) Login(ctx context.Context, st *session.State, username, password string) (View, error) {
	u, err := s.users.Verify(username, password)
	if err != nil {
		s.record(ctx, st, store.KindLoginFailed, username)
		return View{}, err
	}
	st.Login(u)
	s.record(ctx, st, store.KindLogin, "")
	return s.Render(st), nil
}

// DemoLogin logs in as the demo user without a password.
func (s *Service) DemoLogin(ctx context.Context, st *session.State) (View, error) {
	u, ok := s.users.Lookup(auth.DemoUsername)
	if !ok {
		u = auth.User{Username: auth.DemoUsername}
	}
	st.Login(u)
	s.record(ctx, st, store.KindDemoLogin, "")
	return s.Render(st), nil
}

// Signup validates the signup form. No account is created.
func (s *Service) Signup(ctx context.Context, st *session.State, req auth.SignupRequest) (View, error) {
	if err := auth.ValidateSignup(req); err != nil {
		return View{}, err
	}
	s.record(ctx, st, store.KindSignup, req.Username)
	return s.render(st, Notice{Level: LevelSuccess, Text: MsgSignupSuccess}), nil
}

// Logout clears the identity and returns to the login page.
func (s *Service) Logout(ctx context.Context, st *session.State) View {
	if st.Authenticated {
		s.record(ctx, st, store.KindLogout, "")
	}
	st.Logout()
	return s.Render(st)
}

// Navigate moves to the page named id; unknown ids go to the dashboard.
func (s *Service) Navigate(st *session.State, id string) View {
	st.Navigate(Route(id))
	return s.Render(st)
}
