package pages

import "github.com/signaura/signaura/internal/auth"

func signupReq(password, confirm string) auth.SignupRequest {
	return auth.SignupRequest{
		Username: "newbie",
		Email:    "newbie@example.com",
		Password: password,
		Confirm:  confirm,
	}
}
