package auth

import (
	"crypto/subtle"
	"errors"
)

// DemoUsername is the account used by demo login.
const DemoUsername = "demo"

// MinPasswordLength is the shortest password signup accepts.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials is returned when username or password do not match.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrPasswordMismatch is returned when signup passwords differ.
	ErrPasswordMismatch = errors.New("passwords don't match")
	// ErrPasswordTooShort is returned when a signup password is under MinPasswordLength.
	ErrPasswordTooShort = errors.New("password too short")
)

// User is an account in the fixed user directory.
type User struct {
	Username string
	Password string
	Email    string
}

// Directory is a read-only set of users keyed by username.
type Directory struct {
	users map[string]User
}

// NewDirectory builds a directory from the given users.
func NewDirectory(users ...User) *Directory {
	d := &Directory{users: make(map[string]User, len(users))}
	for _, u := range users {
		d.users[u.Username] = u
	}
	return d
}

// DefaultDirectory returns the built-in demo accounts.
func DefaultDirectory() *Directory {
	return NewDirectory(
		User{Username: "demo", Password: "demo123", Email: "demo@signaura.com"},
		User{Username: "user1", Password: "pass123", Email: "user1@example.com"},
	)
}

// Lookup returns the user with the given username.
func (d *Directory) Lookup(username string) (User, bool) {
	u, ok := d.users[username]
	return u, ok
}

// Authenticate reports whether username exists and password matches exactly.
func (d *Directory) Authenticate(username, password string) bool {
	u, ok := d.users[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1
}

// Verify is Authenticate returning ErrInvalidCredentials on failure.
func (d *Directory) Verify(username, password string) (User, error) {
	if !d.Authenticate(username, password) {
		return User{}, ErrInvalidCredentials
	}
	u := d.users[username]
	return u, nil
}

// SignupRequest holds the fields of the signup form.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// ValidateSignup checks the signup form. Accounts are never created;
// a nil error only means the form would be accepted.
func ValidateSignup(req SignupRequest) error {
	if req.Password != req.Confirm {
		return ErrPasswordMismatch
	}
	if len(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
