package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	d := DefaultDirectory()

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"demo ok", "demo", "demo123", true},
		{"user1 ok", "user1", "pass123", true},
		{"wrong password", "demo", "wrong", false},
		{"unknown user", "nouser", "x", false},
		{"case sensitive password", "demo", "DEMO123", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Authenticate(tt.username, tt.password))
		})
	}
}

func TestVerify(t *testing.T) {
	d := DefaultDirectory()

	u, err := d.Verify("user1", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "user1@example.com", u.Email)

	_, err = d.Verify("user1", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLookup(t *testing.T) {
	d := DefaultDirectory()

	u, ok := d.Lookup(DemoUsername)
	require.True(t, ok)
	assert.Equal(t, "demo@signaura.com", u.Email)

	_, ok = d.Lookup("ghost")
	assert.False(t, ok)
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr error
	}{
		{"valid", SignupRequest{Username: "new", Password: "secret1", Confirm: "secret1"}, nil},
		{"exactly six", SignupRequest{Password: "123456", Confirm: "123456"}, nil},
		{"mismatch", SignupRequest{Password: "secret1", Confirm: "secret2"}, ErrPasswordMismatch},
		{"too short", SignupRequest{Password: "abc", Confirm: "abc"}, ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSignup(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSignup_DoesNotCreateAccount(t *testing.T) {
	d := DefaultDirectory()

	require.NoError(t, ValidateSignup(SignupRequest{Username: "fresh", Password: "secret1", Confirm: "secret1"}))

	_, ok := d.Lookup("fresh")
	assert.False(t, ok)
}
