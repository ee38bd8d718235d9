package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie.
const CookieName = "signaura_session"

const issuer = "signaura"

var errInvalidToken = errors.New("invalid session token")

// cookieCodec signs session ids into the session cookie.
type cookieCodec struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func (c *cookieCodec) encode(sessionID string) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (c *cookieCodec) decode(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

// sessionID returns the session id carried by r's cookie, if valid.
func (c *cookieCodec) sessionID(r *http.Request) (string, error) {
	ck, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	return c.decode(ck.Value)
}

// set writes a fresh cookie for sessionID.
func (c *cookieCodec) set(w http.ResponseWriter, sessionID string) error {
	value, err := c.encode(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl / time.Second),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
