// Package auth implements the write-gate authentication strategies. The
// strategy is chosen once at startup from configuration; there is no
// runtime toggle.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Mode names accepted in configuration
const (
	ModeDisabled = "disabled"
	ModeToken    = "token"
	ModeJWT      = "jwt"
)

// ErrUnauthenticated is returned when a request carries no valid credentials
var ErrUnauthenticated = errors.New("unauthenticated")

// Strategy decides whether a request may perform writes
type Strategy interface {
	// Authenticate returns ErrUnauthenticated (possibly wrapped) when the
	// request does not carry valid credentials
	Authenticate(r *http.Request) error

	// Name identifies the strategy in logs
	Name() string
}

// New builds the strategy for the configured mode
func New(mode, token, jwtSecret string) (Strategy, error) {
	switch mode {
	case ModeDisabled, "":
		return allowAll{}, nil
	case ModeToken:
		if token == "" {
			return nil, errors.New("auth mode 'token' requires AUTH_TOKEN")
		}
		return staticToken{token: token}, nil
	case ModeJWT:
		if jwtSecret == "" {
			return nil, errors.New("auth mode 'jwt' requires JWT_SECRET")
		}
		return jwtStrategy{secret: []byte(jwtSecret)}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", mode)
	}
}

// bearerToken extracts the token from an Authorization: Bearer header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// allowAll admits every request. Meant for local development and demos.
type allowAll struct{}

func (allowAll) Authenticate(*http.Request) error { return nil }
func (allowAll) Name() string                     { return ModeDisabled }

// staticToken admits requests carrying the configured bearer token
type staticToken struct {
	token string
}

func (s staticToken) Authenticate(r *http.Request) error {
	if bearerToken(r) != s.token {
		return ErrUnauthenticated
	}
	return nil
}

func (staticToken) Name() string { return ModeToken }

// jwtStrategy admits requests carrying a valid HS256-signed token
type jwtStrategy struct {
	secret []byte
}

func (s jwtStrategy) Authenticate(r *http.Request) error {
	raw := bearerToken(r)
	if raw == "" {
		return ErrUnauthenticated
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnauthenticated, err)
	}
	if !token.Valid {
		return ErrUnauthenticated
	}
	return nil
}

func (jwtStrategy) Name() string { return ModeJWT }
