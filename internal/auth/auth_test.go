package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithBearer(t *testing.T, token string) *http.Request {
	req, err := http.NewRequest("POST", "/api/v1/artists", nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestNew(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		s, err := New(ModeDisabled, "", "")
		require.NoError(t, err)
		assert.Equal(t, ModeDisabled, s.Name())
	})

	t.Run("empty mode defaults to disabled", func(t *testing.T) {
		s, err := New("", "", "")
		require.NoError(t, err)
		assert.Equal(t, ModeDisabled, s.Name())
	})

	t.Run("token mode requires a token", func(t *testing.T) {
		_, err := New(ModeToken, "", "")
		assert.Error(t, err)
	})

	t.Run("jwt mode requires a secret", func(t *testing.T) {
		_, err := New(ModeJWT, "", "")
		assert.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := New("oauth", "", "")
		assert.Error(t, err)
	})
}

func TestAllowAll(t *testing.T) {
	s, err := New(ModeDisabled, "", "")
	require.NoError(t, err)

	assert.NoError(t, s.Authenticate(requestWithBearer(t, "")))
}

func TestStaticToken(t *testing.T) {
	s, err := New(ModeToken, "sekrit", "")
	require.NoError(t, err)

	t.Run("correct token", func(t *testing.T) {
		assert.NoError(t, s.Authenticate(requestWithBearer(t, "sekrit")))
	})

	t.Run("wrong token", func(t *testing.T) {
		err := s.Authenticate(requestWithBearer(t, "nope"))
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("missing header", func(t *testing.T) {
		err := s.Authenticate(requestWithBearer(t, ""))
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := requestWithBearer(t, "")
		req.Header.Set("Authorization", "Basic c2Vrcml0")
		assert.ErrorIs(t, s.Authenticate(req), ErrUnauthenticated)
	})
}

func signedJWT(t *testing.T, secret string, method jwt.SigningMethod, expiry time.Duration) string {
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(expiry).Unix(),
	})
	raw, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestJWTStrategy(t *testing.T) {
	s, err := New(ModeJWT, "", "jwt-secret")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		raw := signedJWT(t, "jwt-secret", jwt.SigningMethodHS256, time.Hour)
		assert.NoError(t, s.Authenticate(requestWithBearer(t, raw)))
	})

	t.Run("wrong secret", func(t *testing.T) {
		raw := signedJWT(t, "other-secret", jwt.SigningMethodHS256, time.Hour)
		assert.ErrorIs(t, s.Authenticate(requestWithBearer(t, raw)), ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		raw := signedJWT(t, "jwt-secret", jwt.SigningMethodHS256, -time.Hour)
		assert.ErrorIs(t, s.Authenticate(requestWithBearer(t, raw)), ErrUnauthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.ErrorIs(t, s.Authenticate(requestWithBearer(t, "not.a.jwt")), ErrUnauthenticated)
	})

	t.Run("missing header", func(t *testing.T) {
		assert.ErrorIs(t, s.Authenticate(requestWithBearer(t, "")), ErrUnauthenticated)
	})
}
