package service

import (
	"context"
	"intakeflow/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims model.UserClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func userClaims(sub string, exp time.Time) model.UserClaims {
	return model.UserClaims{
		Email: "pm@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestTokenAuth_Resolve(t *testing.T) {
	auth := NewTokenAuth(testSecret)
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), userClaims("user-1", time.Now().Add(time.Hour)))

	id, err := auth.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "user-1", id.ID)
	assert.Equal(t, "pm@example.com", id.Email)
	assert.Equal(t, "authenticated", id.Role)
}

func TestTokenAuth_EmptyTokenIsAnonymous(t *testing.T) {
	id, err := NewTokenAuth(testSecret).Resolve(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, id)
}

func TestTokenAuth_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
		want  error
	}{
		{"wrong secret", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), userClaims("user-1", time.Now().Add(time.Hour)))
		}, ErrInvalidToken},
		{"expired", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), userClaims("user-1", time.Now().Add(-time.Minute)))
		}, ErrInvalidToken},
		{"alg none", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, userClaims("user-1", time.Now().Add(time.Hour)))
		}, ErrInvalidToken},
		{"hs512", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS512, []byte(testSecret), userClaims("user-1", time.Now().Add(time.Hour)))
		}, ErrInvalidToken},
		{"garbage", func(t *testing.T) string { return "not.a.jwt" }, ErrInvalidToken},
		{"missing sub", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), userClaims("", time.Now().Add(time.Hour)))
		}, ErrMissingSub},
	}

	auth := NewTokenAuth(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := auth.Resolve(context.Background(), tt.token(t))
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, id)
		})
	}
}

func TestAnonymousAuth(t *testing.T) {
	id, err := AnonymousAuth{}.Resolve(context.Background(), "whatever")
	assert.NoError(t, err)
	assert.Nil(t, id)
}
