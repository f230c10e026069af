package service

import (
	"context"
	"errors"
	"intakeflow/internal/model"
	"intakeflow/internal/supabase"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingSub   = errors.New("token has no subject")
)

// IdentityResolver looks up the caller behind an access token. A nil
// identity with a nil error means the caller is anonymous.
type IdentityResolver interface {
	Resolve(ctx context.Context, accessToken string) (*model.Identity, error)
}

// RemoteAuth asks the backend's auth service who owns the token
type RemoteAuth struct {
	client *supabase.Client
}

// NewRemoteAuth creates a resolver backed by the Supabase auth endpoint
func NewRemoteAuth(client *supabase.Client) *RemoteAuth {
	return &RemoteAuth{client: client}
}

func (a *RemoteAuth) Resolve(ctx context.Context, accessToken string) (*model.Identity, error) {
	return a.client.GetUser(ctx, accessToken)
}

// TokenAuth verifies HS256 access tokens locally with the project's JWT secret
type TokenAuth struct {
	jwtSecret []byte
}

// NewTokenAuth creates a local token verifier
func NewTokenAuth(secret string) *TokenAuth {
	return &TokenAuth{jwtSecret: []byte(secret)}
}

func (a *TokenAuth) Resolve(ctx context.Context, accessToken string) (*model.Identity, error) {
	if accessToken == "" {
		return nil, nil
	}

	claims, err := a.ValidateToken(accessToken)
	if err != nil {
		return nil, err
	}
	return &model.Identity{ID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

// ValidateToken parses and verifies a user JWT and returns its claims
func (a *TokenAuth) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return a.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSub
	}
	return claims, nil
}

// AnonymousAuth treats every caller as anonymous
type AnonymousAuth struct{}

func (AnonymousAuth) Resolve(ctx context.Context, accessToken string) (*model.Identity, error) {
	return nil, nil
}
