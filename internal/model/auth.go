package model

import "github.com/golang-jwt/jwt/v5"

// Identity is an authenticated caller of the backend
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// UserClaims are the JWT claims issued by the backend's auth service
type UserClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
