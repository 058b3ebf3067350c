package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims represents the claims carried by access tokens
type AuthClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
