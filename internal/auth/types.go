package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents the verified payload of a provider-issued token.
// The registered "sub" claim is the user id; user records are keyed
// by the same value with no transformation.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// returns the subject (user id) carried by the token
func (c *Claims) UserID() string {
	return c.Subject
}
