package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User is the single dashboard operator configured at startup. There is
// no user store, credentials come from the environment.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type Claims struct {
	UserEmail string
	jwt.RegisteredClaims
}
