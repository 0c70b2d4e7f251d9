package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims carries the authenticated user id (hex ObjectID).
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
