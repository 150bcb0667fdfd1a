package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// IronLogClaims represents custom JWT claims for profile-scoped device tokens
type IronLogClaims struct {
	ProfileID string `json:"profile_id"`
	Name      string `json:"name,omitempty"` // profile display name
	jwt.RegisteredClaims
}
