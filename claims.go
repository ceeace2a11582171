package booking

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BookingClaims is the token payload: registered claims carry the subject
// (the account email), issue and expiry instants, and a token id; Admin is
// the one extension field.
type BookingClaims struct {
	jwt.RegisteredClaims
	Admin bool `json:"adm,omitempty"`
}

// Subject returns the subject claim, the identity string the token was
// issued for.
func (c *BookingClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Expires returns the expiration time
func (c *BookingClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *BookingClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
