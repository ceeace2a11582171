package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates HS256 bearer tokens. The signing key and
// ttl come from process-wide configuration loaded once at startup; the clock
// is injectable so expiry behavior is testable with arbitrary times.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
	logger     Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(signingKey []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		signingKey: signingKey,
		ttl:        ttl,
		now:        time.Now,
		logger:     defLogger{},
	}
}

func (ts *TokenService) WithLogger(logger Logger) *TokenService {
	if logger != nil {
		ts.logger = logger
	}
	return ts
}

// WithClock overrides the time source used for issue and validation.
func (ts *TokenService) WithClock(now func() time.Time) *TokenService {
	if now != nil {
		ts.now = now
	}
	return ts
}

// Issue creates a signed token for the principal: subject is the account
// email, expiry is now plus the configured ttl.
func (ts *TokenService) Issue(p Principal) (string, error) {
	now := ts.now()
	claims := &BookingClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
		Admin: p.Admin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a raw token and returns the encoded subject.
// Expiry is reported as ErrTokenExpired; every other parse or signature
// failure is ErrTokenMalformed.
func (ts *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &BookingClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithTimeFunc(ts.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	claims, ok := token.Claims.(*BookingClaims)
	if !ok || !token.Valid || claims.Subject() == "" {
		ts.logger.Error("TokenService validate could not decode claims")
		return "", ErrTokenMalformed
	}

	return claims.Subject(), nil
}
