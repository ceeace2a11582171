package booking

import (
	"context"
	"fmt"
)

// Logger is the minimal logging surface the services depend on.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// CredentialVerifier checks a submitted email/password pair against stored
// credentials and yields the matching principal.
type CredentialVerifier interface {
	VerifyIdentity(ctx context.Context, email, password string) (Principal, error)
}

// PrincipalResolver turns a validated token subject back into a principal.
type PrincipalResolver interface {
	Resolve(ctx context.Context, email string) (Principal, error)
}

// TokenIssuer mints a bearer token for an authenticated principal.
type TokenIssuer interface {
	Issue(p Principal) (string, error)
}

// TokenValidator checks a raw token and returns the encoded subject.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// PasswordAuthenticator authenticates passwords
type PasswordAuthenticator interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] BOOKING "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] BOOKING "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] BOOKING "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] BOOKING "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
