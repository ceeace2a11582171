package booking

import (
	"errors"
	"strings"
)

// ErrBadCredentials is returned for an unknown email or a wrong password.
// Both cases collapse into this one error by design.
var ErrBadCredentials = errors.New("bad credentials")

// ErrTokenExpired is the validation outcome for a structurally valid token
// past its expiry.
var ErrTokenExpired = errors.New("token is expired")

// ErrTokenMalformed covers bad encoding, bad signature, and unexpected
// signing methods.
var ErrTokenMalformed = errors.New("token is malformed")

// ErrPrincipalNotFound means a token subject no longer resolves to a stored
// account, e.g. the account was deleted after the token was issued.
var ErrPrincipalNotFound = errors.New("principal not found")

// ErrNotFound is the generic missing-record error for session, user and
// teacher lookups.
var ErrNotFound = errors.New("record not found")

// ErrNotOwner is the ownership failure: the caller is authenticated but is
// not the account the mutation targets.
var ErrNotOwner = errors.New("not the account owner")

// ErrAlreadyParticipating rejects a join for a user already enrolled.
var ErrAlreadyParticipating = errors.New("user already participates in session")

// ErrNotParticipating rejects a leave for a user who is not enrolled.
var ErrNotParticipating = errors.New("user does not participate in session")

// ErrEmailTaken is the registration conflict for a duplicate email.
var ErrEmailTaken = errors.New("email is already taken")

// ErrEmptyPassword guards the hasher against empty input.
var ErrEmptyPassword = errors.New("password must not be empty")

// IsConflict will check for the client-state-conflict class: conditions the
// caller can recover from, never logged as server errors.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyParticipating) ||
		errors.Is(err, ErrNotParticipating) ||
		errors.Is(err, ErrEmailTaken)
}

// isUniqueViolation will check driver error text for a unique constraint
// breach; sqlite and postgres drivers agree on no error type here.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
