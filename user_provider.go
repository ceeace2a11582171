package booking

import (
	"context"
	"errors"
	"fmt"
)

// UserStore is the narrow lookup surface the provider needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// UserProvider handles credential verification and principal resolution over
// the users store. It is the single implementation of both interfaces.
type UserProvider struct {
	store  UserStore
	logger Logger
}

var (
	_ CredentialVerifier = (*UserProvider)(nil)
	_ PrincipalResolver  = (*UserProvider)(nil)
)

// NewUserProvider will create a new UserProvider
func NewUserProvider(store UserStore) *UserProvider {
	return &UserProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(logger Logger) *UserProvider {
	if logger != nil {
		u.logger = logger
	}
	return u
}

// VerifyIdentity will find the user, compare the password, and return the
// principal. An unknown email and a wrong password both come back as
// ErrBadCredentials so the caller cannot probe for registered accounts.
func (u *UserProvider) VerifyIdentity(ctx context.Context, email, password string) (Principal, error) {
	user, err := u.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Principal{}, ErrBadCredentials
		}
		return Principal{}, fmt.Errorf("failed to retrieve user during verification: %w", err)
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return Principal{}, err
	}

	return NewPrincipalFromUser(user), nil
}

// Resolve turns a validated token subject into a principal. A subject that
// no longer maps to a stored record is ErrPrincipalNotFound; this is the
// path a token outliving its account takes.
func (u *UserProvider) Resolve(ctx context.Context, email string) (Principal, error) {
	user, err := u.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Principal{}, ErrPrincipalNotFound
		}
		return Principal{}, fmt.Errorf("failed to resolve principal: %w", err)
	}

	return NewPrincipalFromUser(user), nil
}
