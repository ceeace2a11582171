package booking

import (
	"context"
	"errors"
)

// UserService exposes account reads plus the one self-service mutation:
// deleting your own account.
type UserService struct {
	users  *UsersRepository
	logger Logger
}

func NewUserService(users *UsersRepository) *UserService {
	return &UserService{
		users:  users,
		logger: defLogger{},
	}
}

func (s *UserService) WithLogger(logger Logger) *UserService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// Delete enforces ownership: only the account owner may remove the record.
// The target is fetched first, so a missing account is ErrNotFound before
// any authorization decision leaks. The comparison is on the stored record's
// email against the principal email — the email is the field bound to the
// token subject, and the check deliberately reads current store state rather
// than trusting what the token was issued with.
func (s *UserService) Delete(ctx context.Context, principal Principal, id int64) error {
	target, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if target.Email != principal.Email {
		s.logger.Info("account delete rejected", "target_id", id, "principal_id", principal.ID)
		return ErrNotOwner
	}

	return s.users.Delete(ctx, id)
}

// Register creates an account from the registration surface. Email
// uniqueness is pre-checked and additionally enforced by the store
// constraint; both paths report ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, email, firstName, lastName, password string) (*User, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	record := &User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		Admin:        false,
		PasswordHash: hash,
	}

	return s.users.Create(ctx, record)
}
