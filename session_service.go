package booking

import (
	"context"
)

// SessionService owns the session CRUD surface and the participation state
// machine. Per (session, user) pair the states are not-enrolled and
// enrolled; Participate and NoLongerParticipate are the only transitions.
type SessionService struct {
	sessions *SessionsRepository
	users    *UsersRepository
	logger   Logger
}

func NewSessionService(sessions *SessionsRepository, users *UsersRepository) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		logger:   defLogger{},
	}
}

func (s *SessionService) WithLogger(logger Logger) *SessionService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *SessionService) FindAll(ctx context.Context) ([]*Session, error) {
	return s.sessions.List(ctx)
}

func (s *SessionService) GetByID(ctx context.Context, id int64) (*Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *SessionService) Create(ctx context.Context, record *Session) (*Session, error) {
	return s.sessions.Create(ctx, record)
}

func (s *SessionService) Update(ctx context.Context, id int64, record *Session) (*Session, error) {
	record.ID = id
	return s.sessions.Update(ctx, record)
}

func (s *SessionService) Delete(ctx context.Context, id int64) error {
	return s.sessions.Delete(ctx, id)
}

// Participate moves (session, user) from not-enrolled to enrolled. Joining
// twice is rejected with ErrAlreadyParticipating, not silently accepted; a
// missing session or user is ErrNotFound regardless of the other id.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID int64) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}

	if session.HasParticipant(userID) {
		return ErrAlreadyParticipating
	}

	return s.sessions.AddParticipant(ctx, sessionID, userID)
}

// NoLongerParticipate moves (session, user) from enrolled to not-enrolled.
// Leaving a session the user is not in is ErrNotParticipating and leaves the
// membership untouched.
func (s *SessionService) NoLongerParticipate(ctx context.Context, sessionID, userID int64) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if !session.HasParticipant(userID) {
		return ErrNotParticipating
	}

	return s.sessions.RemoveParticipant(ctx, sessionID, userID)
}
