package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// SessionsRepository persists bookable sessions and their enrollment rows.
type SessionsRepository struct {
	db *bun.DB
}

func NewSessionsRepository(db *bun.DB) *SessionsRepository {
	return &SessionsRepository{db: db}
}

func (r *SessionsRepository) List(ctx context.Context) ([]*Session, error) {
	var records []*Session
	err := r.db.NewSelect().
		Model(&records).
		Relation("Teacher").
		Order("ses.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}

	for _, record := range records {
		if err := r.loadParticipants(ctx, record); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (r *SessionsRepository) GetByID(ctx context.Context, id int64) (*Session, error) {
	record := &Session{}
	err := r.db.NewSelect().
		Model(record).
		Relation("Teacher").
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select session by id: %w", err)
	}

	if err := r.loadParticipants(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *SessionsRepository) Create(ctx context.Context, record *Session) (*Session, error) {
	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return record, nil
}

func (r *SessionsRepository) Update(ctx context.Context, record *Session) (*Session, error) {
	record.UpdatedAt = time.Now()

	res, err := r.db.NewUpdate().
		Model(record).
		Column("name", "date", "description", "teacher_id", "updated_at").
		Where("id = ?", record.ID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update session rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, record.ID)
}

func (r *SessionsRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*Session)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := r.db.NewDelete().
		Model((*SessionUser)(nil)).
		Where("session_id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete session enrollments: %w", err)
	}

	return nil
}

// AddParticipant appends one enrollment row. The composite unique constraint
// closes the check-then-act window: a concurrent duplicate join loses here
// and reports the same conflict the service pre-check does.
func (r *SessionsRepository) AddParticipant(ctx context.Context, sessionID, userID int64) error {
	link := &SessionUser{SessionID: sessionID, UserID: userID}
	if _, err := r.db.NewInsert().Model(link).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyParticipating
		}
		return fmt.Errorf("insert enrollment: %w", err)
	}
	return nil
}

// RemoveParticipant deletes one enrollment row. Remaining rows keep their
// ids, so member order is untouched by removal.
func (r *SessionsRepository) RemoveParticipant(ctx context.Context, sessionID, userID int64) error {
	res, err := r.db.NewDelete().
		Model((*SessionUser)(nil)).
		Where("session_id = ?", sessionID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete enrollment rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotParticipating
	}
	return nil
}

// loadParticipants fills Session.Users in enrollment order. The join rows
// are read ordered by their autoincrement id, then the user records are
// arranged to match.
func (r *SessionsRepository) loadParticipants(ctx context.Context, record *Session) error {
	var links []SessionUser
	err := r.db.NewSelect().
		Model(&links).
		Where("session_id = ?", record.ID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("select enrollments: %w", err)
	}

	record.Users = make([]*User, 0, len(links))
	if len(links) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.UserID)
	}

	var users []*User
	err = r.db.NewSelect().
		Model(&users).
		Where("?TableAlias.id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("select enrolled users: %w", err)
	}

	byID := make(map[int64]*User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, link := range links {
		if u, ok := byID[link.UserID]; ok {
			record.Users = append(record.Users, u)
		}
	}

	return nil
}
