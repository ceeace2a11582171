package booking

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the account model. Email is the login identifier and carries a
// unique constraint; registration also pre-checks it, and either path
// surfaces ErrEmailTaken.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Email        string    `bun:"email,notnull,unique" json:"email"`
	FirstName    string    `bun:"first_name,notnull" json:"firstName"`
	LastName     string    `bun:"last_name,notnull" json:"lastName"`
	Admin        bool      `bun:"admin,notnull,default:false" json:"admin"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// Teacher is read-mostly; no mutation surface exists for it.
type Teacher struct {
	bun.BaseModel `bun:"table:teachers,alias:tch"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	FirstName string    `bun:"first_name,notnull" json:"firstName"`
	LastName  string    `bun:"last_name,notnull" json:"lastName"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// Session is a bookable event taught by a teacher. Users holds the enrolled
// members in insertion order; it is loaded through the session_users join
// table, not a bun relation, so ordering stays explicit.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:ses"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Date        time.Time `bun:"date,notnull" json:"date"`
	Description string    `bun:"description,notnull" json:"description"`
	TeacherID   int64     `bun:"teacher_id,nullzero" json:"teacher_id"`
	Teacher     *Teacher  `bun:"rel:belongs-to,join:teacher_id=id" json:"-"`
	Users       []*User   `bun:"-" json:"-"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// HasParticipant reports whether the user id is present in the enrolled set.
func (s *Session) HasParticipant(userID int64) bool {
	for _, u := range s.Users {
		if u != nil && u.ID == userID {
			return true
		}
	}
	return false
}

// UserIDs returns the enrolled user ids preserving membership order.
func (s *Session) UserIDs() []int64 {
	ids := make([]int64, 0, len(s.Users))
	for _, u := range s.Users {
		if u != nil {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

// SessionUser is the enrollment join row. The autoincrement id preserves
// join order; the composite unique group backs the no-duplicate invariant at
// the store layer so the service pre-check is not the only line of defense.
type SessionUser struct {
	bun.BaseModel `bun:"table:session_users,alias:su"`

	ID        int64 `bun:"id,pk,autoincrement"`
	SessionID int64 `bun:"session_id,notnull,unique:session_user"`
	UserID    int64 `bun:"user_id,notnull,unique:session_user"`
}
