package booking_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	booking "github.com/zenyard/booking"
)

// newTestDB opens a private in-memory database pinned to a single connection
// so every query in a test sees the same data.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	require.NoError(t, booking.CreateSchema(context.Background(), db))

	t.Cleanup(func() { db.Close() })
	return db
}

func seedUser(t *testing.T, db *bun.DB, email string, admin bool) *booking.User {
	t.Helper()

	hash, err := booking.HashPassword("test!1234")
	require.NoError(t, err)

	repo := booking.NewUsersRepository(db)
	user, err := repo.Create(context.Background(), &booking.User{
		Email:        email,
		FirstName:    "Test",
		LastName:     "Tester",
		Admin:        admin,
		PasswordHash: hash,
	})
	require.NoError(t, err)
	return user
}

func seedTeacher(t *testing.T, db *bun.DB, firstName, lastName string) *booking.Teacher {
	t.Helper()

	record := &booking.Teacher{
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_, err := db.NewInsert().Model(record).Exec(context.Background())
	require.NoError(t, err)
	return record
}

func seedSession(t *testing.T, db *bun.DB, teacherID int64, name string) *booking.Session {
	t.Helper()

	repo := booking.NewSessionsRepository(db)
	record, err := repo.Create(context.Background(), &booking.Session{
		Name:        name,
		Date:        time.Now().Add(48 * time.Hour),
		TeacherID:   teacherID,
		Description: "a test session",
	})
	require.NoError(t, err)
	return record
}
