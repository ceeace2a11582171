package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// TeachersRepository reads teacher records; there is no mutation surface.
type TeachersRepository struct {
	db *bun.DB
}

func NewTeachersRepository(db *bun.DB) *TeachersRepository {
	return &TeachersRepository{db: db}
}

func (r *TeachersRepository) List(ctx context.Context) ([]*Teacher, error) {
	var records []*Teacher
	err := r.db.NewSelect().
		Model(&records).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select teachers: %w", err)
	}
	return records, nil
}

func (r *TeachersRepository) GetByID(ctx context.Context, id int64) (*Teacher, error) {
	record := &Teacher{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select teacher by id: %w", err)
	}
	return record, nil
}
