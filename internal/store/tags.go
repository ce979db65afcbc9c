package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"inkwell/internal/models"
)

type tagRepo struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository { return &tagRepo{db: db} }

func (r *tagRepo) GetByID(ctx context.Context, id int) (*models.Tag, error) {
	var t models.Tag
	err := r.db.GetContext(ctx, &t, `SELECT id, name, is_custom, owner_id FROM tags WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tagRepo) ListVisible(ctx context.Context, userID int) ([]models.Tag, error) {
	var out []models.Tag
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, name, is_custom, owner_id FROM tags
		 WHERE owner_id IS NULL OR owner_id=$1 ORDER BY id ASC`, userID)
	return out, err
}

func (r *tagRepo) Create(ctx context.Context, t *models.Tag) (*models.Tag, error) {
	var out models.Tag
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO tags (name, is_custom, owner_id) VALUES ($1, $2, $3)
		 RETURNING id, name, is_custom, owner_id`,
		t.Name, t.IsCustom, t.OwnerID).StructScan(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tagRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id=$1`, id)
	return err
}
