package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"inkwell/internal/models"
)

// Mood and Category are immutable reference data; their repositories only
// read.

type moodRepo struct {
	db *sqlx.DB
}

func NewMoodRepository(db *sqlx.DB) MoodRepository { return &moodRepo{db: db} }

func (r *moodRepo) GetByID(ctx context.Context, id int) (*models.Mood, error) {
	var m models.Mood
	err := r.db.GetContext(ctx, &m, `SELECT id, name, category, color, icon FROM moods WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *moodRepo) List(ctx context.Context) ([]models.Mood, error) {
	var out []models.Mood
	err := r.db.SelectContext(ctx, &out, `SELECT id, name, category, color, icon FROM moods ORDER BY id ASC`)
	return out, err
}

type categoryRepo struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := r.db.GetContext(ctx, &c, `SELECT id, name, description, color FROM categories WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := r.db.SelectContext(ctx, &out, `SELECT id, name, description, color FROM categories ORDER BY id ASC`)
	return out, err
}
