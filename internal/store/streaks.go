package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"inkwell/internal/models"
)

type streakRepo struct {
	db *sqlx.DB
}

func NewStreakRepository(db *sqlx.DB) StreakRepository { return &streakRepo{db: db} }

const streakColumns = `id, user_id, current_streak, longest_streak, last_entry_date, updated_at`

func (r *streakRepo) GetByUser(ctx context.Context, userID int) (*models.Streak, error) {
	var s models.Streak
	err := r.db.GetContext(ctx, &s, `SELECT `+streakColumns+` FROM streaks WHERE user_id=$1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *streakRepo) Create(ctx context.Context, s *models.Streak) (*models.Streak, error) {
	var out models.Streak
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO streaks (user_id, current_streak, longest_streak, last_entry_date)
		 VALUES ($1, $2, $3, $4) RETURNING `+streakColumns,
		s.UserID, s.CurrentStreak, s.LongestStreak, s.LastEntryDate).StructScan(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *streakRepo) Save(ctx context.Context, s *models.Streak) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE streaks SET current_streak=$1, longest_streak=$2, last_entry_date=$3, updated_at=NOW()
		 WHERE user_id=$4`,
		s.CurrentStreak, s.LongestStreak, s.LastEntryDate, s.UserID)
	return err
}
