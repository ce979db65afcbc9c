package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"inkwell/internal/models"
)

type userRepo struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository { return &userRepo{db: db} }

const userColumns = `id, username, password_hash, password_salt, pin_hash, pin_salt, created_at`

func (r *userRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE username=$1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	var out models.User
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO users (username, password_hash, password_salt) VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		u.Username, u.PasswordHash, u.PasswordSalt).StructScan(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepo) SetPin(ctx context.Context, userID int, pinHash, pinSalt string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET pin_hash=$1, pin_salt=$2 WHERE id=$3`, pinHash, pinSalt, userID)
	return err
}
