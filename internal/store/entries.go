package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"inkwell/internal/models"
)

type entryRepo struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) EntryRepository { return &entryRepo{db: db} }

const entryColumns = `id, user_id, local_date, title, content, word_count, category_id, created_at, updated_at`

func (r *entryRepo) GetByID(ctx context.Context, id int) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := r.db.GetContext(ctx, &e, `SELECT `+entryColumns+` FROM journal_entries WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) GetByUserAndDate(ctx context.Context, userID int, date time.Time) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := r.db.GetContext(ctx, &e,
		`SELECT `+entryColumns+` FROM journal_entries WHERE user_id=$1 AND local_date=$2`, userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) ListByUser(ctx context.Context, userID int) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+entryColumns+` FROM journal_entries WHERE user_id=$1 ORDER BY local_date ASC`, userID)
	return out, err
}

func (r *entryRepo) Create(ctx context.Context, e *models.JournalEntry, moods []models.EntryMood, tagIDs []int) (*models.JournalEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var out models.JournalEntry
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO journal_entries (user_id, local_date, title, content, word_count, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+entryColumns,
		e.UserID, e.LocalDate, e.Title, e.Content, e.WordCount, e.CategoryID).StructScan(&out)
	if err != nil {
		return nil, err
	}
	if err := insertAssociations(ctx, tx, out.ID, moods, tagIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *entryRepo) Update(ctx context.Context, e *models.JournalEntry, moods []models.EntryMood, tagIDs []int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE journal_entries SET title=$1, content=$2, word_count=$3, category_id=$4, updated_at=NOW()
		 WHERE id=$5`,
		e.Title, e.Content, e.WordCount, e.CategoryID, e.ID)
	if err != nil {
		return err
	}
	// delete-all-then-reinsert, kept atomic by the surrounding tx
	if _, err := tx.ExecContext(ctx, `DELETE FROM entry_moods WHERE entry_id=$1`, e.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entry_tags WHERE entry_id=$1`, e.ID); err != nil {
		return err
	}
	if err := insertAssociations(ctx, tx, e.ID, moods, tagIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func insertAssociations(ctx context.Context, tx *sqlx.Tx, entryID int, moods []models.EntryMood, tagIDs []int) error {
	for _, m := range moods {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entry_moods (entry_id, mood_id, is_primary) VALUES ($1, $2, $3)`,
			entryID, m.MoodID, m.IsPrimary); err != nil {
			return err
		}
	}
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entry_tags (entry_id, tag_id) VALUES ($1, $2)`, entryID, tagID); err != nil {
			return err
		}
	}
	return nil
}

func (r *entryRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id=$1`, id)
	return err
}

func (r *entryRepo) MoodsByEntry(ctx context.Context, entryID int) ([]models.EntryMood, error) {
	var out []models.EntryMood
	err := r.db.SelectContext(ctx, &out,
		`SELECT entry_id, mood_id, is_primary FROM entry_moods WHERE entry_id=$1 ORDER BY is_primary DESC, mood_id ASC`, entryID)
	return out, err
}

func (r *entryRepo) TagsByEntry(ctx context.Context, entryID int) ([]models.EntryTag, error) {
	var out []models.EntryTag
	err := r.db.SelectContext(ctx, &out,
		`SELECT entry_id, tag_id FROM entry_tags WHERE entry_id=$1 ORDER BY tag_id ASC`, entryID)
	return out, err
}

func (r *entryRepo) MoodsByUser(ctx context.Context, userID int) ([]models.EntryMood, error) {
	var out []models.EntryMood
	err := r.db.SelectContext(ctx, &out,
		`SELECT em.entry_id, em.mood_id, em.is_primary
		 FROM entry_moods em JOIN journal_entries e ON e.id = em.entry_id
		 WHERE e.user_id=$1 ORDER BY em.entry_id ASC, em.mood_id ASC`, userID)
	return out, err
}

func (r *entryRepo) TagsByUser(ctx context.Context, userID int) ([]models.EntryTag, error) {
	var out []models.EntryTag
	err := r.db.SelectContext(ctx, &out,
		`SELECT et.entry_id, et.tag_id
		 FROM entry_tags et JOIN journal_entries e ON e.id = et.entry_id
		 WHERE e.user_id=$1 ORDER BY et.entry_id ASC, et.tag_id ASC`, userID)
	return out, err
}
