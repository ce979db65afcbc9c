package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"inkwell/internal/models"
)

// Repository lookups return (nil, nil) when the row does not exist; errors
// are reserved for infrastructure failures. Services translate absence into
// their own error taxonomy.

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	// GetByUsername matches the stored (lower-cased) username exactly.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, u *models.User) (*models.User, error)
	SetPin(ctx context.Context, userID int, pinHash, pinSalt string) error
}

type EntryRepository interface {
	GetByID(ctx context.Context, id int) (*models.JournalEntry, error)
	GetByUserAndDate(ctx context.Context, userID int, date time.Time) (*models.JournalEntry, error)
	// ListByUser returns the user's entries ordered by date ascending.
	ListByUser(ctx context.Context, userID int) ([]models.JournalEntry, error)

	// Create persists the entry together with its mood and tag associations
	// in a single transaction and returns the stored row.
	Create(ctx context.Context, e *models.JournalEntry, moods []models.EntryMood, tagIDs []int) (*models.JournalEntry, error)
	// Update rewrites the entry row and fully replaces its mood and tag
	// associations in a single transaction.
	Update(ctx context.Context, e *models.JournalEntry, moods []models.EntryMood, tagIDs []int) error
	// Delete removes the entry; associations go with it.
	Delete(ctx context.Context, id int) error

	MoodsByEntry(ctx context.Context, entryID int) ([]models.EntryMood, error)
	TagsByEntry(ctx context.Context, entryID int) ([]models.EntryTag, error)
	// MoodsByUser and TagsByUser return associations across all of the
	// user's entries, for the search and analytics engines.
	MoodsByUser(ctx context.Context, userID int) ([]models.EntryMood, error)
	TagsByUser(ctx context.Context, userID int) ([]models.EntryTag, error)
}

type MoodRepository interface {
	GetByID(ctx context.Context, id int) (*models.Mood, error)
	List(ctx context.Context) ([]models.Mood, error)
}

type TagRepository interface {
	GetByID(ctx context.Context, id int) (*models.Tag, error)
	// ListVisible returns all pre-built tags plus the user's custom tags.
	ListVisible(ctx context.Context, userID int) ([]models.Tag, error)
	Create(ctx context.Context, t *models.Tag) (*models.Tag, error)
	Delete(ctx context.Context, id int) error
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id int) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}

type StreakRepository interface {
	GetByUser(ctx context.Context, userID int) (*models.Streak, error)
	Create(ctx context.Context, s *models.Streak) (*models.Streak, error)
	Save(ctx context.Context, s *models.Streak) error
}

// Store bundles the repositories backing one database.
type Store struct {
	Users      UserRepository
	Entries    EntryRepository
	Moods      MoodRepository
	Tags       TagRepository
	Categories CategoryRepository
	Streaks    StreakRepository
}

// New wires the Postgres-backed repositories.
func New(db *sqlx.DB) *Store {
	return &Store{
		Users:      NewUserRepository(db),
		Entries:    NewEntryRepository(db),
		Moods:      NewMoodRepository(db),
		Tags:       NewTagRepository(db),
		Categories: NewCategoryRepository(db),
		Streaks:    NewStreakRepository(db),
	}
}
