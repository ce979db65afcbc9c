package models

import "time"

// DateFormat is the wire and storage format for calendar dates.
const DateFormat = "2006-01-02"

type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"` // base64 PBKDF2 output
	PasswordSalt string    `db:"password_salt" json:"-"` // base64, 32 random bytes
	PinHash      *string   `db:"pin_hash" json:"-"`
	PinSalt      *string   `db:"pin_salt" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type JournalEntry struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	LocalDate  time.Time `db:"local_date" json:"local_date"` // calendar day, time-of-day zeroed
	Title      *string   `db:"title" json:"title,omitempty"`
	Content    string    `db:"content" json:"content"`
	WordCount  int       `db:"word_count" json:"word_count"`
	CategoryID *int      `db:"category_id" json:"category_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// MoodCategory partitions the mood catalogue.
type MoodCategory string

const (
	MoodPositive MoodCategory = "positive"
	MoodNeutral  MoodCategory = "neutral"
	MoodNegative MoodCategory = "negative"
)

type Mood struct {
	ID       int          `db:"id" json:"id"`
	Name     string       `db:"name" json:"name"`
	Category MoodCategory `db:"category" json:"category"`
	Color    string       `db:"color" json:"color"`
	Icon     string       `db:"icon" json:"icon"`
}

// EntryMood links an entry to a mood. Exactly one association per entry has
// IsPrimary set; at most two do not.
type EntryMood struct {
	EntryID   int  `db:"entry_id" json:"entry_id"`
	MoodID    int  `db:"mood_id" json:"mood_id"`
	IsPrimary bool `db:"is_primary" json:"is_primary"`
}

type Tag struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	IsCustom bool   `db:"is_custom" json:"is_custom"`
	OwnerID  *int   `db:"owner_id" json:"owner_id,omitempty"` // nil for pre-built tags
}

type EntryTag struct {
	EntryID int `db:"entry_id" json:"entry_id"`
	TagID   int `db:"tag_id" json:"tag_id"`
}

type Category struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Color       string `db:"color" json:"color"`
}

// Streak is 1:1 with a user, created at registration.
// CurrentStreak never exceeds LongestStreak.
type Streak struct {
	ID            int        `db:"id" json:"id"`
	UserID        int        `db:"user_id" json:"user_id"`
	CurrentStreak int        `db:"current_streak" json:"current_streak"`
	LongestStreak int        `db:"longest_streak" json:"longest_streak"`
	LastEntryDate *time.Time `db:"last_entry_date" json:"last_entry_date,omitempty"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
