package service

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// maxSecondaryMoods caps non-primary mood associations per entry. Extra
// selections are dropped silently, not rejected.
const maxSecondaryMoods = 2

// EntryInput carries the caller-supplied fields of a create or update. Date
// is ignored on update; an entry's day is immutable once created.
type EntryInput struct {
	Date             time.Time
	Title            *string
	Content          string
	CategoryID       *int
	PrimaryMoodID    int
	SecondaryMoodIDs []int
	TagIDs           []int
}

// EntryService drives the entry lifecycle: the one-entry-per-day rule, word
// counting, mood/tag association limits, and streak upkeep.
type EntryService struct {
	entries store.EntryRepository
	streaks *StreakService
}

func NewEntryService(entries store.EntryRepository, streaks *StreakService) *EntryService {
	return &EntryService{entries: entries, streaks: streaks}
}

func buildMoodAssociations(in EntryInput) []models.EntryMood {
	moods := []models.EntryMood{{MoodID: in.PrimaryMoodID, IsPrimary: true}}
	secondaries := in.SecondaryMoodIDs
	if len(secondaries) > maxSecondaryMoods {
		secondaries = secondaries[:maxSecondaryMoods]
	}
	for _, id := range secondaries {
		moods = append(moods, models.EntryMood{MoodID: id, IsPrimary: false})
	}
	return moods
}

// Create persists a new entry for the acting user and advances their streak.
func (s *EntryService) Create(ctx context.Context, userID int, in EntryInput) (*models.JournalEntry, error) {
	if userID <= 0 {
		return nil, ErrAuthentication
	}
	if in.Content == "" {
		return nil, fmt.Errorf("%w: content required", ErrValidation)
	}
	if in.PrimaryMoodID <= 0 {
		return nil, fmt.Errorf("%w: primary mood required", ErrValidation)
	}

	date := NormalizeDate(in.Date)
	existing, err := s.entries.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("check existing entry: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: entry for %s", ErrConflict, date.Format(models.DateFormat))
	}

	entry := &models.JournalEntry{
		UserID:     userID,
		LocalDate:  date,
		Title:      in.Title,
		Content:    in.Content,
		WordCount:  CountWords(in.Content),
		CategoryID: in.CategoryID,
	}
	created, err := s.entries.Create(ctx, entry, buildMoodAssociations(in), in.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	if err := s.streaks.OnEntryAdded(ctx, userID, date); err != nil {
		return nil, fmt.Errorf("update streak: %w", err)
	}
	return created, nil
}

// Update rewrites the entry's content fields and fully replaces its mood and
// tag associations. The date stays as created, so the streak is untouched.
func (s *EntryService) Update(ctx context.Context, userID, entryID int, in EntryInput) error {
	if userID <= 0 {
		return ErrAuthentication
	}
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load entry: %w", err)
	}
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNotFound)
	}
	if entry.UserID != userID {
		return fmt.Errorf("%w: entry belongs to another user", ErrAuthorization)
	}
	if in.Content == "" {
		return fmt.Errorf("%w: content required", ErrValidation)
	}
	if in.PrimaryMoodID <= 0 {
		return fmt.Errorf("%w: primary mood required", ErrValidation)
	}

	entry.Title = in.Title
	entry.Content = in.Content
	entry.WordCount = CountWords(in.Content)
	entry.CategoryID = in.CategoryID
	if err := s.entries.Update(ctx, entry, buildMoodAssociations(in), in.TagIDs); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// Delete removes an owned entry and recalculates the streak from scratch,
// since a deletion can retroactively split any run.
func (s *EntryService) Delete(ctx context.Context, userID, entryID int) error {
	if userID <= 0 {
		return ErrAuthentication
	}
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load entry: %w", err)
	}
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNotFound)
	}
	if entry.UserID != userID {
		return fmt.Errorf("%w: entry belongs to another user", ErrAuthorization)
	}
	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if err := s.streaks.Recalculate(ctx, userID); err != nil {
		return fmt.Errorf("recalculate streak: %w", err)
	}
	return nil
}

// GetByDate returns the entry for a day, nil when there is none or when the
// caller is unauthenticated.
func (s *EntryService) GetByDate(ctx context.Context, userID int, date time.Time) (*models.JournalEntry, error) {
	if userID <= 0 {
		return nil, nil
	}
	return s.entries.GetByUserAndDate(ctx, userID, NormalizeDate(date))
}

// List returns all of the user's entries, date ascending. Unauthenticated
// callers get an empty list, not an error.
func (s *EntryService) List(ctx context.Context, userID int) ([]models.JournalEntry, error) {
	if userID <= 0 {
		return nil, nil
	}
	return s.entries.ListByUser(ctx, userID)
}

// Moods returns the mood associations of one entry, primary first.
func (s *EntryService) Moods(ctx context.Context, entryID int) ([]models.EntryMood, error) {
	return s.entries.MoodsByEntry(ctx, entryID)
}

// Tags returns the tag associations of one entry.
func (s *EntryService) Tags(ctx context.Context, entryID int) ([]models.EntryTag, error) {
	return s.entries.TagsByEntry(ctx, entryID)
}
