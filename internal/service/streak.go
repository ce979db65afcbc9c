package service

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// StreakService maintains per-user streak state from entry dates. Entry
// creation feeds the O(1) incremental path; deletion forces a full
// recalculation because it can shorten or split runs anywhere in history.
type StreakService struct {
	streaks store.StreakRepository
	entries store.EntryRepository

	// now is swappable so lapse checks are testable.
	now func() time.Time
}

func NewStreakService(streaks store.StreakRepository, entries store.EntryRepository) *StreakService {
	return &StreakService{streaks: streaks, entries: entries, now: time.Now}
}

// OnEntryAdded advances the streak for a new entry on date. Consecutive-day
// entries extend the run, a gap resets it to 1, a same-day entry is a no-op.
// A backdated entry (earlier than the last recorded date) cannot be folded in
// incrementally, so it falls back to Recalculate.
func (s *StreakService) OnEntryAdded(ctx context.Context, userID int, date time.Time) error {
	date = NormalizeDate(date)

	st, err := s.streaks.GetByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load streak: %w", err)
	}
	if st == nil {
		st, err = s.streaks.Create(ctx, &models.Streak{UserID: userID})
		if err != nil {
			return fmt.Errorf("create streak: %w", err)
		}
	}

	if st.LastEntryDate == nil {
		st.CurrentStreak = 1
		if st.LongestStreak < 1 {
			st.LongestStreak = 1
		}
		st.LastEntryDate = &date
		return s.streaks.Save(ctx, st)
	}

	gap := daysBetween(NormalizeDate(*st.LastEntryDate), date)
	switch {
	case gap == 0:
		return nil
	case gap == 1:
		st.CurrentStreak++
		if st.CurrentStreak > st.LongestStreak {
			st.LongestStreak = st.CurrentStreak
		}
	case gap > 1:
		st.CurrentStreak = 1
	default:
		return s.Recalculate(ctx, userID)
	}
	st.LastEntryDate = &date
	return s.streaks.Save(ctx, st)
}

// Recalculate rebuilds the streak from the user's surviving entries. The
// result is authoritative: the stored LongestStreak is overwritten, not
// merged, so it may drop after a deletion. If the most recent entry is more
// than one day old the current streak has lapsed and is zeroed.
func (s *StreakService) Recalculate(ctx context.Context, userID int) error {
	st, err := s.streaks.GetByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load streak: %w", err)
	}
	if st == nil {
		st, err = s.streaks.Create(ctx, &models.Streak{UserID: userID})
		if err != nil {
			return fmt.Errorf("create streak: %w", err)
		}
	}

	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	if len(entries) == 0 {
		st.CurrentStreak = 0
		st.LongestStreak = 0
		st.LastEntryDate = nil
		return s.streaks.Save(ctx, st)
	}

	run, longest := 1, 1
	prev := NormalizeDate(entries[0].LocalDate)
	for _, e := range entries[1:] {
		d := NormalizeDate(e.LocalDate)
		if daysBetween(prev, d) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}

	last := NormalizeDate(entries[len(entries)-1].LocalDate)
	current := run
	if daysBetween(last, NormalizeDate(s.now().UTC())) > 1 {
		current = 0
	}

	st.CurrentStreak = current
	st.LongestStreak = longest
	st.LastEntryDate = &last
	return s.streaks.Save(ctx, st)
}

// Get returns the user's streak, or nil when none exists yet.
func (s *StreakService) Get(ctx context.Context, userID int) (*models.Streak, error) {
	return s.streaks.GetByUser(ctx, userID)
}

// MissedDays lists every calendar day in [start, end] with no entry, in
// ascending order.
func (s *StreakService) MissedDays(ctx context.Context, userID int, start, end time.Time) ([]time.Time, error) {
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", ErrValidation)
	}

	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	covered := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		covered[NormalizeDate(e.LocalDate)] = true
	}

	var missed []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !covered[d] {
			missed = append(missed, d)
		}
	}
	return missed, nil
}
