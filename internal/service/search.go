package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// SearchService answers substring search and compound filters over one
// user's entries. Every operation returns an empty result for an
// unauthenticated caller and orders hits by date descending.
type SearchService struct {
	entries store.EntryRepository
}

func NewSearchService(entries store.EntryRepository) *SearchService {
	return &SearchService{entries: entries}
}

// AdvancedQuery is a compound filter; zero-valued fields are no-ops and the
// provided ones are ANDed.
type AdvancedQuery struct {
	Term    string
	Start   *time.Time
	End     *time.Time
	MoodIDs []int
	TagIDs  []int
}

func sortByDateDesc(entries []models.JournalEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LocalDate.After(entries[j].LocalDate)
	})
}

func matchesTerm(e models.JournalEntry, term string) bool {
	if e.Title != nil && strings.Contains(strings.ToLower(*e.Title), term) {
		return true
	}
	return strings.Contains(strings.ToLower(e.Content), term)
}

// SearchByText matches term case-insensitively against title or content. An
// empty or whitespace term yields nothing rather than everything.
func (s *SearchService) SearchByText(ctx context.Context, userID int, term string) ([]models.JournalEntry, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if userID <= 0 || term == "" {
		return nil, nil
	}
	all, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	var out []models.JournalEntry
	for _, e := range all {
		if matchesTerm(e, term) {
			out = append(out, e)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

// FilterByDateRange returns entries with start <= date <= end.
func (s *SearchService) FilterByDateRange(ctx context.Context, userID int, start, end time.Time) ([]models.JournalEntry, error) {
	if userID <= 0 {
		return nil, nil
	}
	start, end = NormalizeDate(start), NormalizeDate(end)
	all, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	var out []models.JournalEntry
	for _, e := range all {
		d := NormalizeDate(e.LocalDate)
		if !d.Before(start) && !d.After(end) {
			out = append(out, e)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

// entryIDsWithMoods collects entries having any association (primary or not)
// with one of the given moods.
func (s *SearchService) entryIDsWithMoods(ctx context.Context, userID int, moodIDs []int) (map[int]bool, error) {
	assocs, err := s.entries.MoodsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list mood associations: %w", err)
	}
	wanted := make(map[int]bool, len(moodIDs))
	for _, id := range moodIDs {
		wanted[id] = true
	}
	hit := make(map[int]bool)
	for _, a := range assocs {
		if wanted[a.MoodID] {
			hit[a.EntryID] = true
		}
	}
	return hit, nil
}

func (s *SearchService) entryIDsWithTags(ctx context.Context, userID int, tagIDs []int) (map[int]bool, error) {
	assocs, err := s.entries.TagsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tag associations: %w", err)
	}
	wanted := make(map[int]bool, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = true
	}
	hit := make(map[int]bool)
	for _, a := range assocs {
		if wanted[a.TagID] {
			hit[a.EntryID] = true
		}
	}
	return hit, nil
}

// FilterByMoods returns entries carrying any of the given moods. An empty id
// list yields an empty result.
func (s *SearchService) FilterByMoods(ctx context.Context, userID int, moodIDs []int) ([]models.JournalEntry, error) {
	if userID <= 0 || len(moodIDs) == 0 {
		return nil, nil
	}
	hit, err := s.entryIDsWithMoods(ctx, userID, moodIDs)
	if err != nil {
		return nil, err
	}
	return s.collect(ctx, userID, hit)
}

// FilterByTags returns entries carrying any of the given tags.
func (s *SearchService) FilterByTags(ctx context.Context, userID int, tagIDs []int) ([]models.JournalEntry, error) {
	if userID <= 0 || len(tagIDs) == 0 {
		return nil, nil
	}
	hit, err := s.entryIDsWithTags(ctx, userID, tagIDs)
	if err != nil {
		return nil, err
	}
	return s.collect(ctx, userID, hit)
}

func (s *SearchService) collect(ctx context.Context, userID int, ids map[int]bool) ([]models.JournalEntry, error) {
	all, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	var out []models.JournalEntry
	for _, e := range all {
		if ids[e.ID] {
			out = append(out, e)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

// AdvancedSearch intersects all provided predicates over the user's entries.
func (s *SearchService) AdvancedSearch(ctx context.Context, userID int, q AdvancedQuery) ([]models.JournalEntry, error) {
	if userID <= 0 {
		return nil, nil
	}
	all, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(q.Term))
	var moodHit, tagHit map[int]bool
	if len(q.MoodIDs) > 0 {
		if moodHit, err = s.entryIDsWithMoods(ctx, userID, q.MoodIDs); err != nil {
			return nil, err
		}
	}
	if len(q.TagIDs) > 0 {
		if tagHit, err = s.entryIDsWithTags(ctx, userID, q.TagIDs); err != nil {
			return nil, err
		}
	}

	var out []models.JournalEntry
	for _, e := range all {
		if term != "" && !matchesTerm(e, term) {
			continue
		}
		d := NormalizeDate(e.LocalDate)
		if q.Start != nil && d.Before(NormalizeDate(*q.Start)) {
			continue
		}
		if q.End != nil && d.After(NormalizeDate(*q.End)) {
			continue
		}
		if moodHit != nil && !moodHit[e.ID] {
			continue
		}
		if tagHit != nil && !tagHit[e.ID] {
			continue
		}
		out = append(out, e)
	}
	sortByDateDesc(out)
	return out, nil
}
