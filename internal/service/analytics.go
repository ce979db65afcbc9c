package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Window bounds an analytics query; a nil side is unbounded.
type Window struct {
	Start *time.Time
	End   *time.Time
}

func (w Window) contains(d time.Time) bool {
	d = NormalizeDate(d)
	if w.Start != nil && d.Before(NormalizeDate(*w.Start)) {
		return false
	}
	if w.End != nil && d.After(NormalizeDate(*w.End)) {
		return false
	}
	return true
}

type MoodCount struct {
	Mood  models.Mood `json:"mood"`
	Count int         `json:"count"`
}

type TagCount struct {
	Tag   models.Tag `json:"tag"`
	Count int        `json:"count"`
}

// WordCountPoint is one day's word count in a trend series.
type WordCountPoint struct {
	Date      time.Time `json:"date"`
	WordCount int       `json:"word_count"`
}

type DashboardStats struct {
	TotalEntries     int                             `json:"total_entries"` // all-time, not windowed
	CurrentStreak    int                             `json:"current_streak"`
	LongestStreak    int                             `json:"longest_streak"`
	MostFrequentMood *string                         `json:"most_frequent_mood,omitempty"`
	MoodDistribution map[models.MoodCategory]float64 `json:"mood_distribution"`
	TopTags          []TagCount                      `json:"top_tags"`
}

// AnalyticsService derives read-only aggregates over a user's entry set.
// Nothing here mutates state.
type AnalyticsService struct {
	entries store.EntryRepository
	moods   store.MoodRepository
	tags    store.TagRepository
	streaks *StreakService
}

func NewAnalyticsService(entries store.EntryRepository, moods store.MoodRepository, tags store.TagRepository, streaks *StreakService) *AnalyticsService {
	return &AnalyticsService{entries: entries, moods: moods, tags: tags, streaks: streaks}
}

func (s *AnalyticsService) windowed(ctx context.Context, userID int, w Window) ([]models.JournalEntry, error) {
	all, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	var out []models.JournalEntry
	for _, e := range all {
		if w.contains(e.LocalDate) {
			out = append(out, e)
		}
	}
	return out, nil
}

// primaryMoodCounts tallies primary-mood usage per mood id for in-window
// entries.
func (s *AnalyticsService) primaryMoodCounts(ctx context.Context, userID int, w Window) (map[int]int, error) {
	entries, err := s.windowed(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	inWindow := make(map[int]bool, len(entries))
	for _, e := range entries {
		inWindow[e.ID] = true
	}
	assocs, err := s.entries.MoodsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list mood associations: %w", err)
	}
	counts := make(map[int]int)
	for _, a := range assocs {
		if a.IsPrimary && inWindow[a.EntryID] {
			counts[a.MoodID]++
		}
	}
	return counts, nil
}

// MoodDistribution reports the percentage share of positive, neutral and
// negative primary moods. All three keys are always present; shares sum to
// 100 when there is any data, otherwise all are zero.
func (s *AnalyticsService) MoodDistribution(ctx context.Context, userID int, w Window) (map[models.MoodCategory]float64, error) {
	dist := map[models.MoodCategory]float64{
		models.MoodPositive: 0,
		models.MoodNeutral:  0,
		models.MoodNegative: 0,
	}
	counts, err := s.primaryMoodCounts(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	moods, err := s.moods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	categoryOf := make(map[int]models.MoodCategory, len(moods))
	for _, m := range moods {
		categoryOf[m.ID] = m.Category
	}

	total := 0
	perCategory := make(map[models.MoodCategory]int)
	for moodID, n := range counts {
		perCategory[categoryOf[moodID]] += n
		total += n
	}
	if total == 0 {
		return dist, nil
	}
	for cat := range dist {
		dist[cat] = float64(perCategory[cat]) / float64(total) * 100
	}
	return dist, nil
}

// MostFrequentMood returns the mode of primary moods, nil when the window is
// empty. Ties go to the lowest mood id.
func (s *AnalyticsService) MostFrequentMood(ctx context.Context, userID int, w Window) (*MoodCount, error) {
	counts, err := s.primaryMoodCounts(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	bestID, bestN := 0, 0
	for id, n := range counts {
		if n > bestN || (n == bestN && bestN > 0 && id < bestID) {
			bestID, bestN = id, n
		}
	}
	if bestN == 0 {
		return nil, nil
	}
	mood, err := s.moods.GetByID(ctx, bestID)
	if err != nil {
		return nil, fmt.Errorf("load mood: %w", err)
	}
	if mood == nil {
		return nil, fmt.Errorf("%w: mood %d", ErrNotFound, bestID)
	}
	return &MoodCount{Mood: *mood, Count: bestN}, nil
}

// tagCounts tallies tag usage across all associations of in-window entries.
func (s *AnalyticsService) tagCounts(ctx context.Context, userID int, w Window) (map[int]int, int, error) {
	entries, err := s.windowed(ctx, userID, w)
	if err != nil {
		return nil, 0, err
	}
	inWindow := make(map[int]bool, len(entries))
	for _, e := range entries {
		inWindow[e.ID] = true
	}
	assocs, err := s.entries.TagsByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("list tag associations: %w", err)
	}
	counts := make(map[int]int)
	for _, a := range assocs {
		if inWindow[a.EntryID] {
			counts[a.TagID]++
		}
	}
	return counts, len(entries), nil
}

// MostUsedTags returns the topN tags by usage, count descending, ties to the
// lowest tag id.
func (s *AnalyticsService) MostUsedTags(ctx context.Context, userID int, w Window, topN int) ([]TagCount, error) {
	if topN <= 0 {
		topN = 10
	}
	counts, _, err := s.tagCounts(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > topN {
		ids = ids[:topN]
	}
	out := make([]TagCount, 0, len(ids))
	for _, id := range ids {
		tag, err := s.tags.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load tag: %w", err)
		}
		if tag == nil {
			continue
		}
		out = append(out, TagCount{Tag: *tag, Count: counts[id]})
	}
	return out, nil
}

// TagBreakdown maps each used tag name to its usage count as a percentage of
// in-window entries. Entries can carry several tags, so values need not sum
// to 100.
func (s *AnalyticsService) TagBreakdown(ctx context.Context, userID int, w Window) (map[string]float64, error) {
	counts, totalEntries, err := s.tagCounts(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(counts))
	if totalEntries == 0 {
		return out, nil
	}
	for id, n := range counts {
		tag, err := s.tags.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load tag: %w", err)
		}
		if tag == nil {
			continue
		}
		out[tag.Name] = float64(n) / float64(totalEntries) * 100
	}
	return out, nil
}

// AverageWordCount is the mean word count of in-window entries, 0 when none.
func (s *AnalyticsService) AverageWordCount(ctx context.Context, userID int, w Window) (float64, error) {
	entries, err := s.windowed(ctx, userID, w)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}
	sum := 0
	for _, e := range entries {
		sum += e.WordCount
	}
	return float64(sum) / float64(len(entries)), nil
}

// WordCountTrend yields one point per entry date, ascending.
func (s *AnalyticsService) WordCountTrend(ctx context.Context, userID int, w Window) ([]WordCountPoint, error) {
	entries, err := s.windowed(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	out := make([]WordCountPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, WordCountPoint{Date: NormalizeDate(e.LocalDate), WordCount: e.WordCount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// Dashboard composes the headline numbers. TotalEntries is deliberately
// all-time while the mood and tag figures honor the window.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID int, w Window) (*DashboardStats, error) {
	all, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	stats := &DashboardStats{TotalEntries: len(all)}

	if streak, err := s.streaks.Get(ctx, userID); err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	} else if streak != nil {
		stats.CurrentStreak = streak.CurrentStreak
		stats.LongestStreak = streak.LongestStreak
	}

	if mc, err := s.MostFrequentMood(ctx, userID, w); err != nil {
		return nil, err
	} else if mc != nil {
		name := mc.Mood.Name
		stats.MostFrequentMood = &name
	}

	if stats.MoodDistribution, err = s.MoodDistribution(ctx, userID, w); err != nil {
		return nil, err
	}
	if stats.TopTags, err = s.MostUsedTags(ctx, userID, w, 5); err != nil {
		return nil, err
	}
	return stats, nil
}
