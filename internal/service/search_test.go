package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearchEntries(t *testing.T, env *testEnv, userID int) {
	t.Helper()
	ctx := context.Background()

	title := "Trip planning"
	_, err := env.entries.Create(ctx, userID, EntryInput{
		Date:          day(2026, time.April, 1),
		Title:         &title,
		Content:       "Booked flights to Lisbon",
		PrimaryMoodID: env.happy.ID,
		TagIDs:        []int{env.tagWork.ID},
	})
	require.NoError(t, err)

	_, err = env.entries.Create(ctx, userID, EntryInput{
		Date:             day(2026, time.April, 3),
		Content:          "Long run along the river",
		PrimaryMoodID:    env.tired.ID,
		SecondaryMoodIDs: []int{env.happy.ID},
		TagIDs:           []int{env.tagRun.ID},
	})
	require.NoError(t, err)

	_, err = env.entries.Create(ctx, userID, EntryInput{
		Date:          day(2026, time.April, 7),
		Content:       "Rough day at the office",
		PrimaryMoodID: env.sad.ID,
		TagIDs:        []int{env.tagWork.ID, env.tagRun.ID},
	})
	require.NoError(t, err)
}

func TestSearchByText(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	seedSearchEntries(t, env, u.ID)
	ctx := context.Background()

	hits, err := env.search.SearchByText(ctx, u.ID, "RUN")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Long run along the river", hits[0].Content)

	// title matches too
	hits, err = env.search.SearchByText(ctx, u.ID, "trip")
	require.NoError(t, err)
	require.Len(t, hits, 1)
}

func TestSearchByTextEmptyTermYieldsNothing(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	seedSearchEntries(t, env, u.ID)
	ctx := context.Background()

	for _, term := range []string{"", "   ", "\t\n"} {
		hits, err := env.search.SearchByText(ctx, u.ID, term)
		require.NoError(t, err)
		assert.Empty(t, hits)
	}
}

func TestSearchResultsOrderedDateDescending(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	seedSearchEntries(t, env, u.ID)

	hits, err := env.search.SearchByText(context.Background(), u.ID, "the")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.True(t, hits[0].LocalDate.After(hits[1].LocalDate))
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	seedSearchEntries(t, env, u.ID)

	hits, err := env.search.FilterByDateRange(context.Background(), u.ID, day(2026, time.April, 1), day(2026, time.April, 3))
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.True(t, hits[0].LocalDate.Equal(day(2026, time.April, 3)))
	assert.True(t, hits[1].LocalDate.Equal(day(2026, time.April, 1)))
}

func TestFilterByMoodsMatchesSecondaryAssociations(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	seedSearchEntries(t, env, u.ID)
	ctx := context.Background()

	// happy is primary on Apr 1 and secondary on Apr 3
	hits, err := env.search.FilterByMoods(ctx, u.ID, []int{env.happy.ID})
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = env.search.FilterByMoods(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, hits, "empty mood list filters to nothing, not everything")
}

func TestFilterByTagsUnion(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	seedSearchEntries(t, env, u.ID)
	ctx := context.Background()

	hits, err := env.search.FilterByTags(ctx, u.ID, []int{env.tagRun.ID})
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = env.search.FilterByTags(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestAdvancedSearchIntersectsPredicates(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	seedSearchEntries(t, env, u.ID)
	ctx := context.Background()

	start, end := day(2026, time.April, 2), day(2026, time.April, 30)
	hits, err := env.search.AdvancedSearch(ctx, u.ID, AdvancedQuery{
		Term:   "the",
		Start:  &start,
		End:    &end,
		TagIDs: []int{env.tagRun.ID},
	})
	require.NoError(t, err)
	require.Len(t, hits, 2)

	hits, err = env.search.AdvancedSearch(ctx, u.ID, AdvancedQuery{
		Term:    "the",
		Start:   &start,
		End:     &end,
		MoodIDs: []int{env.sad.ID},
	})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.True(t, hits[0].LocalDate.Equal(day(2026, time.April, 7)))

	// no predicates: whole entry set, date descending
	hits, err = env.search.AdvancedSearch(ctx, u.ID, AdvancedQuery{})
	require.NoError(t, err)
	assert.Len(t, hits, 3)
}

func TestSearchScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	seedSearchEntries(t, env, alice.ID)

	hits, err := env.search.SearchByText(context.Background(), bob.ID, "run")
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = env.search.SearchByText(context.Background(), 0, "run")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
