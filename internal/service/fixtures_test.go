package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inkwell/internal/crypto"
	"inkwell/internal/models"
)

type testEnv struct {
	data      *memData
	auth      *AuthService
	entries   *EntryService
	streaks   *StreakService
	search    *SearchService
	analytics *AnalyticsService
	tags      *TagService

	// seeded reference data
	happy, tired, sad *models.Mood
	tagWork, tagRun   *models.Tag
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	data := newMemData()
	st := data.store()

	hasher, err := crypto.NewHasher(crypto.DefaultIterations)
	require.NoError(t, err)

	streaks := NewStreakService(st.Streaks, st.Entries)
	env := &testEnv{
		data:      data,
		auth:      NewAuthService(st.Users, st.Streaks, hasher),
		streaks:   streaks,
		entries:   NewEntryService(st.Entries, streaks),
		search:    NewSearchService(st.Entries),
		analytics: NewAnalyticsService(st.Entries, st.Moods, st.Tags, streaks),
		tags:      NewTagService(st.Tags),
	}
	env.happy = data.addMood("Happy", models.MoodPositive)
	env.tired = data.addMood("Tired", models.MoodNeutral)
	env.sad = data.addMood("Sad", models.MoodNegative)
	env.tagWork = data.addTag("work", 0)
	env.tagRun = data.addTag("running", 0)
	return env
}

// registerUser creates a user through the real registration path.
func (env *testEnv) registerUser(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := env.auth.Register(context.Background(), username, "hunter22")
	require.NoError(t, err)
	return u
}

// addEntry creates an entry with the default happy mood.
func (env *testEnv) addEntry(t *testing.T, userID int, date time.Time, content string) *models.JournalEntry {
	t.Helper()
	e, err := env.entries.Create(context.Background(), userID, EntryInput{
		Date:          date,
		Content:       content,
		PrimaryMoodID: env.happy.ID,
	})
	require.NoError(t, err)
	return e
}
