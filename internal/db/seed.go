package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type seedMood struct {
	name, category, color, icon string
}

var seedMoods = []seedMood{
	{"Happy", "positive", "#FFD166", "sun"},
	{"Excited", "positive", "#EF476F", "spark"},
	{"Grateful", "positive", "#06D6A0", "heart"},
	{"Calm", "positive", "#A8DADC", "wave"},
	{"Proud", "positive", "#F4A261", "medal"},
	{"Okay", "neutral", "#BDBDBD", "dash"},
	{"Tired", "neutral", "#9E9E9E", "moon"},
	{"Bored", "neutral", "#C9CBA3", "cloud"},
	{"Busy", "neutral", "#8D99AE", "clock"},
	{"Pensive", "neutral", "#B5838D", "book"},
	{"Sad", "negative", "#457B9D", "rain"},
	{"Anxious", "negative", "#E07A5F", "knot"},
	{"Angry", "negative", "#D62828", "flame"},
	{"Stressed", "negative", "#6D597A", "bolt"},
	{"Lonely", "negative", "#355070", "shadow"},
}

var seedTags = []string{
	"family", "friends", "work", "school", "exercise", "food", "travel",
	"music", "movies", "books", "nature", "weather", "health", "sleep",
	"dreams", "goals", "gratitude", "memories", "love", "hobbies",
	"shopping", "cooking", "pets", "sports", "meditation", "writing",
	"art", "finance", "celebration", "challenge", "growth",
}

type seedCategory struct {
	name, description, color string
}

var seedCategories = []seedCategory{
	{"Personal", "Day-to-day life", "#4E79A7"},
	{"Work", "Career and projects", "#F28E2B"},
	{"Health", "Body and mind", "#59A14F"},
	{"Travel", "Trips and places", "#76B7B2"},
	{"Ideas", "Thoughts worth keeping", "#EDC948"},
}

// SeedReferenceData populates the mood, pre-built tag and category
// catalogues. Each catalogue is only written when it is empty, so repeated
// boots are harmless.
func SeedReferenceData(db *sqlx.DB) error {
	ctx := context.Background()

	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM moods`); err != nil {
		return err
	}
	if n == 0 {
		for _, m := range seedMoods {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO moods (name, category, color, icon) VALUES ($1, $2, $3, $4)`,
				m.name, m.category, m.color, m.icon); err != nil {
				return err
			}
		}
	}

	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM tags WHERE is_custom = false`); err != nil {
		return err
	}
	if n == 0 {
		for _, name := range seedTags {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO tags (name, is_custom) VALUES ($1, false)`, name); err != nil {
				return err
			}
		}
	}

	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n == 0 {
		for _, c := range seedCategories {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO categories (name, description, color) VALUES ($1, $2, $3)`,
				c.name, c.description, c.color); err != nil {
				return err
			}
		}
	}

	return nil
}
