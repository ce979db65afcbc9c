package service

import (
	"context"
	"sort"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// memData is an in-memory persistence gateway shared by the fake
// repositories below. It keeps the engines testable without a database.
type memData struct {
	nextID     int
	users      map[int]*models.User
	entries    map[int]*models.JournalEntry
	entryMoods []models.EntryMood
	entryTags  []models.EntryTag
	moods      map[int]*models.Mood
	tags       map[int]*models.Tag
	categories map[int]*models.Category
	streaks    map[int]*models.Streak // keyed by user id
}

func newMemData() *memData {
	return &memData{
		users:      map[int]*models.User{},
		entries:    map[int]*models.JournalEntry{},
		moods:      map[int]*models.Mood{},
		tags:       map[int]*models.Tag{},
		categories: map[int]*models.Category{},
		streaks:    map[int]*models.Streak{},
	}
}

func (d *memData) id() int {
	d.nextID++
	return d.nextID
}

func (d *memData) addMood(name string, cat models.MoodCategory) *models.Mood {
	m := &models.Mood{ID: d.id(), Name: name, Category: cat}
	d.moods[m.ID] = m
	return m
}

func (d *memData) addTag(name string, ownerID int) *models.Tag {
	t := &models.Tag{ID: d.id(), Name: name}
	if ownerID > 0 {
		t.IsCustom = true
		t.OwnerID = &ownerID
	}
	d.tags[t.ID] = t
	return t
}

func (d *memData) store() *store.Store {
	return &store.Store{
		Users:      &memUsers{d},
		Entries:    &memEntries{d},
		Moods:      &memMoods{d},
		Tags:       &memTags{d},
		Categories: &memCategories{d},
		Streaks:    &memStreaks{d},
	}
}

type memUsers struct{ d *memData }

func (r *memUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	if u, ok := r.d.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.d.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	cp := *u
	cp.ID = r.d.id()
	cp.CreatedAt = time.Now()
	r.d.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memUsers) SetPin(_ context.Context, userID int, pinHash, pinSalt string) error {
	if u, ok := r.d.users[userID]; ok {
		u.PinHash, u.PinSalt = &pinHash, &pinSalt
	}
	return nil
}

type memEntries struct{ d *memData }

func (r *memEntries) GetByID(_ context.Context, id int) (*models.JournalEntry, error) {
	if e, ok := r.d.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r *memEntries) GetByUserAndDate(_ context.Context, userID int, date time.Time) (*models.JournalEntry, error) {
	for _, e := range r.d.entries {
		if e.UserID == userID && e.LocalDate.Equal(date) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memEntries) ListByUser(_ context.Context, userID int) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, e := range r.d.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocalDate.Before(out[j].LocalDate) })
	return out, nil
}

func (r *memEntries) Create(_ context.Context, e *models.JournalEntry, moods []models.EntryMood, tagIDs []int) (*models.JournalEntry, error) {
	cp := *e
	cp.ID = r.d.id()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.d.entries[cp.ID] = &cp
	for _, m := range moods {
		m.EntryID = cp.ID
		r.d.entryMoods = append(r.d.entryMoods, m)
	}
	for _, tagID := range tagIDs {
		r.d.entryTags = append(r.d.entryTags, models.EntryTag{EntryID: cp.ID, TagID: tagID})
	}
	out := cp
	return &out, nil
}

func (r *memEntries) Update(_ context.Context, e *models.JournalEntry, moods []models.EntryMood, tagIDs []int) error {
	stored, ok := r.d.entries[e.ID]
	if !ok {
		return nil
	}
	stored.Title = e.Title
	stored.Content = e.Content
	stored.WordCount = e.WordCount
	stored.CategoryID = e.CategoryID
	stored.UpdatedAt = time.Now()
	r.dropAssociations(e.ID)
	for _, m := range moods {
		m.EntryID = e.ID
		r.d.entryMoods = append(r.d.entryMoods, m)
	}
	for _, tagID := range tagIDs {
		r.d.entryTags = append(r.d.entryTags, models.EntryTag{EntryID: e.ID, TagID: tagID})
	}
	return nil
}

func (r *memEntries) dropAssociations(entryID int) {
	var moods []models.EntryMood
	for _, m := range r.d.entryMoods {
		if m.EntryID != entryID {
			moods = append(moods, m)
		}
	}
	r.d.entryMoods = moods
	var tags []models.EntryTag
	for _, t := range r.d.entryTags {
		if t.EntryID != entryID {
			tags = append(tags, t)
		}
	}
	r.d.entryTags = tags
}

func (r *memEntries) Delete(_ context.Context, id int) error {
	delete(r.d.entries, id)
	r.dropAssociations(id)
	return nil
}

func (r *memEntries) MoodsByEntry(_ context.Context, entryID int) ([]models.EntryMood, error) {
	var out []models.EntryMood
	for _, m := range r.d.entryMoods {
		if m.EntryID == entryID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memEntries) TagsByEntry(_ context.Context, entryID int) ([]models.EntryTag, error) {
	var out []models.EntryTag
	for _, t := range r.d.entryTags {
		if t.EntryID == entryID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memEntries) MoodsByUser(_ context.Context, userID int) ([]models.EntryMood, error) {
	var out []models.EntryMood
	for _, m := range r.d.entryMoods {
		if e, ok := r.d.entries[m.EntryID]; ok && e.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memEntries) TagsByUser(_ context.Context, userID int) ([]models.EntryTag, error) {
	var out []models.EntryTag
	for _, t := range r.d.entryTags {
		if e, ok := r.d.entries[t.EntryID]; ok && e.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type memMoods struct{ d *memData }

func (r *memMoods) GetByID(_ context.Context, id int) (*models.Mood, error) {
	if m, ok := r.d.moods[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *memMoods) List(_ context.Context) ([]models.Mood, error) {
	var out []models.Mood
	for _, m := range r.d.moods {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memTags struct{ d *memData }

func (r *memTags) GetByID(_ context.Context, id int) (*models.Tag, error) {
	if t, ok := r.d.tags[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *memTags) ListVisible(_ context.Context, userID int) ([]models.Tag, error) {
	var out []models.Tag
	for _, t := range r.d.tags {
		if t.OwnerID == nil || *t.OwnerID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTags) Create(_ context.Context, t *models.Tag) (*models.Tag, error) {
	cp := *t
	cp.ID = r.d.id()
	r.d.tags[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memTags) Delete(_ context.Context, id int) error {
	delete(r.d.tags, id)
	return nil
}

type memCategories struct{ d *memData }

func (r *memCategories) GetByID(_ context.Context, id int) (*models.Category, error) {
	if c, ok := r.d.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCategories) List(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.d.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memStreaks struct{ d *memData }

func (r *memStreaks) GetByUser(_ context.Context, userID int) (*models.Streak, error) {
	if s, ok := r.d.streaks[userID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memStreaks) Create(_ context.Context, s *models.Streak) (*models.Streak, error) {
	cp := *s
	cp.ID = r.d.id()
	cp.UpdatedAt = time.Now()
	r.d.streaks[cp.UserID] = &cp
	out := cp
	return &out, nil
}

func (r *memStreaks) Save(_ context.Context, s *models.Streak) error {
	cp := *s
	cp.UpdatedAt = time.Now()
	r.d.streaks[cp.UserID] = &cp
	return nil
}
