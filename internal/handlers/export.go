package handlers

import (
	"net/http"

	"inkwell/internal/export"
	mw "inkwell/internal/middleware"
	"inkwell/internal/service"
	"inkwell/internal/store"
)

type ExportHandler struct {
	entries    *service.EntryService
	moods      store.MoodRepository
	tags       store.TagRepository
	categories store.CategoryRepository
}

func NewExportHandler(entries *service.EntryService, moods store.MoodRepository, tags store.TagRepository, categories store.CategoryRepository) *ExportHandler {
	return &ExportHandler{entries: entries, moods: moods, tags: tags, categories: categories}
}

// Export streams the user's full journal as plain text (default) or CSV via
// ?format=csv. Entries come out date-ascending with names resolved.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r)
	ctx := r.Context()

	entries, err := h.entries.List(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	moods, err := h.moods.List(ctx)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	moodName := make(map[int]string, len(moods))
	for _, m := range moods {
		moodName[m.ID] = m.Name
	}
	categories, err := h.categories.List(ctx)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	categoryName := make(map[int]string, len(categories))
	for _, c := range categories {
		categoryName[c.ID] = c.Name
	}
	visibleTags, err := h.tags.ListVisible(ctx, userID)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	tagName := make(map[int]string, len(visibleTags))
	for _, t := range visibleTags {
		tagName[t.ID] = t.Name
	}

	projection := make([]export.Entry, 0, len(entries))
	for _, e := range entries {
		row := export.Entry{
			Date:      e.LocalDate,
			Content:   e.Content,
			WordCount: e.WordCount,
		}
		if e.Title != nil {
			row.Title = *e.Title
		}
		if e.CategoryID != nil {
			row.Category = categoryName[*e.CategoryID]
		}
		entryMoods, err := h.entries.Moods(ctx, e.ID)
		if err != nil {
			http.Error(w, "could not fetch", http.StatusInternalServerError)
			return
		}
		for _, m := range entryMoods {
			row.Moods = append(row.Moods, moodName[m.MoodID])
		}
		tags, err := h.entries.Tags(ctx, e.ID)
		if err != nil {
			http.Error(w, "could not fetch", http.StatusInternalServerError)
			return
		}
		for _, t := range tags {
			row.Tags = append(row.Tags, tagName[t.TagID])
		}
		projection = append(projection, row)
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="journal.csv"`)
		if err := export.ToCSV(w, projection); err != nil {
			http.Error(w, "could not export", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := export.ToText(w, projection); err != nil {
		http.Error(w, "could not export", http.StatusInternalServerError)
	}
}
