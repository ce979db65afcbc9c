package handlers

import (
	"time"

	"inkwell/internal/models"
)

// EntryDTO keeps the wire format date-only for local_date while the
// timestamps stay RFC3339.
type EntryDTO struct {
	ID         int     `json:"id"`
	LocalDate  string  `json:"local_date"`
	Title      *string `json:"title,omitempty"`
	Content    string  `json:"content"`
	WordCount  int     `json:"word_count"`
	CategoryID *int    `json:"category_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func toEntryDTO(e models.JournalEntry) EntryDTO {
	return EntryDTO{
		ID:         e.ID,
		LocalDate:  e.LocalDate.Format(models.DateFormat),
		Title:      e.Title,
		Content:    e.Content,
		WordCount:  e.WordCount,
		CategoryID: e.CategoryID,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
}

func toEntryDTOs(entries []models.JournalEntry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryDTO(e))
	}
	return out
}

// parseDate parses a YYYY-MM-DD query or body value.
func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateFormat, s)
}
