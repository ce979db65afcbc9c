package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	mw "inkwell/internal/middleware"
	"inkwell/internal/service"
)

type JournalHandler struct {
	entries *service.EntryService
}

func NewJournalHandler(entries *service.EntryService) *JournalHandler {
	return &JournalHandler{entries: entries}
}

type entryRequest struct {
	LocalDate        string  `json:"local_date"` // YYYY-MM-DD
	Title            *string `json:"title"`
	Content          string  `json:"content"`
	CategoryID       *int    `json:"category_id"`
	PrimaryMoodID    int     `json:"primary_mood_id"`
	SecondaryMoodIDs []int   `json:"secondary_mood_ids"`
	TagIDs           []int   `json:"tag_ids"`
}

func (req entryRequest) toInput() (service.EntryInput, error) {
	in := service.EntryInput{
		Title:            req.Title,
		Content:          req.Content,
		CategoryID:       req.CategoryID,
		PrimaryMoodID:    req.PrimaryMoodID,
		SecondaryMoodIDs: req.SecondaryMoodIDs,
		TagIDs:           req.TagIDs,
	}
	if req.LocalDate != "" {
		date, err := parseDate(req.LocalDate)
		if err != nil {
			return in, err
		}
		in.Date = date
	}
	return in, nil
}

// Create adds the entry for one calendar day.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LocalDate == "" {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	in, err := req.toInput()
	if err != nil {
		http.Error(w, "invalid local_date format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	entry, err := h.entries.Create(r.Context(), mw.UserID(r), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryDTO(*entry))
}

// Update rewrites an entry's fields and associations; the date is immutable.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	in, err := req.toInput()
	if err != nil {
		http.Error(w, "invalid local_date format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if err := h.entries.Update(r.Context(), mw.UserID(r), entryID, in); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.entries.Delete(r.Context(), mw.UserID(r), entryID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetByDate returns the entry for one day, 404 when the day is blank.
func (h *JournalHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "invalid date format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	entry, err := h.entries.GetByDate(r.Context(), mw.UserID(r), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if entry == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toEntryDTO(*entry))
}

// List returns all entries, date ascending.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entries.List(r.Context(), mw.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryDTOs(entries))
}
