package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	mw "inkwell/internal/middleware"
	"inkwell/internal/service"
)

type SearchHandler struct {
	search *service.SearchService
}

func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// parseIDList splits a comma-separated id list ("1,4,9").
func parseIDList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// Search answers compound queries. All params are optional: term, start,
// end (YYYY-MM-DD), moods and tags (comma-separated ids). Provided
// predicates are ANDed.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var query service.AdvancedQuery
	query.Term = q.Get("term")

	var err error
	var start, end time.Time
	if s := q.Get("start"); s != "" {
		if start, err = parseDate(s); err != nil {
			http.Error(w, "invalid start format; expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		query.Start = &start
	}
	if s := q.Get("end"); s != "" {
		if end, err = parseDate(s); err != nil {
			http.Error(w, "invalid end format; expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		query.End = &end
	}
	if query.MoodIDs, err = parseIDList(q.Get("moods")); err != nil {
		http.Error(w, "invalid moods list", http.StatusBadRequest)
		return
	}
	if query.TagIDs, err = parseIDList(q.Get("tags")); err != nil {
		http.Error(w, "invalid tags list", http.StatusBadRequest)
		return
	}

	// a bare term goes through the text search path so the empty-term rule
	// applies
	userID := mw.UserID(r)
	if query.Start == nil && query.End == nil && query.MoodIDs == nil && query.TagIDs == nil {
		hits, err := h.search.SearchByText(r.Context(), userID, query.Term)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEntryDTOs(hits))
		return
	}

	hits, err := h.search.AdvancedSearch(r.Context(), userID, query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryDTOs(hits))
}
