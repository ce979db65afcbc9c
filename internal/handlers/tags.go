package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	mw "inkwell/internal/middleware"
	"inkwell/internal/service"
	"inkwell/internal/store"
)

type TagHandler struct {
	tags       *service.TagService
	moods      store.MoodRepository
	categories store.CategoryRepository
}

func NewTagHandler(tags *service.TagService, moods store.MoodRepository, categories store.CategoryRepository) *TagHandler {
	return &TagHandler{tags: tags, moods: moods, categories: categories}
}

// List returns every tag the user can see: pre-built plus their own.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.ListVisible(r.Context(), mw.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	tag, err := h.tags.CreateCustom(r.Context(), mw.UserID(r), body.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tag)
}

func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tagID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.tags.DeleteCustom(r.Context(), mw.UserID(r), tagID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Moods lists the mood catalogue.
func (h *TagHandler) Moods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.moods.List(r.Context())
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, moods)
}

// Categories lists the category catalogue.
func (h *TagHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
