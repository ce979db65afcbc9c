package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	mw "inkwell/internal/middleware"
	"inkwell/internal/service"
)

type AuthHandler struct {
	auth      *service.AuthService
	jwtSecret []byte
}

func NewAuthHandler(auth *service.AuthService, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: jwtSecret}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	user, err := h.auth.Register(r.Context(), c.Username, c.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	token, err := h.issueJWT(user.ID)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"token": token, "user": user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	user, err := h.auth.Login(r.Context(), c.Username, c.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	token, err := h.issueJWT(user.ID)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

type pinRequest struct {
	Pin string `json:"pin"`
}

// SetPin stores the quick-unlock PIN for the authenticated user.
func (h *AuthHandler) SetPin(w http.ResponseWriter, r *http.Request) {
	var body pinRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.auth.SetPin(r.Context(), mw.UserID(r), body.Pin); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// VerifyPin checks a PIN against the stored one.
func (h *AuthHandler) VerifyPin(w http.ResponseWriter, r *http.Request) {
	var body pinRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	ok, err := h.auth.VerifyPin(r.Context(), mw.UserID(r), body.Pin)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": ok})
}

func (h *AuthHandler) issueJWT(userID int) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
