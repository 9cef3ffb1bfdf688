package handlers

import (
	"net/http"

	"github.com/jaydhumal23/backend-assignment/internal/apperror"
	"github.com/jaydhumal23/backend-assignment/internal/models"
	"github.com/jaydhumal23/backend-assignment/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input models.RegisterRequest
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	token, user, err := h.AuthService.Register(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginRequest
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	token, user, err := h.AuthService.Login(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("missing bearer token"))
		return
	}

	user, err := h.AuthService.GetCurrentUser(r.Context(), caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

// Logout signals the client to discard its token. Always succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.AuthService.Logout()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("missing bearer token"))
		return
	}

	users, err := h.AuthService.ListUsers(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"users":   users,
	})
}
