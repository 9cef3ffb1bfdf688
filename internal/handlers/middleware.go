package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/jaydhumal23/backend-assignment/internal/apperror"
	"github.com/jaydhumal23/backend-assignment/internal/models"
	"github.com/jaydhumal23/backend-assignment/internal/utils"
)

// AuthMiddleware verifies the bearer token and places the caller into the
// request context. Every protected route sits behind it.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, apperror.Unauthorized("missing bearer token"))
			return
		}

		caller, err := h.AuthService.VerifyToken(token)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ContextCaller, *caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly gates a route group on the admin role. Must run after
// AuthMiddleware.
func (h *Handler) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := utils.CallerFromContext(r.Context())
		if !ok {
			writeError(w, apperror.Unauthorized("missing bearer token"))
			return
		}
		if caller.Role != models.RoleAdmin {
			writeError(w, apperror.Forbidden("admin access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
