package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jaydhumal23/backend-assignment/internal/apperror"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeError maps an error to its taxonomy status code and a stable error
// code. The underlying cause of an internal error stays in the server log.
func writeError(w http.ResponseWriter, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		log.Printf("internal error: %v", err)
	}
	writeJSON(w, kind.HTTPStatus(), map[string]any{
		"success": false,
		"code":    kind.Code(),
		"message": apperror.MessageOf(err),
	})
}

// decodeJSON rejects bodies with unknown or malformed fields so nothing
// loosely validated reaches the service layer.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperror.Validation("invalid request body")
	}
	return nil
}
