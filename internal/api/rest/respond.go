package rest

import (
	"encoding/json"
	"log"
	"net/http"

	apperrors "github.com/reelcrew/reelcrew/internal/platform/errors"
)

// errorEnvelope is the wire shape for every error response.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// writeError renders a domain error with its mapped HTTP status. Unknown
// causes collapse to a generic 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	status := code.HTTPStatus()
	message := err.Error()
	if code == apperrors.CodeUnknown {
		message = "internal error"
		log.Printf("api internal error: %v", err)
	}
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:    string(code),
		Message: message,
	}})
}

func writeStatusError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:    code,
		Message: message,
	}})
}

func writeInvalidJSON(w http.ResponseWriter) {
	writeStatusError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
}

func writeUnauthenticated(w http.ResponseWriter) {
	writeStatusError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "X-User-ID header is required")
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}
