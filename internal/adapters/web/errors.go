package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"freshtrade/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// badRequest writes a 400 validation error.
func badRequest(w http.ResponseWriter, r *http.Request, message string) {
	writeError(w, r, message, "VALIDATION", http.StatusBadRequest)
}

// serviceError maps a core error onto the right status: allow-list and
// validation failures are the caller's fault, everything else is a 500.
func serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrBlankName),
		errors.Is(err, core.ErrUnknownEntity),
		errors.Is(err, core.ErrUnknownMetric):
		badRequest(w, r, err.Error())
	default:
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}

// decodeBody decodes a JSON request body into dst, reporting a 400 on
// malformed input. Returns false when the response has been written.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		badRequest(w, r, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
