// Package apijson holds the small JSON response helpers shared by the API
// handlers and middleware.
package apijson

import (
	"encoding/json"
	"net/http"
)

// Write encodes v as the JSON response body with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body with a human-readable message.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}
