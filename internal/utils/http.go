package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestIDHeader carries the client-generated request identifier.
const RequestIDHeader = "X-Request-ID"

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes an error body of the form {"detail": detail}. detail is
// either a message string or a list of validation errors.
func WriteDetail(w http.ResponseWriter, detail any, statusCode int) (int, error) {
	return WriteJSON(w, map[string]any{"detail": detail}, statusCode)
}
