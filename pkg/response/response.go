// Package response writes the JSON envelope used by every bakery API endpoint:
//
//	{"success": true,  "message": "...", "count": 3, "data": ...}
//	{"success": false, "error": "..."}
//
// The success flag is part of the wire contract — clients branch on it in
// addition to the HTTP status code.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response body shape shared by all endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// SuccessMessage sends a 200 with a message and data.
func SuccessMessage(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// List sends a 200 with data plus the record count.
func List(w http.ResponseWriter, count int, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

// Created sends a 201 with a message and the stored record.
func Created(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Error sends an error envelope with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Error: message})
}

// BadRequest sends a 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// ValidationError sends a 400 with a summary line plus field-level detail.
func ValidationError(w http.ResponseWriter, message string, errs map[string]string) {
	write(w, http.StatusBadRequest, Envelope{Success: false, Error: message, Errors: errs})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// ServerError sends a 500 with a generic message; internal detail never leaks.
func ServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error")
}
