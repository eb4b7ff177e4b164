package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Machine-readable error codes carried in error envelopes.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// ErrorBody is the error half of a response envelope.
type ErrorBody struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Envelope is the uniform JSON body of every API response.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// Success builds a successful envelope.
func Success(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Error builds an error envelope.
func Error(code, message string, details map[string]string) Envelope {
	return Envelope{Success: false, Error: &ErrorBody{
		Message: message,
		Code:    code,
		Details: details,
	}}
}

// WriteSuccess writes a successful envelope with the given status code.
func WriteSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Success(data, message))
}

// WriteError writes an error envelope with the given status code.
func WriteError(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	log.Printf("error response: %d - %s", status, message)
	writeJSON(w, status, Error(code, message, details))
}

// WriteValidationError writes a 400 validation failure.
func WriteValidationError(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, CodeValidationError, message, details)
}

// WriteNotFound writes a 404 for a missing resource.
func WriteNotFound(w http.ResponseWriter, resource, id string) {
	WriteError(w, http.StatusNotFound, CodeNotFound,
		fmt.Sprintf("%s not found: %s", resource, id), nil)
}

// WriteInternalError writes a 500 without leaking error details to clients.
func WriteInternalError(w http.ResponseWriter, err error) {
	log.Printf("internal server error: %v", err)
	WriteError(w, http.StatusInternalServerError, CodeInternalError,
		"An internal server error occurred", nil)
}

func writeJSON(w http.ResponseWriter, status int, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type,X-Api-Key")
	w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
