// Package utils provides utility functions and helpers for the application.
// This file implements the response writers used by every endpoint. The wire
// contract is deliberately small:
//
//   - Successful responses are the handler's return value marshalled as-is.
//   - Routing failures return {"detail": "..."} with a 404 or 405 status.
//   - Validation failures return a 422 with a JSON array of error entries,
//     each carrying the failing location, a human-readable message, and a
//     machine-readable type.
//
// Keeping all serialization in one place ensures clients can parse responses
// predictably regardless of which endpoint produced them.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sandgrav/catalog-api/internal/constants"
)

// Detail is the body shape for routing-level failures such as 404 and 405.
type Detail struct {
	Detail string `json:"detail"`
}

// JSON sends a JSON response with the given status code and data.
// The data is marshalled directly with no envelope, so struct field
// declaration order is preserved in the output.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	jsonData, err := json.Marshal(data)
	if err != nil {
		// If marshaling fails, log the error and send a simple error response
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		if _, err := w.Write([]byte(`{"detail":"Failed to generate response"}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		// Log write errors but don't try to recover
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// NotFound sends a 404 Not Found response.
// This is used when no registered route matches the request path.
func NotFound(w http.ResponseWriter) {
	JSON(w, constants.StatusNotFound, Detail{Detail: constants.MsgNotFound})
}

// MethodNotAllowed sends a 405 Method Not Allowed response.
// This is used when a route matches the path but not the request method.
func MethodNotAllowed(w http.ResponseWriter) {
	JSON(w, constants.StatusMethodNotAllowed, Detail{Detail: constants.MsgMethodNotAllowed})
}

// InternalServerError sends a 500 Internal Server Error response.
//
// Parameters:
//   - w: The HTTP response writer
//   - err: The error that occurred (logged but not exposed to the client)
func InternalServerError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	JSON(w, constants.StatusInternalServerError, Detail{Detail: constants.MsgInternalServerError})
}

// ValidationFailed sends a 422 Unprocessable Entity response carrying every
// collected validation issue. The body is a bare JSON array; clients inspect
// individual entries to find the failing parameter.
func ValidationFailed(w http.ResponseWriter, issues []ValidationIssue) {
	if issues == nil {
		issues = []ValidationIssue{}
	}
	JSON(w, constants.StatusUnprocessableEntity, issues)
}
