// Package handlers contains the endpoint handlers for the catalog API.
// Handlers receive already-validated, typed parameter values from the
// dispatch layer and return the value to serialize as the response body.
// They never perform validation themselves and never produce domain errors;
// all data served here is static in-memory sample data read without mutation.
package handlers

import (
	"context"

	"github.com/sandgrav/catalog-api/internal/dispatch"
)

// CoreHandler handles the root endpoint.
type CoreHandler struct{}

// NewCoreHandler creates a new CoreHandler
func NewCoreHandler() *CoreHandler {
	return &CoreHandler{}
}

type messageResponse struct {
	Message string `json:"message"`
}

// Root returns the welcome message.
func (h *CoreHandler) Root(_ context.Context, _ *dispatch.Request) (any, error) {
	return messageResponse{Message: "Hello World"}, nil
}
