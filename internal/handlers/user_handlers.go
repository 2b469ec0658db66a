package handlers

import (
	"context"

	"github.com/sandgrav/catalog-api/internal/dispatch"
)

// UserHandler handles user-related routes
type UserHandler struct{}

// NewUserHandler creates a new UserHandler
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type userIDResponse struct {
	UserID string `json:"user_id"`
}

// ReadMe returns the current user. The static /users/me segment takes
// precedence over the parameterized /users/{user_id} route.
func (h *UserHandler) ReadMe(_ context.Context, _ *dispatch.Request) (any, error) {
	return userIDResponse{UserID: "the current user"}, nil
}

// Read returns the user addressed by the path parameter.
func (h *UserHandler) Read(_ context.Context, req *dispatch.Request) (any, error) {
	return userIDResponse{UserID: req.String("user_id")}, nil
}
