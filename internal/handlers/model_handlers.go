package handlers

import (
	"context"

	"github.com/sandgrav/catalog-api/internal/dispatch"
	"github.com/sandgrav/catalog-api/internal/models"
)

// ModelHandler handles machine learning model routes
type ModelHandler struct{}

// NewModelHandler creates a new ModelHandler
func NewModelHandler() *ModelHandler {
	return &ModelHandler{}
}

type modelResponse struct {
	ModelName models.ModelName `json:"model_name"`
	Message   string           `json:"message"`
}

// Read returns the model and its descriptive message. The enum constraint is
// enforced by the dispatcher, so the value here is always a valid member.
func (h *ModelHandler) Read(_ context.Context, req *dispatch.Request) (any, error) {
	name := models.ModelName(req.String("model_name"))
	return modelResponse{ModelName: name, Message: name.Message()}, nil
}
