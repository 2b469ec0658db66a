package handlers

import (
	"context"

	"github.com/sandgrav/catalog-api/internal/dispatch"
	"github.com/sandgrav/catalog-api/internal/models"
)

// OfferHandler handles offer, image, and index-weight routes
type OfferHandler struct{}

// NewOfferHandler creates a new OfferHandler
func NewOfferHandler() *OfferHandler {
	return &OfferHandler{}
}

// Create echoes the posted offer with its nested item list.
func (h *OfferHandler) Create(_ context.Context, req *dispatch.Request) (any, error) {
	return req.Value("offer").(*models.Offer), nil
}

// CreateImages echoes a posted list of images.
func (h *OfferHandler) CreateImages(_ context.Context, req *dispatch.Request) (any, error) {
	return req.Value("images").(*[]models.Image), nil
}

// CreateIndexWeights echoes a posted integer-keyed weight map.
func (h *OfferHandler) CreateIndexWeights(_ context.Context, req *dispatch.Request) (any, error) {
	return req.Value("weights").(map[int64]float64), nil
}
