package handlers

import (
	"context"

	"github.com/sandgrav/catalog-api/internal/dispatch"
	"github.com/sandgrav/catalog-api/internal/models"
)

// ItemHandler handles item-related routes
type ItemHandler struct{}

// NewItemHandler creates a new ItemHandler
func NewItemHandler() *ItemHandler {
	return &ItemHandler{}
}

type itemIDResponse struct {
	ItemID int64 `json:"item_id"`
}

type itemSummaryResponse struct {
	ItemID      string  `json:"item_id"`
	Q           *string `json:"q,omitempty"`
	Description *string `json:"description,omitempty"`
}

type itemSearchResponse struct {
	Items []models.ListedItem `json:"items"`
	Q     *string             `json:"q,omitempty"`
}

type singleQueryResponse struct {
	Q *string `json:"q"`
}

type multiQueryResponse struct {
	Q []string `json:"q"`
}

type boundedItemResponse struct {
	ItemID int64   `json:"item_id"`
	Size   float64 `json:"size"`
}

type createdItemResponse struct {
	models.Item
	PriceWithTax *float64 `json:"price_with_tax,omitempty"`
}

type replacedItemResponse struct {
	ItemID int64        `json:"item_id"`
	Item   *models.Item `json:"item"`
}

type adsResponse struct {
	AdsID *string `json:"ads_id"`
}

// Read returns the identifier of the requested item.
func (h *ItemHandler) Read(_ context.Context, req *dispatch.Request) (any, error) {
	return itemIDResponse{ItemID: req.Int("item_id")}, nil
}

// List returns a window of the sample item list controlled by the skip and
// limit query parameters.
func (h *ItemHandler) List(_ context.Context, req *dispatch.Request) (any, error) {
	skip := int(req.Int("skip"))
	limit := int(req.Int("limit"))

	items := models.SampleItems
	if skip >= len(items) {
		return []models.ListedItem{}, nil
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

// Summarize returns an item with an optional query echo and a long
// description unless the short flag is set.
func (h *ItemHandler) Summarize(_ context.Context, req *dispatch.Request) (any, error) {
	resp := itemSummaryResponse{ItemID: req.String("item_id")}
	if req.Has("q") {
		q := req.String("q")
		resp.Q = &q
	}
	if !req.Bool("short") {
		description := "This is an amazing item that has a long description"
		resp.Description = &description
	}
	return resp, nil
}

// Search returns the sample item list, echoing the constrained query string
// when one was supplied.
func (h *ItemHandler) Search(_ context.Context, req *dispatch.Request) (any, error) {
	resp := itemSearchResponse{Items: models.SampleItems}
	if req.Has("q") {
		q := req.String("q")
		resp.Q = &q
	}
	return resp, nil
}

// SearchAlias echoes a query parameter whose wire name differs from its
// internal name.
func (h *ItemHandler) SearchAlias(_ context.Context, req *dispatch.Request) (any, error) {
	resp := singleQueryResponse{}
	if req.Has("q") {
		q := req.String("q")
		resp.Q = &q
	}
	return resp, nil
}

// MultiQuery echoes every repeated occurrence of the q query parameter.
// An omitted parameter yields null rather than an empty list.
func (h *ItemHandler) MultiQuery(_ context.Context, req *dispatch.Request) (any, error) {
	return multiQueryResponse{Q: req.Strings("q")}, nil
}

// ReadBounded returns an item addressed by a range-checked identifier and a
// range-checked size query parameter.
func (h *ItemHandler) ReadBounded(_ context.Context, req *dispatch.Request) (any, error) {
	return boundedItemResponse{
		ItemID: req.Int("item_id"),
		Size:   req.Float("size"),
	}, nil
}

// Create echoes the posted item, adding the tax-inclusive price when a tax
// was supplied.
func (h *ItemHandler) Create(_ context.Context, req *dispatch.Request) (any, error) {
	item := req.Value("item").(*models.Item)
	resp := createdItemResponse{Item: *item}
	if total, ok := item.PriceWithTax(); ok {
		resp.PriceWithTax = &total
	}
	return resp, nil
}

// CreateDetailed echoes the posted item including its tag set and nested
// image.
func (h *ItemHandler) CreateDetailed(_ context.Context, req *dispatch.Request) (any, error) {
	return req.Value("item").(*models.DetailedItem), nil
}

// Replace returns the path identifier together with the embedded item body.
func (h *ItemHandler) Replace(_ context.Context, req *dispatch.Request) (any, error) {
	return replacedItemResponse{
		ItemID: req.Int("item_id"),
		Item:   req.Value("item").(*models.Item),
	}, nil
}

// ReadAds echoes the optional advertising cookie, null when not set.
func (h *ItemHandler) ReadAds(_ context.Context, req *dispatch.Request) (any, error) {
	resp := adsResponse{}
	if req.Has("ads_id") {
		adsID := req.String("ads_id")
		resp.AdsID = &adsID
	}
	return resp, nil
}
