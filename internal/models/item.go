// Package models provides the request and response record types for the
// catalog API. Models are plain structs with json tags for the wire
// representation and validate tags for body constraints; field declaration
// order is the serialization order. None of the models carry per-request
// mutable state: each request decodes fresh instances.
package models

// Item represents a catalog item as accepted and returned by the item
// endpoints. Description and Tax are optional and serialize as null when
// absent; Price is a pointer so that a missing price is distinguishable from
// an explicit zero.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax"`
}

// PriceWithTax returns the total price including tax, and whether a tax was
// supplied at all.
func (i *Item) PriceWithTax() (float64, bool) {
	if i.Price == nil || i.Tax == nil {
		return 0, false
	}
	return *i.Price + *i.Tax, true
}

// DetailedItem extends Item with a tag set and an optional nested image.
// Tags behave as a set: duplicate entries are a validation error.
type DetailedItem struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax"`
	Tags        []string `json:"tags" validate:"unique"`
	Image       *Image   `json:"image"`
}

// ListedItem is the summary record returned by the item listing endpoint.
type ListedItem struct {
	ItemName string `json:"item_name"`
}

// SampleItems is the static item list served by the listing endpoints.
// It is read-only sample data; no request mutates it.
var SampleItems = []ListedItem{
	{ItemName: "Foo"},
	{ItemName: "Bar"},
	{ItemName: "Baz"},
}
