package models

// Offer bundles a list of items under a single price. The item list is
// required but may be empty; every supplied element is validated recursively.
type Offer struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Items       []Item   `json:"items" validate:"required,dive"`
}
