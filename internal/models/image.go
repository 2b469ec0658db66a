package models

// Image is a nested model describing an external image reference.
type Image struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required"`
}
