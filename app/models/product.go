package models

// Product is a catalogue item. Timestamps are stored as RFC3339 strings so
// they round-trip through the collection files unchanged.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// ProductInput is the request body for creating a product.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image"`
	Available   *bool    `json:"available"`
}
