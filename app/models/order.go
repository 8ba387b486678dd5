package models

// OrderItem is a single line on an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a placed customer order. The total is always recomputed on the
// server from the items; whatever the client sends for it is ignored.
type Order struct {
	ID           string      `json:"id"`
	Items        []OrderItem `json:"items"`
	CustomerName string      `json:"customerName"`
	Address      string      `json:"address"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt,omitempty"`
}

// OrderInput is the request body for placing an order.
type OrderInput struct {
	Items        []OrderItem `json:"items" validate:"required"`
	CustomerName string      `json:"customerName"`
	Address      string      `json:"address" validate:"required"`
	Phone        string      `json:"phone" validate:"required"`
	Email        string      `json:"email" validate:"nullable,email"`
	Notes        string      `json:"notes"`
}
