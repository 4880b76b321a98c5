package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest is the envelope for creating an order.
type CreateOrderRequest struct {
	CustomerID string                   `json:"customer_id" validate:"required"`
	Items      []CreateOrderItemRequest `json:"items" validate:"required,min=1"`
}

// CreateOrderItemRequest is one requested line of an order.
type CreateOrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// UpdateOrderStatusRequest carries the target status for an order.
// The value is checked against the defined enum before any lookup.
type UpdateOrderStatusRequest struct {
	Status int `json:"status" validate:"min=0,max=4"`
}

// CustomerRequest is the payload for registering or updating a customer.
type CustomerRequest struct {
	Name  string `json:"name" validate:"required,max=150"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,max=15"`
}

// ProductRequest is the payload for creating or updating a product.
// Price precision (at most 2 fractional digits) is checked separately
// since validator tags cannot inspect decimal scale.
type ProductRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"min=0"`
}

// LoginRequest is the payload for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
