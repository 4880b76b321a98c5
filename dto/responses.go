package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-manager-app/sales-manager-api/models"
)

// CustomerResponse is the externally visible customer shape.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductResponse is the externally visible product shape.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderItemResponse is one order line with its resolved product name.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ProductName string          `json:"product_name"`
}

// OrderResponse is the fully assembled order shape: nested customer summary
// and expanded item list. Listing endpoints use the lightweight variant.
type OrderResponse struct {
	ID         string              `json:"id"`
	OrderDate  time.Time           `json:"order_date"`
	TotalValue decimal.Decimal     `json:"total_value"`
	Status     string              `json:"status"`
	CustomerID string              `json:"customer_id"`
	Customer   *CustomerResponse   `json:"customer,omitempty"`
	Items      []OrderItemResponse `json:"items,omitempty"`
}

// LoginResponse is the payload returned on a successful login.
type LoginResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

// NewCustomerResponse maps a persisted customer to its response shape.
func NewCustomerResponse(c *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// NewProductResponse maps a persisted product to its response shape.
func NewProductResponse(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

// NewOrderResponse maps a persisted order, with its customer and item->product
// joins loaded, to the fully assembled response shape.
func NewOrderResponse(o *models.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:         o.ID,
		OrderDate:  o.OrderDate,
		TotalValue: o.TotalValue,
		Status:     o.Status.String(),
		CustomerID: o.CustomerID,
	}

	if o.Customer != nil {
		resp.Customer = &CustomerResponse{
			ID:        o.Customer.ID,
			Name:      o.Customer.Name,
			Email:     o.Customer.Email,
			Phone:     o.Customer.Phone,
			CreatedAt: o.Customer.CreatedAt,
		}
	}

	for _, item := range o.Items {
		productName := ""
		if item.Product != nil {
			productName = item.Product.Name
		}
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ProductName: productName,
		})
	}

	return resp
}

// NewOrderSummaryResponse maps an order to the lightweight listing shape,
// without expanding the customer or the item list.
func NewOrderSummaryResponse(o *models.Order) *OrderResponse {
	return &OrderResponse{
		ID:         o.ID,
		OrderDate:  o.OrderDate,
		TotalValue: o.TotalValue,
		Status:     o.Status.String(),
		CustomerID: o.CustomerID,
	}
}
