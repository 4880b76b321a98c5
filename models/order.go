package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer's request for a set of products, tracked
// through the status lifecycle. TotalValue is computed once at creation
// from the item snapshots and never recomputed afterwards.
type Order struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	OrderDate  time.Time       `gorm:"not null;index" json:"order_date"`
	TotalValue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_value"`
	Status     OrderStatus     `gorm:"not null;default:0" json:"status"`
	CustomerID string          `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Active     bool            `gorm:"not null;default:true" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line entry binding a product, a quantity and a unit price
// to an order. UnitPrice is the product price at order-creation time; later
// product price changes do not touch it.
type OrderItem struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	OrderID   string          `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID string          `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Active    bool            `gorm:"not null;default:true" json:"-"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
