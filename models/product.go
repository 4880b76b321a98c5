package models

import "github.com/shopspring/decimal"

// Product represents a sellable product. Order creation never mutates it:
// stock quantity is informational and unit prices are snapshotted onto order
// items instead of being referenced live.
type Product struct {
	ID       string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string          `gorm:"size:100;not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity int             `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Active   bool            `gorm:"not null;default:true" json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
