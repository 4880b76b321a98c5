package models

import "time"

// Customer represents a registered customer in the system
type Customer struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;index" json:"email"`
	Phone     string    `gorm:"size:15;not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `gorm:"not null;default:true" json:"-"`
	Orders    []Order   `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
