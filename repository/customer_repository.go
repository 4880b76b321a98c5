package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sales-manager-app/sales-manager-api/models"
)

// CustomerRepository persists customers. Lookups by id eager-load the
// customer's orders.
type CustomerRepository struct {
	Store[models.Customer]
	db *gorm.DB
}

// NewCustomerRepository builds a CustomerRepository over db.
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{Store: NewStore[models.Customer](db), db: db}
}

// GetByID fetches a customer with their orders loaded.
func (r *CustomerRepository) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("Orders").Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// GetByEmail fetches an active customer by email. Soft-deleted customers
// do not count towards email uniqueness.
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("email = ? AND active = ?", email, true).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}
