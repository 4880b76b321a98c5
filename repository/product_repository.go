package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sales-manager-app/sales-manager-api/models"
)

// ProductRepository persists products.
type ProductRepository struct {
	Store[models.Product]
}

// NewProductRepository builds a ProductRepository over db.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{Store: NewStore[models.Product](db)}
}

// UserRepository persists API users.
type UserRepository struct {
	Store[models.User]
	db *gorm.DB
}

// NewUserRepository builds a UserRepository over db.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Store: NewStore[models.User](db), db: db}
}

// GetByEmail fetches an active user by email, for login.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ? AND active = ?", email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
