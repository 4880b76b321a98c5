package repository

import "github.com/sales-manager-app/sales-manager-api/models"

// Customers is the persistence collaborator for customer records.
type Customers interface {
	GetByID(id string) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Add(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(customer *models.Customer) error
	GetAll() ([]models.Customer, error)
}

// Products is the persistence collaborator for product records.
type Products interface {
	GetByID(id string) (*models.Product, error)
	Add(product *models.Product) error
	Update(product *models.Product) error
	Delete(product *models.Product) error
	GetAll() ([]models.Product, error)
}

// Orders is the persistence collaborator for orders and their items.
type Orders interface {
	GetByID(id string) (*models.Order, error)
	AddWithItems(order *models.Order, items []models.OrderItem) error
	Update(order *models.Order) error
	GetPaginatedList(pageNumber, pageSize int) ([]models.Order, error)
}

// Users is the persistence collaborator for API users.
type Users interface {
	GetByEmail(email string) (*models.User, error)
	Add(user *models.User) error
}
