package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sales-manager-app/sales-manager-api/models"
)

// OrderRepository persists orders and their items. Lookups by id eager-load
// the owning customer and every item with its product, since the assembled
// response needs all of them.
type OrderRepository struct {
	Store[models.Order]
	db *gorm.DB
}

// NewOrderRepository builds an OrderRepository over db.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{Store: NewStore[models.Order](db), db: db}
}

// GetByID fetches an order with its customer and item->product joins loaded.
func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Customer").Preload("Items.Product").
		Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// AddWithItems persists an order and its items in a single transaction, so
// a partial failure can never leave a visible order with no items behind.
func (r *OrderRepository) AddWithItems(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update persists changes to the order row itself. Associations loaded on
// the struct (customer, items) are never written back here; items are
// immutable after creation.
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Omit(clause.Associations).Save(order).Error
}

// GetPaginatedList returns the requested page of active orders, ordered by
// order date ascending. pageNumber is 1-based.
func (r *OrderRepository) GetPaginatedList(pageNumber, pageSize int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("active = ?", true).
		Order("order_date ASC").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
