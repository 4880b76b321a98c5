package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-manager-app/sales-manager-api/apperrors"
	"github.com/sales-manager-app/sales-manager-api/dto"
	"github.com/sales-manager-app/sales-manager-api/models"
	"github.com/sales-manager-app/sales-manager-api/repository"
	"github.com/sales-manager-app/sales-manager-api/validation"
)

// OrderService implements the order lifecycle: creation with price
// snapshotting and total aggregation, the status state machine,
// cancellation, and paginated listing.
type OrderService struct {
	orders    repository.Orders
	products  repository.Products
	customers repository.Customers
}

// NewOrderService builds an OrderService over its persistence collaborators.
func NewOrderService(orders repository.Orders, products repository.Products, customers repository.Customers) *OrderService {
	return &OrderService{orders: orders, products: products, customers: customers}
}

// Create validates the request, resolves every referenced product, computes
// the total from current product prices, and persists the order with its
// items in one transaction. Each item carries a snapshot of the product
// price read here; later product price changes never touch it.
//
// Nothing is persisted unless every validation and existence check passes.
func (s *OrderService) Create(req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validation.ValidateCreateOrder(req); err != nil {
		return nil, err
	}
	if err := validation.ValidateOrderItems(req.Items); err != nil {
		return nil, err
	}

	if _, err := s.customers.GetByID(req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewBusinessError("customer with id %s does not exist", req.CustomerID)
		}
		return nil, err
	}

	// Read each product exactly once: the same price feeds both the total
	// and the item snapshot, so a concurrent price change cannot split them.
	productsByID := make(map[string]*models.Product, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			var err error
			product, err = s.products.GetByID(item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, apperrors.NewBusinessError("referenced product with id %s was not found", item.ProductID)
				}
				return nil, err
			}
			productsByID[item.ProductID] = product
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &models.Order{
		ID:         uuid.NewString(),
		OrderDate:  time.Now(),
		TotalValue: total,
		Status:     models.StatusPending,
		CustomerID: req.CustomerID,
		Active:     true,
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			Quantity:  item.Quantity,
			UnitPrice: productsByID[item.ProductID].Price,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Active:    true,
		})
	}

	if err := s.orders.AddWithItems(order, items); err != nil {
		return nil, err
	}

	// The write succeeded, so a failing read-back is an internal
	// consistency problem, not a user input error.
	created, err := s.orders.GetByID(order.ID)
	if err != nil {
		return nil, fmt.Errorf("order %s was created but could not be read back: %w", order.ID, err)
	}

	return dto.NewOrderResponse(created), nil
}

// UpdateStatus moves an order to the requested status. The target value is
// checked against the enum before any lookup, and orders in a terminal
// state (Completed, Cancelled) reject every transition.
func (s *OrderService) UpdateStatus(id string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if err := validation.ValidateUpdateOrderStatus(req); err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewBusinessError("order with id %s does not exist", id)
		}
		return nil, err
	}

	switch order.Status {
	case models.StatusCompleted:
		return nil, apperrors.NewBusinessError("cannot update status: order is already completed")
	case models.StatusCancelled:
		return nil, apperrors.NewBusinessError("cannot update status: order is already cancelled")
	}

	order.Status = models.OrderStatus(req.Status)
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}

	return dto.NewOrderResponse(order), nil
}

// Cancel moves an order to Cancelled from any non-terminal state.
func (s *OrderService) Cancel(id string) (*dto.OrderResponse, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewBusinessError("order with id %s does not exist", id)
		}
		return nil, err
	}

	switch order.Status {
	case models.StatusCompleted:
		return nil, apperrors.NewBusinessError("cannot cancel: order is already completed")
	case models.StatusCancelled:
		return nil, apperrors.NewBusinessError("order is already cancelled")
	}

	order.Status = models.StatusCancelled
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}

	return dto.NewOrderResponse(order), nil
}

// List returns the requested page of orders, ordered by order date
// ascending, in the lightweight shape without customer or item expansion.
// pageNumber is 1-based.
func (s *OrderService) List(pageNumber, pageSize int) ([]*dto.OrderResponse, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	orders, err := s.orders.GetPaginatedList(pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, dto.NewOrderSummaryResponse(&orders[i]))
	}
	return responses, nil
}
