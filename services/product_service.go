package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/sales-manager-app/sales-manager-api/apperrors"
	"github.com/sales-manager-app/sales-manager-api/dto"
	"github.com/sales-manager-app/sales-manager-api/models"
	"github.com/sales-manager-app/sales-manager-api/repository"
	"github.com/sales-manager-app/sales-manager-api/validation"
)

// ProductService implements product creation, update, soft-delete and reads.
type ProductService struct {
	products repository.Products
}

// NewProductService builds a ProductService over its persistence collaborator.
func NewProductService(products repository.Products) *ProductService {
	return &ProductService{products: products}
}

// Create validates the input and persists a new product.
func (s *ProductService) Create(req *dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validation.ValidateProduct(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Active:   true,
	}

	if err := s.products.Add(product); err != nil {
		return nil, err
	}

	return dto.NewProductResponse(product), nil
}

// Update overwrites a product's name, price and quantity. Existing order
// items keep their snapshot prices regardless.
func (s *ProductService) Update(id string, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewBusinessError("product with id %s does not exist", id)
		}
		return nil, err
	}

	if err := validation.ValidateProduct(req); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Quantity = req.Quantity

	if err := s.products.Update(product); err != nil {
		return nil, err
	}

	return dto.NewProductResponse(product), nil
}

// Delete soft-deletes a product after checking it exists.
func (s *ProductService) Delete(id string) error {
	product, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewBusinessError("product with id %s does not exist", id)
		}
		return err
	}

	return s.products.Delete(product)
}

// GetByID fetches a single product, active or not.
func (s *ProductService) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewBusinessError("product with id %s does not exist", id)
		}
		return nil, err
	}

	return dto.NewProductResponse(product), nil
}

// GetAll lists all active products.
func (s *ProductService) GetAll() ([]*dto.ProductResponse, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, dto.NewProductResponse(&products[i]))
	}
	return responses, nil
}
