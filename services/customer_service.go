package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sales-manager-app/sales-manager-api/apperrors"
	"github.com/sales-manager-app/sales-manager-api/dto"
	"github.com/sales-manager-app/sales-manager-api/models"
	"github.com/sales-manager-app/sales-manager-api/repository"
	"github.com/sales-manager-app/sales-manager-api/validation"
)

// CustomerService implements customer registration, update, soft-delete and
// reads, enforcing email uniqueness among active customers.
type CustomerService struct {
	customers repository.Customers
}

// NewCustomerService builds a CustomerService over its persistence collaborator.
func NewCustomerService(customers repository.Customers) *CustomerService {
	return &CustomerService{customers: customers}
}

// Register validates the input and creates a new customer, rejecting the
// request if an active customer already holds the same email.
func (s *CustomerService) Register(req *dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validation.ValidateCustomer(req); err != nil {
		return nil, err
	}

	if _, err := s.customers.GetByEmail(req.Email); err == nil {
		return nil, apperrors.NewBusinessError("a customer with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	customer := &models.Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
		Active:    true,
	}

	if err := s.customers.Add(customer); err != nil {
		return nil, err
	}

	return dto.NewCustomerResponse(customer), nil
}

// Update overwrites a customer's fields after checking that the new email
// does not belong to a different customer. Keeping the current email is
// always allowed.
func (s *CustomerService) Update(id string, req *dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewBusinessError("customer with id %s does not exist", id)
		}
		return nil, err
	}

	if err := validation.ValidateCustomer(req); err != nil {
		return nil, err
	}

	if existing, err := s.customers.GetByEmail(req.Email); err == nil {
		if existing.ID != id {
			return nil, apperrors.NewBusinessError("a customer with this email already exists")
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone

	if err := s.customers.Update(customer); err != nil {
		return nil, err
	}

	return dto.NewCustomerResponse(customer), nil
}

// Delete soft-deletes a customer after checking it exists. The row remains
// addressable by id afterwards.
func (s *CustomerService) Delete(id string) error {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewBusinessError("customer with id %s does not exist", id)
		}
		return err
	}

	return s.customers.Delete(customer)
}

// GetByID fetches a single customer, active or not.
func (s *CustomerService) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewBusinessError("customer with id %s does not exist", id)
		}
		return nil, err
	}

	return dto.NewCustomerResponse(customer), nil
}

// GetAll lists all active customers.
func (s *CustomerService) GetAll() ([]*dto.CustomerResponse, error) {
	customers, err := s.customers.GetAll()
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, dto.NewCustomerResponse(&customers[i]))
	}
	return responses, nil
}
