package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sales-manager-app/sales-manager-api/config"
	"github.com/sales-manager-app/sales-manager-api/dto"
	"github.com/sales-manager-app/sales-manager-api/repository"
	"github.com/sales-manager-app/sales-manager-api/services"
)

func customerService() *services.CustomerService {
	return services.NewCustomerService(repository.NewCustomerRepository(config.GetDB()))
}

// RegisterCustomer handles POST /api/v1/customers - registers a customer
func RegisterCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	customer, err := customerService().Register(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    customer,
	})
}

// UpdateCustomer handles PUT /api/v1/customers/:id - updates a customer
func UpdateCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	customer, err := customerService().Update(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// DeleteCustomer handles DELETE /api/v1/customers/:id - soft-deletes a customer
func DeleteCustomer(c *gin.Context) {
	if err := customerService().Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// GetCustomer handles GET /api/v1/customers/:id - fetches one customer
func GetCustomer(c *gin.Context) {
	customer, err := customerService().GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// ListCustomers handles GET /api/v1/customers - lists active customers
func ListCustomers(c *gin.Context) {
	customers, err := customerService().GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
	})
}
