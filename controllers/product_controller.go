package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sales-manager-app/sales-manager-api/config"
	"github.com/sales-manager-app/sales-manager-api/dto"
	"github.com/sales-manager-app/sales-manager-api/repository"
	"github.com/sales-manager-app/sales-manager-api/services"
)

func productService() *services.ProductService {
	return services.NewProductService(repository.NewProductRepository(config.GetDB()))
}

// CreateProduct handles POST /api/v1/products - creates a product
func CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	product, err := productService().Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
	})
}

// UpdateProduct handles PUT /api/v1/products/:id - updates a product
func UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	product, err := productService().Update(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// DeleteProduct handles DELETE /api/v1/products/:id - soft-deletes a product
func DeleteProduct(c *gin.Context) {
	if err := productService().Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// GetProduct handles GET /api/v1/products/:id - fetches one product
func GetProduct(c *gin.Context) {
	product, err := productService().GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// ListProducts handles GET /api/v1/products - lists active products
func ListProducts(c *gin.Context) {
	products, err := productService().GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}
