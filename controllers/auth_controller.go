package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sales-manager-app/sales-manager-api/config"
	"github.com/sales-manager-app/sales-manager-api/dto"
	"github.com/sales-manager-app/sales-manager-api/repository"
	"github.com/sales-manager-app/sales-manager-api/services"
)

// Login handles POST /api/v1/auth/login - authenticates a user and returns
// an access token
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	cfg := config.GetConfig()
	authService := services.NewAuthService(repository.NewUserRepository(config.GetDB()), cfg)

	result, err := authService.Login(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
