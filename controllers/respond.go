package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sales-manager-app/sales-manager-api/apperrors"
)

// respondServiceError translates a domain error into the transport envelope:
// validation errors map to 422 with the full field list, business-rule
// errors to 400, and anything else to a generic 500 that leaks nothing.
func respondServiceError(c *gin.Context, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Validation errors found",
				"details": ve.Errors,
			},
		})
		return
	}

	if be, ok := apperrors.AsBusiness(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "BUSINESS_RULE_ERROR",
				"message": be.Message,
			},
		})
		return
	}

	log.Printf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "An unexpected error occurred",
		},
	})
}

// respondInvalidBody reports a request body that could not be parsed.
func respondInvalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_REQUEST",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}
