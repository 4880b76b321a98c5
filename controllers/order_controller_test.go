package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sales-manager-app/sales-manager-api/config"
	"github.com/sales-manager-app/sales-manager-api/models"
)

func setupControllerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *models.Customer {
	customer := &models.Customer{
		ID:     uuid.NewString(),
		Name:   "Test Customer",
		Email:  email,
		Phone:  "11999990000",
		Active: true,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, quantity int) *models.Product {
	product := &models.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
		Active:   true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderHandler(t *testing.T) {
	db := setupControllerTestDB(t)

	customer := seedCustomer(t, db, "customer@example.com")
	product := seedProduct(t, db, "Gel Polish", "9.99", 50)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "successfully create order",
			requestBody: map[string]interface{}{
				"customer_id": customer.ID,
				"items": []map[string]interface{}{
					{"product_id": product.ID, "quantity": 3},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				assert.True(t, response["success"].(bool))
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "29.97", data["total_value"])
				assert.Equal(t, "Pending", data["status"])
				assert.Equal(t, customer.ID, data["customer_id"])

				customerData := data["customer"].(map[string]interface{})
				assert.Equal(t, customer.Email, customerData["email"])

				items := data["items"].([]interface{})
				require.Len(t, items, 1)
				item := items[0].(map[string]interface{})
				assert.Equal(t, float64(3), item["quantity"])
				assert.Equal(t, "9.99", item["unit_price"])
				assert.Equal(t, "Gel Polish", item["product_name"])
			},
		},
		{
			name: "fail with empty item list",
			requestBody: map[string]interface{}{
				"customer_id": customer.ID,
				"items":       []map[string]interface{}{},
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "fail with zero quantity",
			requestBody: map[string]interface{}{
				"customer_id": customer.ID,
				"items": []map[string]interface{}{
					{"product_id": product.ID, "quantity": 0},
				},
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "fail with missing customer id",
			requestBody: map[string]interface{}{
				"items": []map[string]interface{}{
					{"product_id": product.ID, "quantity": 1},
				},
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "fail with unknown product",
			requestBody: map[string]interface{}{
				"customer_id": customer.ID,
				"items": []map[string]interface{}{
					{"product_id": uuid.NewString(), "quantity": 1},
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "BUSINESS_RULE_ERROR",
		},
		{
			name: "fail with unknown customer",
			requestBody: map[string]interface{}{
				"customer_id": uuid.NewString(),
				"items": []map[string]interface{}{
					{"product_id": product.ID, "quantity": 1},
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "BUSINESS_RULE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.POST("/orders", CreateOrder)

			w := doJSON(router, http.MethodPost, "/orders", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			if tt.expectedError != "" {
				assert.False(t, response["success"].(bool))
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
			}

			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	db := setupControllerTestDB(t)

	customer := seedCustomer(t, db, "status@example.com")
	product := seedProduct(t, db, "Kit", "10.00", 5)

	router := setupTestRouter()
	router.POST("/orders", CreateOrder)
	router.PUT("/orders/:id/status", UpdateOrderStatus)
	router.DELETE("/orders/:id", CancelOrder)

	// Create an order first
	w := doJSON(router, http.MethodPost, "/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items":       []map[string]interface{}{{"product_id": product.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	orderID := created["data"].(map[string]interface{})["id"].(string)

	// Approve it
	w = doJSON(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": int(models.StatusApproved)})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Approved", response["data"].(map[string]interface{})["status"])

	// An out-of-range status is a validation error even for a missing order
	w = doJSON(router, http.MethodPut, "/orders/"+uuid.NewString()+"/status",
		map[string]interface{}{"status": 7})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Cancel, then cancelling again is a business error
	w = doJSON(router, http.MethodDelete, "/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/orders/"+orderID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "BUSINESS_RULE_ERROR", errorData["code"])
	assert.Equal(t, "order is already cancelled", errorData["message"])

	// And status updates on the cancelled order are rejected too
	w = doJSON(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": int(models.StatusApproved)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrdersHandler(t *testing.T) {
	db := setupControllerTestDB(t)

	customer := seedCustomer(t, db, "list@example.com")
	product := seedProduct(t, db, "Kit", "1.00", 100)

	router := setupTestRouter()
	router.POST("/orders", CreateOrder)
	router.GET("/orders", ListOrders)

	for i := 0; i < 7; i++ {
		w := doJSON(router, http.MethodPost, "/orders", map[string]interface{}{
			"customer_id": customer.ID,
			"items":       []map[string]interface{}{{"product_id": product.ID, "quantity": i + 1}},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	tests := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{name: "default pagination", query: "", expectedCount: 7},
		{name: "first page of three", query: "?pageNumber=1&pageSize=3", expectedCount: 3},
		{name: "last short page", query: "?pageNumber=3&pageSize=3", expectedCount: 1},
		{name: "beyond the data", query: "?pageNumber=5&pageSize=3", expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/orders"+tt.query, nil)
			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.True(t, response["success"].(bool))

			data := response["data"].([]interface{})
			assert.Equal(t, tt.expectedCount, len(data))
		})
	}

	// Listing keeps order-date ascending order: totals grow 1.00, 2.00, ...
	w := doJSON(router, http.MethodGet, "/orders?pageNumber=2&pageSize=2", nil)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	require.Len(t, data, 2)
	for i, entry := range data {
		order := entry.(map[string]interface{})
		assert.Equal(t, fmt.Sprintf("%d", i+3), order["total_value"])
		_, hasCustomer := order["customer"]
		assert.False(t, hasCustomer, "listing must use the lightweight shape")
	}
}
