package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sales-manager-app/sales-manager-api/apperrors"
	"github.com/sales-manager-app/sales-manager-api/dto"
)

var validate = validator.New()

// messages maps struct-field/tag pairs to the messages surfaced to clients.
// Kept as an explicit table so every rule has a deliberate, stable message.
var messages = map[string]string{
	"CreateOrderRequest.CustomerID.required": "customer id is required",
	"CreateOrderRequest.Items.required":      "order must contain at least one item",
	"CreateOrderRequest.Items.min":           "order must contain at least one item",

	"CreateOrderItemRequest.ProductID.required": "product id is required",
	"CreateOrderItemRequest.Quantity.gt":        "item quantity must be greater than zero",

	"UpdateOrderStatusRequest.Status.min": "order status must be a valid value between 0 and 4",
	"UpdateOrderStatusRequest.Status.max": "order status must be a valid value between 0 and 4",

	"CustomerRequest.Name.required":  "customer name is required",
	"CustomerRequest.Name.max":       "customer name must not exceed 150 characters",
	"CustomerRequest.Email.required": "customer email is required",
	"CustomerRequest.Email.email":    "customer email must be a valid email address",
	"CustomerRequest.Email.max":      "customer email must not exceed 100 characters",
	"CustomerRequest.Phone.required": "customer phone is required",
	"CustomerRequest.Phone.max":      "customer phone must not exceed 15 characters",

	"ProductRequest.Name.required": "product name is required",
	"ProductRequest.Name.max":      "product name must not exceed 100 characters",
	"ProductRequest.Quantity.min":  "product quantity must not be negative",

	"LoginRequest.Email.required":    "email is required",
	"LoginRequest.Email.email":       "email must be a valid email address",
	"LoginRequest.Password.required": "password is required",
	"LoginRequest.Password.min":      "password must be at least 8 characters long",
}

// jsonFields maps struct field names to the field names clients see.
var jsonFields = map[string]string{
	"CustomerID": "customer_id",
	"Items":      "items",
	"ProductID":  "product_id",
	"Quantity":   "quantity",
	"Status":     "status",
	"Name":       "name",
	"Email":      "email",
	"Phone":      "phone",
	"Password":   "password",
	"Price":      "price",
}

// collect runs the struct validators on v and translates every violation
// into a FieldError. fieldPrefix, when non-empty, is prepended to field
// names so per-item violations stay addressable (e.g. "items[2].quantity").
func collect(v interface{}, fieldPrefix string) []apperrors.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperrors.FieldError{{Field: fieldPrefix, Message: err.Error()}}
	}

	var fieldErrs []apperrors.FieldError
	for _, fe := range verrs {
		field := fe.Field()
		if jf, ok := jsonFields[field]; ok {
			field = jf
		}
		message, ok := messages[fe.StructNamespace()+"."+fe.Tag()]
		if !ok {
			message = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   fieldPrefix + field,
			Message: message,
		})
	}
	return fieldErrs
}

// asError wraps the collected field errors, if any, into a ValidationError.
func asError(fieldErrs []apperrors.FieldError) error {
	if len(fieldErrs) == 0 {
		return nil
	}
	return &apperrors.ValidationError{Errors: fieldErrs}
}

// ValidateCreateOrder checks the order envelope. Item-level rules are
// checked separately with ValidateOrderItems once the envelope is sound.
func ValidateCreateOrder(req *dto.CreateOrderRequest) error {
	return asError(collect(req, ""))
}

// ValidateOrderItems checks every item of an order request, accumulating
// the violations of all items instead of stopping at the first bad one.
func ValidateOrderItems(items []dto.CreateOrderItemRequest) error {
	var fieldErrs []apperrors.FieldError
	for i := range items {
		prefix := fmt.Sprintf("items[%d].", i)
		fieldErrs = append(fieldErrs, collect(&items[i], prefix)...)
	}
	return asError(fieldErrs)
}

// ValidateUpdateOrderStatus checks the requested target status value.
func ValidateUpdateOrderStatus(req *dto.UpdateOrderStatusRequest) error {
	return asError(collect(req, ""))
}

// ValidateCustomer checks customer registration/update input.
func ValidateCustomer(req *dto.CustomerRequest) error {
	return asError(collect(req, ""))
}

// ValidateProduct checks product input, including the decimal price rules
// the tag validators cannot express.
func ValidateProduct(req *dto.ProductRequest) error {
	fieldErrs := collect(req, "")

	if !req.Price.IsPositive() {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   "price",
			Message: "product price must be greater than zero",
		})
	}
	if !req.Price.Equal(req.Price.Round(2)) {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   "price",
			Message: "product price must have at most 2 decimal places",
		})
	}

	return asError(fieldErrs)
}

// ValidateLogin checks login credentials input.
func ValidateLogin(req *dto.LoginRequest) error {
	return asError(collect(req, ""))
}
