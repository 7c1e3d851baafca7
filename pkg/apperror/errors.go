package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid username or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// Engine errors. Every refused operation leaves owned state unchanged, so all
// of these are safe to surface directly to the caller.
var (
	ErrOutOfStock          = &AppError{Code: http.StatusConflict, Message: "Item is out of stock"}
	ErrExceedsStock        = &AppError{Code: http.StatusConflict, Message: "Quantity exceeds available stock"}
	ErrEmptyCart           = &AppError{Code: http.StatusBadRequest, Message: "Cart is empty"}
	ErrInsufficientPayment = &AppError{Code: http.StatusBadRequest, Message: "Tendered amount is less than the total"}
	ErrDuplicateItem       = &AppError{Code: http.StatusConflict, Message: "Item already exists"}
	ErrUnknownSale         = &AppError{Code: http.StatusNotFound, Message: "Sale not found"}
	ErrAlreadyVoided       = &AppError{Code: http.StatusConflict, Message: "Sale is already voided"}
	ErrInvalidBackup       = &AppError{Code: http.StatusBadRequest, Message: "Backup document is not valid"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewUnknownItemError reports a catalog lookup miss by name
func NewUnknownItemError(name string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: "Unknown item: " + name,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
