package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAdminNotFound is returned when an admin record is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrAdminExists is returned when username or email is already taken.
	ErrAdminExists = errors.New("admin with this username or email already exists")
	// ErrCannotDeleteSelf is returned when an admin tries to delete its own account.
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductExists is returned when a product with the same name already exists.
	ErrProductExists = errors.New("product with this name already exists")
	// ErrProductHasOrders is returned when deleting a product that was ordered.
	ErrProductHasOrders = errors.New("cannot delete product that has been ordered, mark it as discontinued instead")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryExists is returned when a category with the same name already exists.
	ErrCategoryExists = errors.New("category with this name already exists")
	// ErrCategoryHasProducts is returned when deleting a non-empty category.
	ErrCategoryHasProducts = errors.New("cannot delete category that has products")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAdminNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ADMIN_NOT_FOUND")
	case errors.Is(err, ErrAdminExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ADMIN_ALREADY_EXISTS")
	case errors.Is(err, ErrCannotDeleteSelf):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CANNOT_DELETE_SELF")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrProductExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PRODUCT_ALREADY_EXISTS")
	case errors.Is(err, ErrProductHasOrders):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PRODUCT_HAS_ORDERS")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrCategoryExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_ALREADY_EXISTS")
	case errors.Is(err, ErrCategoryHasProducts):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_HAS_PRODUCTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
