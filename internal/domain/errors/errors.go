package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so catalogue
// entries still match after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// Cart and wishlist errors
	ErrCartLineNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_LINE_NOT_FOUND",
		"Item is not in the cart",
		"",
	)

	ErrNotWishlisted = NewBaseError(
		http.StatusNotFound,
		"NOT_WISHLISTED",
		"Item is not in the wishlist",
		"",
	)

	// Checkout-related errors
	ErrCheckoutNotStarted = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_NOT_STARTED",
		"No checkout in progress",
		"",
	)

	ErrCheckoutStageLocked = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_STAGE_LOCKED",
		"This checkout step is not available yet",
		"",
	)

	ErrCheckoutLineNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKOUT_LINE_NOT_FOUND",
		"Item is not part of this checkout",
		"",
	)

	ErrOrderInFlight = NewBaseError(
		http.StatusConflict,
		"ORDER_IN_FLIGHT",
		"An order for this checkout is already being placed",
		"",
	)

	ErrSnapshotMissing = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_SNAPSHOT_MISSING",
		"Order summary not found, please review your order again",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"No pending payment for this gateway order",
		"",
	)

	// Session-related errors
	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REQUIRED",
		"Please log in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please log in again",
		"",
	)

	ErrSessionTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"SESSION_TOKEN_INVALID",
		"Invalid access token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// Validation failures raised before any network call.
var (
	ErrAddressRequired     = NewValidationError("ADDRESS_REQUIRED", "Please select an address to continue")
	ErrEmptyWorkingSet     = NewValidationError("EMPTY_CHECKOUT", "There are no items to check out")
	ErrInvalidPayment      = NewValidationError("INVALID_PAYMENT_METHOD", "Please choose a payment method")
	ErrInvalidQuantityStep = NewValidationError("INVALID_QUANTITY_DELTA", "Quantity change must not be zero")
)

// ValidationError blocks a transition. No collaborator is contacted.
type ValidationError struct {
	code    string
	message string
	details string
}

// NewValidationError creates a validation error with a business code.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{code: code, message: message}
}

// WithDetails returns a copy carrying details.
func (e *ValidationError) WithDetails(details string) *ValidationError {
	return &ValidationError{code: e.code, message: e.message, details: details}
}

func (e *ValidationError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches validation errors with the same code.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)

	return ok && t.code == e.code
}

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return e.code }
func (e *ValidationError) Message() string   { return e.message }
func (e *ValidationError) Details() string   { return e.details }

// NetworkError is any collaborator call failure. State is left unchanged and
// the caller may retry by re-invoking the operation.
type NetworkError struct {
	Op         string // Collaborator operation, e.g. "orders.create".
	StatusCode int    // Remote HTTP status, 0 when no response was received.
	Body       string // Truncated remote response body, if any.
	Err        error
}

// NewNetworkError wraps err as a collaborator failure.
func NewNetworkError(op string, statusCode int, err error) *NetworkError {
	return &NetworkError{Op: op, StatusCode: statusCode, Err: err}
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: remote returned %d: %v", e.Op, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPCode maps remote auth failures through and everything else to 502.
func (e *NetworkError) HTTPCode() int {
	if e.StatusCode == http.StatusUnauthorized {
		return http.StatusUnauthorized
	}

	return http.StatusBadGateway
}

func (e *NetworkError) ErrorCode() string { return "NETWORK_ERROR" }

func (e *NetworkError) Message() string {
	return "Something went wrong talking to the shop, please try again"
}

func (e *NetworkError) Details() string {
	if e.Body != "" {
		return e.Body
	}

	return e.Error()
}

// PaymentFailedError is a gateway-reported failure. No order was submitted.
type PaymentFailedError struct {
	IntentID string
	Reason   string
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment for gateway order %s failed: %s", e.IntentID, e.Reason)
}

func (e *PaymentFailedError) HTTPCode() int     { return http.StatusPaymentRequired }
func (e *PaymentFailedError) ErrorCode() string { return "PAYMENT_FAILED" }
func (e *PaymentFailedError) Message() string   { return "Payment failed" }
func (e *PaymentFailedError) Details() string   { return e.Reason }

// PartialSuccessError means the gateway captured the payment but the order
// could not be recorded. It is terminal and must be reconciled by support.
type PartialSuccessError struct {
	IntentID  string
	PaymentID string
	Err       error
}

func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("payment %s captured for gateway order %s but order not recorded: %v",
		e.PaymentID, e.IntentID, e.Err)
}

func (e *PartialSuccessError) Unwrap() error { return e.Err }

func (e *PartialSuccessError) HTTPCode() int     { return http.StatusConflict }
func (e *PartialSuccessError) ErrorCode() string { return "PAYMENT_CAPTURED_ORDER_NOT_RECORDED" }

func (e *PartialSuccessError) Message() string {
	return "Payment succeeded, but failed to save order. Contact support"
}

func (e *PartialSuccessError) Details() string {
	return fmt.Sprintf("gateway_order_id=%s payment_id=%s", e.IntentID, e.PaymentID)
}

// StoreError represents a durable store failure, implementing the AppError interface
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a durable-store related error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "durable store operation failed").Error()
}

func (e *StoreError) Unwrap() error { return e.err }

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_WRITE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "Could not save your changes"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}
