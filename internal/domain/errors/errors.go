package errors

import (
	"net/http"

	"catalog/internal/errors"
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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy no longer matches the
// original with errors.Is, so keep sentinel comparisons on the original value.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrInvalidDiscount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISCOUNT",
		"折扣設定無效",
		"",
	)

	// Variant-related errors
	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"找不到該商品規格",
		"",
	)

	ErrDuplicateSKU = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SKU",
		"此 SKU 已被使用",
		"",
	)

	// Attribute-related errors
	ErrAttributeNotFound = NewBaseError(
		http.StatusNotFound,
		"ATTRIBUTE_NOT_FOUND",
		"找不到該屬性",
		"",
	)

	ErrAttributeAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ATTRIBUTE_ALREADY_EXISTS",
		"此屬性名稱已存在",
		"",
	)

	ErrRequiredAttributeNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUIRED_ATTRIBUTE_NOT_FOUND",
		"找不到該商品必填屬性",
		"",
	)

	ErrRequiredAttributeAlreadyExists = NewBaseError(
		http.StatusConflict,
		"REQUIRED_ATTRIBUTE_ALREADY_EXISTS",
		"該商品已設定此必填屬性",
		"",
	)

	ErrMissingRequiredAttribute = NewBaseError(
		http.StatusBadRequest,
		"REQUIRED_ATTRIBUTE_MISSING",
		"缺少商品必填屬性",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Aggregate-related errors
	ErrAggregateRecomputeFailed = NewBaseError(
		http.StatusInternalServerError,
		"AGGREGATE_RECOMPUTE_FAILED",
		"商品規格摘要更新失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突，請稍後再試",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is and errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
