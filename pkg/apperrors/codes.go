package apperrors

// ErrorCode identifies an error class across the API.
type ErrorCode string

const (
	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeRateLimited      ErrorCode = "RATE_LIMITED"

	// Authentication / authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeMissingCSRFToken   ErrorCode = "MISSING_CSRF_TOKEN"
	CodeInvalidCSRFToken   ErrorCode = "INVALID_CSRF_TOKEN"

	// Password recovery
	CodeInvalidResetCode    ErrorCode = "INVALID_RESET_CODE"
	CodeEmailDeliveryFailed ErrorCode = "EMAIL_DELIVERY_FAILED"
)
