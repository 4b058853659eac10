package apperrors

import "net/http"

// Domain errors shared across the auth and content services.

// ErrInvalidCredentials is returned for both "no such account" and "wrong
// password" so the response never reveals whether an email is registered.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with this email already exists",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)

var ErrUnauthenticated = New(
	CodeUnauthorized,
	"auth",
	"Authentication required",
	http.StatusUnauthorized,
)

var ErrAdminOnly = New(
	CodeForbidden,
	"auth",
	"Admin access required",
	http.StatusForbidden,
)

var ErrMissingCSRFToken = New(
	CodeMissingCSRFToken,
	"csrf",
	"Missing CSRF token",
	http.StatusForbidden,
)

var ErrInvalidCSRFToken = New(
	CodeInvalidCSRFToken,
	"csrf",
	"Invalid CSRF token",
	http.StatusForbidden,
)

// ErrTooManyResetRequests enforces the 60 second cooldown between
// password-recovery codes for the same account.
var ErrTooManyResetRequests = New(
	CodeRateLimited,
	"recovery",
	"A reset code was sent recently. Please wait before requesting another.",
	http.StatusTooManyRequests,
)

// ErrInvalidResetCode covers wrong, consumed and expired codes alike so the
// response cannot be used as an oracle for code guessing.
var ErrInvalidResetCode = New(
	CodeInvalidResetCode,
	"recovery",
	"Invalid or expired reset code",
	http.StatusBadRequest,
)

// ErrEmailDeliveryFailed is transient; the caller may retry the request.
var ErrEmailDeliveryFailed = New(
	CodeEmailDeliveryFailed,
	"recovery",
	"Failed to send the reset code email. Please try again.",
	http.StatusInternalServerError,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)
