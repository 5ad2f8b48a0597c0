package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeUpstream is used when a dependent upstream service fails
	ErrCodeUpstream = "ERR_UPSTREAM"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodePayloadTooLarge is used when an upload exceeds the size limit
	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,
	ErrCodeUpstream: http.StatusBadGateway,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	// Input errors
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the standardized
// transport-level codes
var DomainErrorCodeMapping = map[string]string{
	// Shared domain errors
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"INTERNAL_ERROR":       ErrCodeInternal,

	// Identity
	"EMAIL_TAKEN":         ErrCodeAlreadyExists,
	"INVALID_CREDENTIALS": ErrCodeUnauthorized,
	"ACCOUNT_LOCKED":      ErrCodeForbidden,
	"USER_NOT_FOUND":      ErrCodeNotFound,
	"INVALID_ROLE":        ErrCodeValidation,
	"INVALID_EMAIL":       ErrCodeValidation,
	"INVALID_PASSWORD":    ErrCodeValidation,
	"INVALID_NAME":        ErrCodeValidation,
	"INVALID_PHONE":       ErrCodeValidation,
	"INVALID_LINKEDIN":    ErrCodeValidation,
	"INVALID_PHOTO_URL":   ErrCodeValidation,
	"INVALID_RESUME_URL":  ErrCodeValidation,
	"RESUME_REQUIRED":     ErrCodeValidation,
	"NOT_LOCKED":          ErrCodeInvalidState,
	"PASSWORD_HASH_ERROR": ErrCodeInternal,
	"TOKEN_EXPIRED":       ErrCodeTokenExpired,
	"TOKEN_INVALID":       ErrCodeTokenInvalid,
	"TOKEN_REVOKED":       ErrCodeTokenInvalid,
	"TOKEN_ERROR":         ErrCodeTokenInvalid,

	// Board
	"COMPANY_NOT_FOUND":     ErrCodeNotFound,
	"JOB_NOT_FOUND":         ErrCodeNotFound,
	"APPLICATION_NOT_FOUND": ErrCodeNotFound,
	"INVALID_COMPANY_NAME":  ErrCodeValidation,
	"INVALID_COMPANY":       ErrCodeValidation,
	"INVALID_RECRUITER":     ErrCodeValidation,
	"INVALID_JOB":           ErrCodeValidation,
	"INVALID_APPLICANT":     ErrCodeValidation,
	"INVALID_TITLE":         ErrCodeValidation,
	"INVALID_DESCRIPTION":   ErrCodeValidation,
	"INVALID_LOCATION":      ErrCodeValidation,
	"INVALID_SALARY":        ErrCodeValidation,
	"INVALID_STATUS":        ErrCodeValidation,
	"INVALID_COVER_LETTER":  ErrCodeValidation,
	"COMPANY_HAS_JOBS":      ErrCodeConflict,
	"ALREADY_APPLIED":       ErrCodeConflict,
	"CANNOT_WITHDRAW":       ErrCodeInvalidState,

	// Uploads
	"EMPTY_FILE":              ErrCodeValidation,
	"FILE_TOO_LARGE":          ErrCodePayloadTooLarge,
	"DISALLOWED_CONTENT_TYPE": ErrCodeValidation,
	"INVALID_STORAGE_KEY":     ErrCodeValidation,
	"UPLOAD_FAILED":           ErrCodeInternal,

	// Interview questions
	"INVALID_JOB_TITLE": ErrCodeValidation,
	"UPSTREAM_ERROR":    ErrCodeUpstream,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
