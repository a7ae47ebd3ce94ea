package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern
const (
	// Authentication errors (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Invalid credentials
	ErrUserDisabled          = "AUTH_002" // User disabled
	ErrUserNotFound          = "AUTH_003" // User not found
	ErrInvalidToken          = "AUTH_006" // Invalid token
	ErrExpiredToken          = "AUTH_007" // Expired token
	ErrInsufficientPrivilege = "AUTH_008" // Insufficient privileges
	ErrUserAlreadyExists     = "AUTH_009" // User already exists

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Invalid request
	ErrMissingRequiredData = "VAL_002" // Required data missing
	ErrInvalidFormat       = "VAL_003" // Invalid data format
	ErrValidationFailed    = "VAL_004" // Business validation failed

	// Resource errors (4000-4999)
	ErrRecordNotFound = "RES_001" // Record not found

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation error
	ErrStorageDecode     = "STG_001" // Stored document could not be decoded
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrValidationFailed:      http.StatusBadRequest,
	ErrRecordNotFound:        http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrStorageDecode:         http.StatusInternalServerError,
}

// APIError is the standardized API error payload
type APIError struct {
	Code    string `json:"code"`              // Machine-readable error code
	Message string `json:"message,omitempty"` // Descriptive message (optional)
	Details any    `json:"details,omitempty"` // Additional details (optional)
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an API error from a Go error, keeping its message
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
