package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients.
const (
	// Authentication errors (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Invalid credentials
	ErrUserNotFound       = "AUTH_002" // User not found
	ErrInvalidToken       = "AUTH_003" // Invalid token
	ErrExpiredToken       = "AUTH_004" // Expired token
	ErrInvalidTokenGSC    = "AUTH_005" // Search Console authorization failed

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Invalid request
	ErrMissingRequiredData = "VAL_002" // Missing required data
	ErrInvalidFormat       = "VAL_003" // Invalid data format

	// Resource errors (4000-4999)
	ErrNoReportLoaded = "RES_001" // No report loaded in this session
	ErrNoExportData   = "RES_002" // Nothing to export

	// Server errors (5000-5999)
	ErrInternalServer  = "SRV_001" // Internal server error
	ErrExternalService = "SRV_002" // External service failure
	ErrCommunication   = "SRV_003" // Communication failure
)

// Maps error codes to HTTP status codes.
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrUserNotFound:        http.StatusNotFound,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidTokenGSC:     http.StatusBadGateway,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNoReportLoaded:      http.StatusConflict,
	ErrNoExportData:        http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError is the standard error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload to the HTTP response.
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

// FromError wraps an existing Go error in an API error payload.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
