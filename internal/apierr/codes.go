package apierr

import "net/http"

// Code is the closed set of application error kinds
type Code string

const (
	// Environment / configuration
	CodeEnvNotConfigured Code = "ENV_NOT_CONFIGURED"

	// Authentication
	CodeAuthFailed Code = "AUTH_FAILED"

	// Validation
	CodeValidationFailed     Code = "VALIDATION_FAILED"
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"

	// Network / infrastructure
	CodeNetworkError       Code = "NETWORK_ERROR"
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"

	// Database
	CodeDBInsertFailed        Code = "DB_INSERT_FAILED"
	CodeDBUniqueViolation     Code = "DB_UNIQUE_VIOLATION"
	CodeDBForeignKeyViolation Code = "DB_FOREIGN_KEY_VIOLATION"

	CodeUnknown Code = "UNKNOWN"
)

// Backend error codes understood by FromBackend
const (
	BackendConnection          = "PGRST301"
	BackendNoRows              = "PGRST116"
	BackendUniqueViolation     = "23505"
	BackendForeignKeyViolation = "23503"
	BackendServiceUnavailable  = "PGRST503"
)

var codes = []Code{
	CodeEnvNotConfigured,
	CodeAuthFailed,
	CodeValidationFailed,
	CodeMissingRequiredField,
	CodeNetworkError,
	CodeServiceUnavailable,
	CodeDBInsertFailed,
	CodeDBUniqueViolation,
	CodeDBForeignKeyViolation,
	CodeUnknown,
}

// Codes returns every known code in declaration order
func Codes() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// Valid reports whether c belongs to the closed set
func (c Code) Valid() bool {
	for _, known := range codes {
		if c == known {
			return true
		}
	}
	return false
}

// HTTPStatus maps a code to the status used by the REST surface
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidationFailed, CodeMissingRequiredField:
		return http.StatusBadRequest
	case CodeAuthFailed:
		return http.StatusUnauthorized
	case CodeDBUniqueViolation, CodeDBForeignKeyViolation:
		return http.StatusConflict
	case CodeNetworkError:
		return http.StatusBadGateway
	case CodeServiceUnavailable, CodeEnvNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// defaultUserMessage is shown to end users when the caller supplies none
func defaultUserMessage(c Code) string {
	switch c {
	case CodeEnvNotConfigured:
		return "The service is not configured yet. Please contact the administrator."
	case CodeAuthFailed:
		return "We could not verify your sign-in. Please sign in again."
	case CodeValidationFailed:
		return "Some of the submitted information is invalid."
	case CodeMissingRequiredField:
		return "A required answer is empty. Please answer every question."
	case CodeNetworkError:
		return "Please check your network connection."
	case CodeServiceUnavailable:
		return "The service is temporarily unavailable. Please try again later."
	case CodeDBInsertFailed:
		return "Saving failed. Please try again."
	case CodeDBUniqueViolation:
		return "This project already exists."
	case CodeDBForeignKeyViolation:
		return "The referenced data is not valid."
	default:
		return "A network error occurred. Check your connection and try again."
	}
}
