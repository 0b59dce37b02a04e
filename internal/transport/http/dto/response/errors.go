package response

// Коды ошибок API
const (
	CodeInvalidRequest       = "invalid_request"
	CodeValidationFailed     = "validation_failed"
	CodeAuthenticationFailed = "authentication_failed"
	CodeUnauthorized         = "unauthorized"
	CodeNotFound             = "not_found"
	CodeFileTooLarge         = "file_too_large"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeInternal             = "internal_error"
)

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  StatusError,
		Error:   CodeInvalidRequest,
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status:  StatusError,
		Error:   CodeAuthenticationFailed,
		Details: "Invalid credentials",
	}

	ErrUnauthorized = ErrorResponse{
		Status:  StatusError,
		Error:   CodeUnauthorized,
		Details: "Admin authentication required",
	}

	ErrNotFound = ErrorResponse{
		Status:  StatusError,
		Error:   CodeNotFound,
		Details: "Resource not found",
	}

	ErrInternal = ErrorResponse{
		Status:  StatusError,
		Error:   CodeInternal,
		Details: "Internal server error",
	}
)
