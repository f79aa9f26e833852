package errors

// ErrorInfo contains detailed error information for API responses.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "EMAIL_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Response is the envelope the error middleware writes for failures.
// It mirrors the success envelope in the response package so all
// replies share one shape.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
