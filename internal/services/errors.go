package services

import "errors"

// APIError is the one error kind that crosses the gateway boundary. The code
// travels in the response envelope; 0 marks a generic domain error.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func NewAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// AsAPIError normalizes any error to an APIError. Unrecognized errors keep
// their message and get code 0.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Code: 0, Message: err.Error()}
}
