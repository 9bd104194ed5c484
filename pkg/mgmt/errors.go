package mgmt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ConfigError is returned when a client cannot be constructed from the
// supplied configuration. No client is produced.
type ConfigError struct {
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Message
}

// ClientError is a local validation failure raised before any request is
// sent, for example an empty path parameter.
type ClientError struct {
	Code    string
	Param   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// RequestError is a transport failure: the request could not be sent, no
// response arrived before the deadline, or the response could not be read.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s %s failed: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx response from the management API. The
// fields are taken verbatim from the error envelope.
type APIError struct {
	StatusCode   int    `json:"status_code"   yaml:"status_code"`
	RequestID    string `json:"request_id"    yaml:"request_id"`
	ErrorType    string `json:"error_type"    yaml:"error_type"`
	ErrorMessage string `json:"error_message" yaml:"error_message"`
	ErrorURL     string `json:"error_url"     yaml:"error_url"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ErrorType == "" {
		return fmt.Sprintf("%s (status: %d, request_id: %s)", e.ErrorMessage, e.StatusCode, e.RequestID)
	}

	return fmt.Sprintf("%s: %s (status: %d, request_id: %s)", e.ErrorType, e.ErrorMessage, e.StatusCode, e.RequestID)
}

// IsNotFound checks if the error is an API failure with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an API failure with status 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an API failure with status 403.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsConfigError checks if the error is a configuration failure.
func IsConfigError(err error) bool {
	configErr := &ConfigError{}

	return errors.As(err, &configErr)
}

// IsValidationError checks if the error is a local validation failure.
func IsValidationError(err error) bool {
	clientErr := &ClientError{}

	return errors.As(err, &clientErr)
}

// IsTransportError checks if the error is a transport failure.
func IsTransportError(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr)
}

// IsTimeout checks if the error is a transport failure caused by the
// request deadline expiring.
func IsTimeout(err error) bool {
	return IsTransportError(err) && errors.Is(err, context.DeadlineExceeded)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
