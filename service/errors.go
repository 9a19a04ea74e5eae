package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProductNotFound is returned when a product id is not in the catalog
var ErrProductNotFound = errors.New("product not found")

// ConfigurationError means the relay credential is missing, nothing was sent
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "email service not configured: " + e.Reason
}

// ValidationError is raised when submitted input fails a precondition
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PayloadTooLargeError is raised when a screenshot exceeds the attachment limit
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("attachment too large: %d bytes, max %dMB allowed", e.Size, e.Limit/(1024*1024))
}

// DeliveryFailure is raised when the relay call fails or the provider rejects
// the submission. Message carries the provider text verbatim.
type DeliveryFailure struct {
	Message string
	Hint    string
	Err     error
}

func (e *DeliveryFailure) Error() string {
	msg := e.Message + e.Hint
	if e.Err != nil {
		return fmt.Sprintf("%s: [%v]", msg, e.Err)
	}
	return msg
}

func (e *DeliveryFailure) Unwrap() error {
	return e.Err
}

// UploadBlocked reports whether the provider text points at an upload or file
// restriction, in which case resubmitting with an image URL usually works.
func (e *DeliveryFailure) UploadBlocked() bool {
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "upload") || strings.Contains(msg, "file")
}

// ResponseTypeFor maps a service error onto a ResponseType
func ResponseTypeFor(err error) ResponseType {
	var configErr *ConfigurationError
	var validationErr *ValidationError
	var tooLargeErr *PayloadTooLargeError
	var deliveryErr *DeliveryFailure

	switch {
	case err == nil:
		return Success
	case errors.As(err, &validationErr):
		return InvalidData
	case errors.As(err, &tooLargeErr):
		return TooLarge
	case errors.As(err, &configErr):
		return NotConfigured
	case errors.As(err, &deliveryErr):
		return DeliveryFailed
	case errors.Is(err, ErrProductNotFound):
		return NotFound
	default:
		return Error
	}
}
