package service

// ResponseType enumerates the outcomes handlers map onto HTTP statuses
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success

	// TooLarge response
	TooLarge

	// NotConfigured response
	NotConfigured

	// DeliveryFailed response
	DeliveryFailed
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
	"too-large",
	"not-configured",
	"delivery-failed",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
