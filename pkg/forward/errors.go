package forward

import "errors"

var (
	// ErrInvalidURL indicates a missing or non-HTTP(S) base URL.
	ErrInvalidURL = errors.New("forward: invalid sink URL")

	// ErrDeliveryFailed indicates the sink could not be reached or answered
	// with a non-2xx status.
	ErrDeliveryFailed = errors.New("forward: delivery failed")

	// ErrTimeout indicates the delivery attempt exceeded its deadline.
	ErrTimeout = errors.New("forward: delivery timed out")
)
