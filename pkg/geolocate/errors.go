package geolocate

import "errors"

var (
	// ErrUnexpectedStatus indicates a provider answered with a non-2xx code.
	ErrUnexpectedStatus = errors.New("geolocate: unexpected response status")

	// ErrMalformedResponse indicates a provider body could not be decoded.
	ErrMalformedResponse = errors.New("geolocate: malformed provider response")

	// ErrLookupRefused indicates a provider answered 2xx but flagged the
	// lookup as failed in its payload (rate limit, reserved range, etc.).
	ErrLookupRefused = errors.New("geolocate: provider refused lookup")
)
