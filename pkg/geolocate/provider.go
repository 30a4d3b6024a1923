package geolocate

// Provider describes one external geolocation endpoint plus the mapping from
// its native response shape onto the shared Location record. Implementations
// must keep Decode defensive: missing or unexpected fields map to nil, and
// only a response that cannot represent a lookup result at all (unparsable
// body, explicit failure flag) returns an error.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Request returns the endpoint URL for the given IP. An empty IP asks
	// the provider to resolve the caller's own address.
	Request(ip string) string

	// Decode maps the provider's raw JSON body onto a Location.
	Decode(body []byte) (Location, error)
}

// DefaultProviders returns the built-in provider chain in preference order:
// richest data first, the plain IP echo service as last resort.
func DefaultProviders() []Provider {
	return []Provider{
		IPAPIProvider{},
		IPAPICoProvider{},
		IPWhoisProvider{},
		IPifyProvider{},
	}
}
