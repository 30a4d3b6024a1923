// Package geolocate resolves the geographic location of an IP address by
// querying a preference-ordered chain of public geolocation providers.
//
// Providers differ in reliability and response schema, so each one is
// wrapped in a small descriptor implementing Provider: it knows its endpoint
// URL and how to map its native JSON shape onto the shared Location record.
// The mapping is defensive – unexpected or missing fields become nil, never
// an error for the caller.
//
// The resolver tries providers strictly in order, one attempt each, with a
// bounded per-provider timeout. The first successfully decoded response
// wins and the remaining providers are not queried. Sequential tries keep
// the preference order meaningful and avoid wasted concurrent requests once
// an early provider succeeds, at the cost of added latency when a slow
// provider has to time out first.
//
// Resolve never fails: when every provider errors out it returns a Location
// with all identity fields nil and the timezone set from the host
// environment, so callers always receive a usable record.
//
// Successful lookups are cached per IP in a bounded LRU so repeat visitors
// do not re-query the provider chain; failed lookups are never cached.
//
// # Usage
//
//	resolver := geolocate.New()
//	loc := resolver.Resolve(ctx, clientIP)
//	if loc.Country != nil {
//	    // provider supplied a country
//	}
//
// The default chain is DefaultProviders: ip-api.com, ipapi.co, ipwho.is and
// api.ipify.org, ordered richest data first with the IP-only echo service as
// the last resort.
package geolocate
