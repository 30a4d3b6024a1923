// Package requestid provides HTTP middleware and helper utilities for working
// with request correlation identifiers.
//
// A request ID is a short opaque string that uniquely identifies an incoming
// HTTP request. Propagating the same ID through the request – via headers,
// context, and structured logs – makes it easy to correlate log records
// belonging to the same interaction.
//
// The package offers:
//
//   - Middleware that attaches a request ID to every request. If the client
//     supplies an "X-Request-ID" header its value is validated and reused;
//     otherwise a new UUIDv4 string is generated. The chosen ID is stored in
//     the request context and echoed back in the response header.
//
//   - Context helpers WithContext and FromContext for storing and extracting
//     request IDs from a context.Context.
//
//   - LoggerExtractor that plugs into the logger package's context extractors
//     so the request ID is injected into every log record automatically.
//
// # Usage
//
//	import (
//		"net/http"
//
//		"github.com/trackkit/trackkit/pkg/requestid"
//	)
//
//	mux := http.NewServeMux()
//	mux.Handle("/hello", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		w.Write([]byte("hello, your request id is " + id))
//	}))
//
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
// The package does not return errors. Invalid or empty request IDs supplied
// by a client are silently replaced by a freshly generated UUID.
package requestid
