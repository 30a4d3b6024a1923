// Package clientip extracts the originating client IP from an HTTP request.
//
// The visitor collector feeds this IP into the geolocation chain, so the
// extraction prefers proxy-supplied headers over the socket address:
// CF-Connecting-IP (Cloudflare), then the first valid entry of
// X-Forwarded-For, then X-Real-IP (nginx), and finally RemoteAddr. Every
// candidate is validated and normalized with net.ParseIP; spoofable garbage
// falls through to the next source.
//
// The headers are only trustworthy behind a proxy that strips or overwrites
// them. Deployments exposed directly to the internet should rely on
// RemoteAddr alone; a wrong-but-valid IP here only degrades geolocation
// accuracy, which the collector already treats as best effort.
package clientip
