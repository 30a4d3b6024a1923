package geolocate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/trackkit/trackkit/pkg/cache"
)

// defaultTimeout bounds each provider attempt. A provider that cannot answer
// within it is skipped in favor of the next one.
const defaultTimeout = 5 * time.Second

// maxBodySize caps how much of a provider response is read (64KB).
const maxBodySize = 64 * 1024

// defaultCacheSize bounds the per-IP lookup cache.
const defaultCacheSize = 1024

// Resolver queries a chain of geolocation providers in preference order.
// Zero value is not usable; use New.
type Resolver struct {
	providers []Provider
	client    *http.Client
	timeout   time.Duration
	log       *slog.Logger
	cache     *cache.LRUCache[string, Location]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithProviders replaces the default provider chain. Order is preference
// order. Empty slices are ignored.
func WithProviders(providers ...Provider) Option {
	return func(r *Resolver) {
		if len(providers) > 0 {
			r.providers = providers
		}
	}
}

// WithHTTPClient supplies a custom HTTP client, e.g. for proxies or tests.
// Nil clients are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.client = client
		}
	}
}

// WithTimeout sets the per-provider attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger supplies a logger for per-provider failure diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithCacheSize resizes the per-IP lookup cache. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.cache = cache.NewLRUCache[string, Location](n)
		} else {
			r.cache = nil
		}
	}
}

// New creates a Resolver with the default provider chain and a pooled HTTP
// client.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		providers: DefaultProviders(),
		timeout:   defaultTimeout,
		log:       slog.New(slog.DiscardHandler),
		cache:     cache.NewLRUCache[string, Location](defaultCacheSize),
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the best-effort location of the given IP. An empty IP asks
// the providers to locate the caller's own address. Providers are tried
// strictly in order, one attempt each; the first decoded response wins.
// Resolve never fails: when the whole chain errors out, the returned record
// has every identity field nil and the timezone of the host environment.
// Successful lookups for a non-empty IP are served from an LRU cache on
// repeat calls; failed lookups are never cached.
func (r *Resolver) Resolve(ctx context.Context, ip string) Location {
	if ip != "" && r.cache != nil {
		if loc, ok := r.cache.Get(ip); ok {
			return loc
		}
	}

	for _, provider := range r.providers {
		loc, err := r.query(ctx, provider, ip)
		if err != nil {
			r.log.DebugContext(ctx, "geolocation provider failed",
				slog.String("provider", provider.Name()),
				slog.Any("error", err))
			continue
		}
		if loc.Timezone == "" {
			loc.Timezone = localTimezone()
		}
		if ip != "" && r.cache != nil {
			r.cache.Put(ip, loc)
		}
		return loc
	}

	return Location{Timezone: localTimezone()}
}

// query performs a single bounded attempt against one provider.
func (r *Resolver) query(ctx context.Context, provider Provider, ip string) (Location, error) {
	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, provider.Request(ip), nil)
	if err != nil {
		return Location{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Location{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Location{}, fmt.Errorf("read body: %w", err)
	}

	return provider.Decode(body)
}

// localTimezone resolves the host environment's timezone name, falling back
// to the current zone abbreviation so the result is never empty.
func localTimezone() string {
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	if zone, _ := time.Now().Zone(); zone != "" {
		return zone
	}
	return "UTC"
}
