package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fixed collection paths on the sink, relative to the base URL.
const (
	VisitorPath = "/api/visitors"
	LeadPath    = "/api/leads"
)

// defaultTimeout bounds a single delivery attempt.
const defaultTimeout = 10 * time.Second

// envelope is the wire format: every record travels wrapped in a data field.
type envelope struct {
	Data any `json:"data"`
}

// Sink receives collected records. Implementations must treat Deliver as a
// single best-effort attempt; the collectors never retry.
type Sink interface {
	Deliver(ctx context.Context, path string, record any) error
}

// HTTPSink posts records to a backend over HTTP. Zero value is not usable;
// use NewHTTPSink.
type HTTPSink struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// HTTPOption configures an HTTPSink.
type HTTPOption func(*HTTPSink)

// WithHTTPClient supplies a custom HTTP client, e.g. for tests or proxies.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSink) {
		if client != nil {
			s.client = client
		}
	}
}

// WithTimeout sets the per-delivery timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSink) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewHTTPSink creates a sink posting to the given base URL. The URL must be
// absolute http or https; the collection paths are appended per delivery.
func NewHTTPSink(baseURL string, opts ...HTTPOption) (*HTTPSink, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, baseURL)
	}

	s := &HTTPSink{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Deliver posts one record to baseURL+path wrapped in the data envelope.
// The response body is discarded; anything but a 2xx status is a failure.
func (s *HTTPSink) Deliver(ctx context.Context, path string, record any) error {
	payload, err := json.Marshal(envelope{Data: record})
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %w", ErrDeliveryFailed, err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain so the connection can be reused; the content is irrelevant.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrDeliveryFailed, resp.StatusCode)
	}
	return nil
}

// NoopSink drops every record. Used when no forwarding backend is configured.
type NoopSink struct{}

// Deliver discards the record and always succeeds.
func (NoopSink) Deliver(context.Context, string, any) error { return nil }
