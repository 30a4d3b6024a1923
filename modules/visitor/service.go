package visitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/trackkit/trackkit/pkg/async"
	"github.com/trackkit/trackkit/pkg/boundedstore"
	"github.com/trackkit/trackkit/pkg/forward"
	"github.com/trackkit/trackkit/pkg/geolocate"
	"github.com/trackkit/trackkit/pkg/timefmt"
	"github.com/trackkit/trackkit/pkg/useragent"
)

// StorageKey is the bounded-list key for visitor records.
const StorageKey = "visitors"

// MaxRecords caps the visitor history.
const MaxRecords = 500

// Resolver abstracts the geolocation chain so tests can stub it.
type Resolver interface {
	Resolve(ctx context.Context, ip string) geolocate.Location
}

// Service collects visitor records. Construct once at application start and
// pass by reference to consumers; there is no package-level instance.
type Service struct {
	resolver Resolver
	store    *boundedstore.List[Record]
	sink     forward.Sink
	log      *slog.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger supplies a logger for swallowed-failure diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source. Tests only.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a visitor collector over the given geolocation
// resolver, bounded record list and forwarding sink.
func NewService(resolver Resolver, store *boundedstore.List[Record], sink forward.Sink, opts ...Option) *Service {
	s := &Service{
		resolver: resolver,
		store:    store,
		sink:     sink,
		log:      slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Track assembles a visitor record from the beacon, persists it and forwards
// it fire-and-forget. It never fails: resolution falls back to nil fields,
// storage and forwarding failures are logged and swallowed, and the
// assembled record is always returned.
func (s *Service) Track(ctx context.Context, b Beacon) *Record {
	now := s.now()

	location := s.resolver.Resolve(ctx, b.IP)
	device := useragent.Inspect(b.UserAgent, b.Screen, b.Language)

	referrer := b.Referrer
	if referrer == "" {
		referrer = DirectAccess
	}

	rec := &Record{
		ID:                 now.UnixMilli(),
		Timestamp:          timefmt.ISO(now),
		LocalizedTimestamp: timefmt.Localized(now, b.AcceptLanguage),
		Location:           location,
		Device:             device,
		Origin: Origin{
			Page:     b.Page,
			Referrer: referrer,
			Pathname: b.Pathname,
		},
	}

	if err := s.store.Append(ctx, *rec); err != nil {
		s.log.WarnContext(ctx, "failed to persist visitor record", slog.Any("error", err))
	}

	// Forwarding is detached from the request lifecycle: the beacon response
	// must not wait on the sink, and a canceled request must not abort an
	// in-flight delivery.
	async.Fire(ctx, s.log, func(ctx context.Context) {
		if err := s.sink.Deliver(ctx, forward.VisitorPath, rec); err != nil {
			s.log.DebugContext(ctx, "visitor record forwarding failed", slog.Any("error", err))
		}
	})

	return rec
}

// Records returns the stored visitor history, newest first.
func (s *Service) Records(ctx context.Context) ([]Record, error) {
	return s.store.ReadAll(ctx)
}
