// Package lead collects externally supplied lead records – form
// submissions, signups, any conversion event the host application wants
// captured. Leads share the visitor collector's persistence and forwarding
// pattern but carry a caller-defined payload: no schema is enforced beyond
// the generated id and timestamp fields.
package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/trackkit/trackkit/pkg/async"
	"github.com/trackkit/trackkit/pkg/boundedstore"
	"github.com/trackkit/trackkit/pkg/forward"
	"github.com/trackkit/trackkit/pkg/timefmt"
)

// StorageKey is the bounded-list key for lead records.
const StorageKey = "leads"

// MaxRecords caps the lead history.
const MaxRecords = 1000

// exportPrefix names export artifacts: leads_export_<unix-timestamp>.json.
const exportPrefix = "leads_export"

// Record is a stored lead: the caller's payload extended with generated
// id, timestamp and localizedTimestamp fields.
type Record map[string]any

// Generated field names. A payload using the same keys gets them overwritten.
const (
	FieldID                 = "id"
	FieldTimestamp          = "timestamp"
	FieldLocalizedTimestamp = "localizedTimestamp"
)

// Service collects lead records. Construct once at application start and
// pass by reference to consumers.
type Service struct {
	store *boundedstore.List[Record]
	sink  forward.Sink
	log   *slog.Logger
	now   func() time.Time
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

// NewService creates a lead collector over the given bounded record list
// and forwarding sink.
func NewService(store *boundedstore.List[Record], sink forward.Sink, opts ...Option) *Service {
	s := &Service{
		store: store,
		sink:  sink,
		log:   slog.New(slog.DiscardHandler),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save extends the payload with generated fields, persists it and forwards
// it fire-and-forget. It returns the stored record, or nil when persistence
// fails for any reason – the failure is logged but never raised, and nothing
// is forwarded for a record that was not stored.
func (s *Service) Save(ctx context.Context, payload map[string]any, acceptLanguage string) *Record {
	now := s.now()

	rec := make(Record, len(payload)+3)
	maps.Copy(rec, payload)
	rec[FieldID] = now.UnixMilli()
	rec[FieldTimestamp] = timefmt.ISO(now)
	rec[FieldLocalizedTimestamp] = timefmt.Localized(now, acceptLanguage)

	if err := s.store.Append(ctx, rec); err != nil {
		s.log.WarnContext(ctx, "failed to persist lead record", slog.Any("error", err))
		return nil
	}

	async.Fire(ctx, s.log, func(ctx context.Context) {
		if err := s.sink.Deliver(ctx, forward.LeadPath, rec); err != nil {
			s.log.DebugContext(ctx, "lead record forwarding failed", slog.Any("error", err))
		}
	})

	return &rec
}

// Records returns the stored leads, newest first.
func (s *Service) Records(ctx context.Context) ([]Record, error) {
	return s.store.ReadAll(ctx)
}

// Export serializes the full lead collection into a downloadable artifact:
// a pretty-printed JSON array and its filename. An empty collection exports
// as a valid empty array.
func (s *Service) Export(ctx context.Context) (string, []byte, error) {
	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("read leads: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("serialize leads: %w", err)
	}

	filename := fmt.Sprintf("%s_%d.json", exportPrefix, s.now().Unix())
	return filename, data, nil
}

// Clear deletes the entire lead collection. The confirmed flag is the
// explicit stand-in for an interactive confirmation: without it the
// collection is untouched and false is returned. True means the deletion
// went through.
func (s *Service) Clear(ctx context.Context, confirmed bool) bool {
	if !confirmed {
		return false
	}
	if _, err := s.store.Clear(ctx); err != nil {
		s.log.WarnContext(ctx, "failed to clear lead records", slog.Any("error", err))
		return false
	}
	return true
}
