package visitor_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackkit/trackkit/modules/visitor"
	"github.com/trackkit/trackkit/pkg/boundedstore"
	"github.com/trackkit/trackkit/pkg/forward"
	"github.com/trackkit/trackkit/pkg/geolocate"
	"github.com/trackkit/trackkit/pkg/useragent"
)

var fixedTime = time.Date(2025, time.March, 7, 14, 30, 5, 0, time.UTC)

// stubResolver returns a canned location without touching the network.
type stubResolver struct {
	loc geolocate.Location
}

func (r stubResolver) Resolve(context.Context, string) geolocate.Location { return r.loc }

// captureSink records deliveries and signals each one.
type captureSink struct {
	mu        sync.Mutex
	paths     []string
	records   []any
	delivered chan struct{}
	err       error
}

func newCaptureSink() *captureSink {
	return &captureSink{delivered: make(chan struct{}, 16)}
}

func (s *captureSink) Deliver(_ context.Context, path string, record any) error {
	s.mu.Lock()
	s.paths = append(s.paths, path)
	s.records = append(s.records, record)
	s.mu.Unlock()
	s.delivered <- struct{}{}
	return s.err
}

func (s *captureSink) waitDelivery(t *testing.T) {
	t.Helper()
	select {
	case <-s.delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for forwarding delivery")
	}
}

func newVisitorStore(t *testing.T) *boundedstore.List[visitor.Record] {
	t.Helper()
	backend, err := boundedstore.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	store, err := boundedstore.NewList[visitor.Record](backend, visitor.StorageKey, visitor.MaxRecords)
	require.NoError(t, err)
	return store
}

func TestTrackAssemblesAndPersistsRecord(t *testing.T) {
	ctx := context.Background()
	country := "Netherlands"
	resolver := stubResolver{loc: geolocate.Location{Country: &country, Timezone: "Europe/Amsterdam"}}
	store := newVisitorStore(t)
	sink := newCaptureSink()

	svc := visitor.NewService(resolver, store, sink, visitor.WithClock(func() time.Time { return fixedTime }))

	rec := svc.Track(ctx, visitor.Beacon{
		Page:           "https://example.com/pricing?ref=ad",
		Pathname:       "/pricing",
		Referrer:       "https://google.com/",
		Screen:         "1920x1080",
		Language:       "en-US",
		IP:             "203.0.113.7",
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		AcceptLanguage: "en-US,en;q=0.9",
	})

	require.NotNil(t, rec)
	assert.Equal(t, fixedTime.UnixMilli(), rec.ID)
	assert.Equal(t, "2025-03-07T14:30:05.000Z", rec.Timestamp)
	assert.NotEmpty(t, rec.LocalizedTimestamp)
	require.NotNil(t, rec.Location.Country)
	assert.Equal(t, "Netherlands", *rec.Location.Country)
	assert.Equal(t, useragent.DeviceDesktop, rec.Device.Type)
	assert.Equal(t, useragent.BrowserChrome, rec.Device.Browser)
	assert.Equal(t, "1920x1080", rec.Device.ScreenResolution)
	assert.Equal(t, "https://example.com/pricing?ref=ad", rec.Origin.Page)
	assert.Equal(t, "https://google.com/", rec.Origin.Referrer)
	assert.Equal(t, "/pricing", rec.Origin.Pathname)

	stored, err := svc.Records(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, *rec, stored[0])

	sink.waitDelivery(t)
	assert.Equal(t, []string{forward.VisitorPath}, sink.paths)
}

func TestTrackEmptyReferrerBecomesDirectAccess(t *testing.T) {
	svc := visitor.NewService(stubResolver{}, newVisitorStore(t), newCaptureSink())

	rec := svc.Track(context.Background(), visitor.Beacon{Page: "https://example.com/"})

	require.NotNil(t, rec)
	assert.Equal(t, visitor.DirectAccess, rec.Origin.Referrer)
}

// failingBackend simulates storage that always errors.
type failingBackend struct{}

func (failingBackend) Push(context.Context, string, json.RawMessage, int) error {
	return errors.New("disk full")
}
func (failingBackend) List(context.Context, string) ([]json.RawMessage, error) {
	return nil, errors.New("disk full")
}
func (failingBackend) Clear(context.Context, string) (bool, error) {
	return false, errors.New("disk full")
}

func TestTrackSwallowsStorageFailure(t *testing.T) {
	store, err := boundedstore.NewList[visitor.Record](failingBackend{}, visitor.StorageKey, visitor.MaxRecords)
	require.NoError(t, err)
	sink := newCaptureSink()

	svc := visitor.NewService(stubResolver{}, store, sink)
	rec := svc.Track(context.Background(), visitor.Beacon{Page: "https://example.com/"})

	require.NotNil(t, rec, "Track never fails, even when persistence does")

	// Forwarding still happens: persistence and delivery are independent.
	sink.waitDelivery(t)
}

func TestTrackSwallowsForwardingFailure(t *testing.T) {
	ctx := context.Background()
	store := newVisitorStore(t)
	sink := newCaptureSink()
	sink.err = errors.New("sink unreachable")

	svc := visitor.NewService(stubResolver{}, store, sink)
	rec := svc.Track(ctx, visitor.Beacon{Page: "https://example.com/"})
	require.NotNil(t, rec)
	sink.waitDelivery(t)

	stored, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "forwarding failure must not affect persistence")
}
