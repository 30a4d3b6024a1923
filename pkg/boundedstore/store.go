package boundedstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Backend stores raw JSON elements per key, newest first. Implementations
// must treat a missing key as an empty list and enforce the limit on Push.
type Backend interface {
	// Push prepends a record and truncates the list to limit elements.
	Push(ctx context.Context, key string, record json.RawMessage, limit int) error

	// List returns all elements, newest first. A missing key yields an
	// empty slice, not an error.
	List(ctx context.Context, key string) ([]json.RawMessage, error)

	// Clear deletes the key entirely and reports whether it existed.
	Clear(ctx context.Context, key string) (bool, error)
}

// List is a typed bounded list over a Backend. Safe for concurrent use when
// the underlying backend is.
type List[T any] struct {
	backend Backend
	key     string
	limit   int
}

// NewList creates a bounded list stored under key, capped at limit records.
func NewList[T any](backend Backend, key string, limit int) (*List[T], error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	return &List[T]{backend: backend, key: key, limit: limit}, nil
}

// Key returns the storage key.
func (l *List[T]) Key() string { return l.key }

// Cap returns the maximum number of retained records.
func (l *List[T]) Cap() int { return l.limit }

// Append prepends a record. Once the cap is exceeded the oldest entries are
// silently dropped.
func (l *List[T]) Append(ctx context.Context, record T) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return l.backend.Push(ctx, l.key, raw, l.limit)
}

// ReadAll returns the stored records, newest first. A missing key reads as
// empty; individual elements that fail to deserialize are skipped so that
// one corrupt entry cannot hide the rest.
func (l *List[T]) ReadAll(ctx context.Context) ([]T, error) {
	raws, err := l.backend.List(ctx, l.key)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(raws))
	for _, raw := range raws {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Clear deletes the whole list and reports whether anything was stored.
func (l *List[T]) Clear(ctx context.Context) (bool, error) {
	return l.backend.Clear(ctx, l.key)
}
