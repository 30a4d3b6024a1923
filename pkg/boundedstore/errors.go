package boundedstore

import "errors"

var (
	// ErrNilBackend indicates a List was constructed without a backend.
	ErrNilBackend = errors.New("boundedstore: nil backend")

	// ErrEmptyKey indicates a List was constructed without a storage key.
	ErrEmptyKey = errors.New("boundedstore: empty storage key")

	// ErrInvalidLimit indicates a non-positive capacity.
	ErrInvalidLimit = errors.New("boundedstore: limit must be positive")

	// ErrInvalidKey indicates a storage key that would escape the backend's
	// namespace (path traversal in the file backend).
	ErrInvalidKey = errors.New("boundedstore: invalid storage key")
)
