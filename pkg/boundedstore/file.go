package boundedstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileBackend keeps one JSON array file per key under a base directory.
// A process-local mutex serializes the read-modify-write cycle of Push;
// corrupt or missing files read as empty lists.
type FileBackend struct {
	mu      sync.Mutex
	baseDir string
}

// NewFileBackend creates a file backend rooted at baseDir. The directory is
// created if needed and all key files are confined to it.
func NewFileBackend(baseDir string) (*FileBackend, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrInvalidKey)
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory: %w", err)
	}
	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}

	return &FileBackend{baseDir: absBaseDir}, nil
}

// Push prepends a record to the key's array file and truncates it to limit.
func (b *FileBackend) Push(ctx context.Context, key string, record json.RawMessage, limit int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path, err := b.resolveKey(key)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	records := b.readFile(path)
	records = append([]json.RawMessage{record}, records...)
	if len(records) > limit {
		records = records[:limit]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal list: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write list: %w", err)
	}
	return nil
}

// List returns the key's elements, newest first.
func (b *FileBackend) List(ctx context.Context, key string) ([]json.RawMessage, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path, err := b.resolveKey(key)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.readFile(path), nil
}

// Clear removes the key's file entirely.
func (b *FileBackend) Clear(ctx context.Context, key string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	path, err := b.resolveKey(key)
	if err != nil {
		return false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove list: %w", err)
	}
	return true, nil
}

// readFile loads a key file, treating a missing or corrupt file as empty.
// Callers must hold the mutex.
func (b *FileBackend) readFile(path string) []json.RawMessage {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// resolveKey maps a storage key onto a file path confined to baseDir.
func (b *FileBackend) resolveKey(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	path := filepath.Join(b.baseDir, filepath.Clean(key)+".json")
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve key path: %w", err)
	}

	// Keys must not escape the base directory.
	if !strings.HasPrefix(absPath, b.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	return absPath, nil
}
