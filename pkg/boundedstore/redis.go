package boundedstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend maps the bounded-list contract onto Redis list commands:
// Push is LPUSH followed by LTRIM, List is LRANGE, Clear is DEL. Use it when
// several collector instances need to share one record history.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend wraps an existing Redis client. The optional prefix
// namespaces all keys (e.g. "trackkit:").
func NewRedisBackend(client *redis.Client, prefix string) (*RedisBackend, error) {
	if client == nil {
		return nil, ErrNilBackend
	}
	return &RedisBackend{client: client, prefix: prefix}, nil
}

// Push prepends a record and truncates the list to limit elements. Both
// commands travel in one pipeline so a crash between them cannot leave the
// list growing unbounded for long: the next Push trims again.
func (b *RedisBackend) Push(ctx context.Context, key string, record json.RawMessage, limit int) error {
	pipe := b.client.TxPipeline()
	pipe.LPush(ctx, b.prefix+key, []byte(record))
	pipe.LTrim(ctx, b.prefix+key, 0, int64(limit)-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis push: %w", err)
	}
	return nil
}

// List returns all elements, newest first.
func (b *RedisBackend) List(ctx context.Context, key string) ([]json.RawMessage, error) {
	values, err := b.client.LRange(ctx, b.prefix+key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis range: %w", err)
	}

	records := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		records = append(records, json.RawMessage(v))
	}
	return records, nil
}

// Clear deletes the key and reports whether it existed.
func (b *RedisBackend) Clear(ctx context.Context, key string) (bool, error) {
	deleted, err := b.client.Del(ctx, b.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}
	return deleted > 0, nil
}
