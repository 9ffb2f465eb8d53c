package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/wikitext/util"
	"github.com/Drolfothesgnir/wikitext/wikitext"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	ParseResultPrefix = "parse:"
)

// ErrCacheMiss is returned when the requested entry is not stored or expired.
var ErrCacheMiss = errors.New("cache miss")

// ParseResult is the cached outcome of parsing a single input.
type ParseResult struct {
	ID        string                    `json:"id"`
	Digest    string                    `json:"digest"`
	Stats     wikitext.Stats            `json:"stats"`
	Tree      wikitext.SerializableNode `json:"tree"`
	CreatedAt time.Time                 `json:"created_at"`
}

type Store interface {
	SaveParseResult(ctx context.Context, digest string, data ParseResult, ttl time.Duration) error
	GetParseResult(ctx context.Context, digest string) (*ParseResult, error)
	DeleteParseResult(ctx context.Context, digest string) error
	Close() error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// NewStoreWithClient wraps an already configured client.
func NewStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func parseResultKey(digest string) string {
	return ParseResultPrefix + digest
}

// SaveParseResult stores the result under the digest of its input.
// A zero ttl keeps the entry until it's deleted.
func (store *RedisStore) SaveParseResult(
	ctx context.Context,
	digest string,
	data ParseResult,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize parse result: %w", err)
	}

	return store.client.Set(ctx, parseResultKey(digest), jsonData, ttl).Err()
}

// GetParseResult returns the result stored for the digest.
// Returns ErrCacheMiss if not found or expired.
func (store *RedisStore) GetParseResult(ctx context.Context, digest string) (*ParseResult, error) {
	jsonData, err := store.client.Get(ctx, parseResultKey(digest)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get parse result: %w", err)
	}

	var result ParseResult
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cached result json: %w", err)
	}

	return &result, nil
}

func (store *RedisStore) DeleteParseResult(ctx context.Context, digest string) error {
	return store.client.Del(ctx, parseResultKey(digest)).Err()
}

// Ping checks the connection to the server.
func (store *RedisStore) Ping(ctx context.Context) error {
	return store.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (store *RedisStore) Close() error {
	return store.client.Close()
}
