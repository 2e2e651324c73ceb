// Package redis provides a Redis-based implementation of the storage interface.
//
// Each collection is a hash keyed by record id, with a separate counter for
// the id sequence.
package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/folio/folio/pkg/storage"
)

// Config holds configuration for RedisStorage.
type Config struct {
	Address   string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStorage implements the Store interface using Redis hashes.
type RedisStorage struct {
	client redis.Cmdable
	prefix string
}

// Dial connects to Redis and verifies the connection.
func Dial(ctx context.Context, cfg *Config) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, &storage.StorageUnavailableError{Cause: err}
	}
	return NewRedisStorage(client, cfg.KeyPrefix), nil
}

// NewRedisStorage wraps an existing client.
func NewRedisStorage(client redis.Cmdable, keyPrefix string) *RedisStorage {
	if keyPrefix == "" {
		keyPrefix = "folio"
	}
	return &RedisStorage{client: client, prefix: keyPrefix}
}

func (r *RedisStorage) recordsKey(collection string) string {
	return fmt.Sprintf("%s:rec:%s", r.prefix, collection)
}

func (r *RedisStorage) sequenceKey(collection string) string {
	return fmt.Sprintf("%s:seq:%s", r.prefix, collection)
}

func field(id int64) string {
	return strconv.FormatInt(id, 10)
}

func unavailable(err error) error {
	return &storage.StorageUnavailableError{Cause: err}
}

// Create inserts a record unless the id already exists.
func (r *RedisStorage) Create(ctx context.Context, collection string, id int64, data []byte) error {
	ok, err := r.client.HSetNX(ctx, r.recordsKey(collection), field(id), data).Result()
	if err != nil {
		return unavailable(err)
	}
	if !ok {
		return &storage.DuplicateKeyError{Collection: collection, ID: id}
	}
	return nil
}

// Put inserts or replaces a record.
func (r *RedisStorage) Put(ctx context.Context, collection string, id int64, data []byte) error {
	if err := r.client.HSet(ctx, r.recordsKey(collection), field(id), data).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

// updateScript sets a hash field only when it already exists.
var updateScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// Update replaces an existing record atomically.
func (r *RedisStorage) Update(ctx context.Context, collection string, id int64, data []byte) error {
	n, err := updateScript.Run(ctx, r.client, []string{r.recordsKey(collection)}, field(id), data).Int()
	if err != nil {
		return unavailable(err)
	}
	if n == 0 {
		return &storage.NotFoundError{Collection: collection, ID: id}
	}
	return nil
}

// Get retrieves a record by id.
func (r *RedisStorage) Get(ctx context.Context, collection string, id int64) ([]byte, error) {
	data, err := r.client.HGet(ctx, r.recordsKey(collection), field(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, &storage.NotFoundError{Collection: collection, ID: id}
		}
		return nil, unavailable(err)
	}
	return data, nil
}

// List loads the whole hash and orders it by id.
func (r *RedisStorage) List(ctx context.Context, collection string) ([]storage.Record, error) {
	all, err := r.client.HGetAll(ctx, r.recordsKey(collection)).Result()
	if err != nil {
		return nil, unavailable(err)
	}

	records := make([]storage.Record, 0, len(all))
	for k, v := range all {
		id, err := storage.ParseID(k)
		if err != nil {
			return nil, err
		}
		records = append(records, storage.Record{ID: id, Data: []byte(v)})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// Delete removes a record.
func (r *RedisStorage) Delete(ctx context.Context, collection string, id int64) error {
	n, err := r.client.HDel(ctx, r.recordsKey(collection), field(id)).Result()
	if err != nil {
		return unavailable(err)
	}
	if n == 0 {
		return &storage.NotFoundError{Collection: collection, ID: id}
	}
	return nil
}

// NextID increments the collection counter.
func (r *RedisStorage) NextID(ctx context.Context, collection string) (int64, error) {
	id, err := r.client.Incr(ctx, r.sequenceKey(collection)).Result()
	if err != nil {
		return 0, unavailable(err)
	}
	return id, nil
}

// Ping checks the connection.
func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

// Close closes the client when this store owns it.
func (r *RedisStorage) Close() error {
	if c, ok := r.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
