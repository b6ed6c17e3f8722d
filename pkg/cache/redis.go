package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values in Redis under an optional key prefix.
type Cache struct {
	client *redis.Client
	prefix string
}

type Options struct {
	Address   string
	Password  string
	DB        int
	KeyPrefix string
}

type Option func(*Options)

func WithAddress(addr string) Option {
	return func(o *Options) {
		o.Address = addr
	}
}

func WithPassword(pass string) Option {
	return func(o *Options) {
		o.Password = pass
	}
}

func WithDB(db int) Option {
	return func(o *Options) {
		o.DB = db
	}
}

// WithKeyPrefix namespaces every key, e.g. "itemserver:".
func WithKeyPrefix(prefix string) Option {
	return func(o *Options) {
		o.KeyPrefix = prefix
	}
}

// New connects to Redis and fails if the server does not answer a PING.
func New(ctx context.Context, opts ...Option) (*Cache, error) {
	options := &Options{
		Address:  "localhost:6379",
		Password: "",
		DB:       0,
	}

	for _, opt := range opts {
		opt(options)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     options.Address,
		Password: options.Password,
		DB:       options.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Cache{client: client, prefix: options.KeyPrefix}, nil
}

// Get decodes the value stored at key into dest. A missing key yields redis.Nil.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(val, dest)
}

func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, data, expiration).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// Nop is a cache that never holds anything. Get always reports redis.Nil so
// callers treat every lookup as a miss.
type Nop struct{}

func (Nop) Get(context.Context, string, any) error                { return redis.Nil }
func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Nop) Close() error                                          { return nil }
