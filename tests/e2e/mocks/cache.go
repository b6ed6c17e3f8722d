package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type cacheEntry struct {
	data   []byte
	expiry time.Time
}

// TrackingCache is an in-process stand-in for the Redis cache that counts calls.
// Values round-trip through JSON like they do in Redis.
type TrackingCache struct {
	mu       sync.Mutex
	GetCalls int
	SetCalls int
	Hits     int
	data     map[string]cacheEntry
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{
		data: make(map[string]cacheEntry),
	}
}

func (c *TrackingCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.GetCalls++
	entry, exists := c.data[key]
	if !exists || !time.Now().Before(entry.expiry) {
		return redis.Nil
	}
	c.Hits++
	return json.Unmarshal(entry.data, dest)
}

func (c *TrackingCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.SetCalls++
	c.data[key] = cacheEntry{
		data:   data,
		expiry: time.Now().Add(exp),
	}
	return nil
}

func (c *TrackingCache) Close() error {
	return nil
}

func (c *TrackingCache) Stats() (gets, sets, hits int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.GetCalls, c.SetCalls, c.Hits
}
