package grpc

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/godilite/grade-calculator/internal/grpc/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/singleflight"
)

func TestAddTTLJitter(t *testing.T) {
	assert.Equal(t, time.Duration(0), addTTLJitter(0))
	assert.Equal(t, 10*time.Second, addTTLJitter(10*time.Second))

	for i := 0; i < 50; i++ {
		got := addTTLJitter(10 * time.Minute)
		assert.GreaterOrEqual(t, got, 10*time.Minute-15*time.Second)
		assert.Less(t, got, 10*time.Minute+15*time.Second)
	}
}

func TestFindAndCache(t *testing.T) {
	logger := zaptest.NewLogger(t)

	t.Run("cache error treated as miss", func(t *testing.T) {
		c := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				return errors.New("connection refused")
			},
		}
		var sf singleflight.Group

		v, err := FindAndCache(context.Background(), c, &sf, "k", time.Minute, logger, func(ctx context.Context) (int, error) {
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("set failure still returns value", func(t *testing.T) {
		c := &mocks.MockCacher{
			SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
				return errors.New("read only replica")
			},
		}
		var sf singleflight.Group

		v, err := FindAndCache(context.Background(), c, &sf, "k", time.Minute, nil, func(ctx context.Context) (string, error) {
			return "value", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("fetch error", func(t *testing.T) {
		var sf singleflight.Group

		_, err := FindAndCache(context.Background(), &mocks.MockCacher{}, &sf, "k", time.Minute, logger, func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		})

		assert.EqualError(t, err, "boom")
	})

	t.Run("concurrent misses share one fetch", func(t *testing.T) {
		var sf singleflight.Group
		var calls atomic.Int32
		release := make(chan struct{})

		fetch := func(ctx context.Context) (int, error) {
			calls.Add(1)
			<-release
			return 7, nil
		}

		var wg sync.WaitGroup
		results := make([]int, 5)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v, err := FindAndCache(context.Background(), &mocks.MockCacher{}, &sf, "shared", time.Minute, logger, fetch)
				assert.NoError(t, err)
				results[i] = v
			}(i)
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, []int{7, 7, 7, 7, 7}, results)
	})
}
