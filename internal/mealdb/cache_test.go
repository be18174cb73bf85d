package mealdb

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, rawURL string, ttl time.Duration) ([]byte, error) {
	args := m.Called(ctx, rawURL, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = value
	c.ttls[key] = ttl
	return nil
}

const testURL = "https://example.test/search.php?f=a"

func TestCachingFetcher_MissThenHit(t *testing.T) {
	next := &mockFetcher{}
	next.On("Fetch", mock.Anything, testURL, TTLMeals).Return([]byte(`{"meals":null}`), nil).Once()
	cache := newMemoryCache()
	f := NewCachingFetcher(next, cache, nil)

	first, err := f.Fetch(context.Background(), testURL, TTLMeals)
	require.NoError(t, err)
	second, err := f.Fetch(context.Background(), testURL, TTLMeals)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, TTLMeals, cache.ttls[testURL])
	next.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestCachingFetcher_ZeroTTLBypasses(t *testing.T) {
	next := &mockFetcher{}
	next.On("Fetch", mock.Anything, testURL, time.Duration(0)).Return([]byte(`{}`), nil)
	cache := newMemoryCache()
	f := NewCachingFetcher(next, cache, nil)

	_, err := f.Fetch(context.Background(), testURL, 0)
	require.NoError(t, err)
	_, err = f.Fetch(context.Background(), testURL, 0)
	require.NoError(t, err)

	assert.Empty(t, cache.entries)
	next.AssertNumberOfCalls(t, "Fetch", 2)
}

func TestCachingFetcher_FailuresAreNotCached(t *testing.T) {
	next := &mockFetcher{}
	next.On("Fetch", mock.Anything, testURL, TTLMeals).Return(nil, &StatusError{StatusCode: 500})
	cache := newMemoryCache()
	f := NewCachingFetcher(next, cache, nil)

	_, err := f.Fetch(context.Background(), testURL, TTLMeals)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Empty(t, cache.entries)
}

func TestCachingFetcher_CacheErrorsAreBypassed(t *testing.T) {
	next := &mockFetcher{}
	next.On("Fetch", mock.Anything, testURL, TTLListings).Return([]byte(`{"meals":[]}`), nil)
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	f := NewCachingFetcher(next, cache, nil)

	body, err := f.Fetch(context.Background(), testURL, TTLListings)

	require.NoError(t, err)
	assert.Equal(t, `{"meals":[]}`, string(body))
}

func TestCachingFetcher_NilCache(t *testing.T) {
	next := &mockFetcher{}
	next.On("Fetch", mock.Anything, testURL, TTLMeals).Return([]byte(`{}`), nil)
	f := NewCachingFetcher(next, nil, nil)

	_, err := f.Fetch(context.Background(), testURL, TTLMeals)

	require.NoError(t, err)
	next.AssertExpectations(t)
}
