package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"newsportal/config"
)

func TestMemoryBurstThenRefill(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	m := NewMemory(rate.Limit(1), 2)
	m.now = func() time.Time { return clock }

	for i := 0; i < 2; i++ {
		ok, err := m.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := m.Allow(ctx, "1.2.3.4")
	assert.False(t, ok, "burst exhausted")

	ok, _ = m.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "keys are independent")

	clock = clock.Add(time.Second)
	ok, _ = m.Allow(ctx, "1.2.3.4")
	assert.True(t, ok, "one token refilled")
}

func TestMemorySweepsIdleKeys(t *testing.T) {
	ctx := context.Background()
	clock := time.Now()

	m := NewMemory(rate.Limit(1), 1)
	m.now = func() time.Time { return clock }

	m.Allow(ctx, "a")
	m.Allow(ctx, "b")
	assert.Equal(t, 2, m.size())

	clock = clock.Add(idleTTL + time.Minute)
	m.Allow(ctx, "c")
	assert.Equal(t, 1, m.size())
}

func TestNewWithoutRedisIsMemory(t *testing.T) {
	l, err := New(&config.RedisConfig{}, &config.CommentConfig{RatePerMinute: 6, Burst: 2})
	require.NoError(t, err)
	defer l.Close()

	_, ok := l.(*Memory)
	assert.True(t, ok)
}

func TestNewRejectsBadRedisURL(t *testing.T) {
	_, err := New(&config.RedisConfig{Enabled: true, URL: "not a url"}, &config.CommentConfig{RatePerMinute: 6, Burst: 2})
	assert.Error(t, err)
}
