package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bills-tracker/internal/config"
)

type testStruct struct {
	Name   string
	Amount string
}

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
		User:     "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := testStruct{Name: "Netflix", Amount: "15.49"}
	err := cache.Set("bill:1", expected, time.Minute)
	require.NoError(t, err)

	var actual testStruct
	found, err := cache.Get("bill:1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGet_MissingKey(t *testing.T) {
	cache := setupTestCache(t)

	var actual testStruct
	found, err := cache.Get("bill:missing", &actual)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("bills:active", []testStruct{{Name: "Rent"}}, time.Hour))
	require.NoError(t, cache.Invalidate("bills:active"))

	var actual []testStruct
	found, err := cache.Get("bills:active", &actual)
	require.NoError(t, err)
	assert.False(t, found)
}
