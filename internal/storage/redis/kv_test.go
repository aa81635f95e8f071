package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestKV connects to the server in REDIS_ADDR, or skips the test.
func newTestKV(t *testing.T) *KV {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	client, err := Connect(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewKV(client)
}

func TestKV(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	_, found, err := kv.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, kv.Set(ctx, key, []byte("value"), time.Minute))

	got, found, err := kv.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "value", string(got))

	require.NoError(t, kv.Del(ctx, key))
	_, found, err = kv.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, found)
}

func TestKV_Expiry(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	require.NoError(t, kv.Set(ctx, key, []byte("value"), 100*time.Millisecond))
	require.Eventually(t, func() bool {
		_, found, err := kv.Get(ctx, key)
		return err == nil && !found
	}, 2*time.Second, 50*time.Millisecond)
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Connect(ctx, "127.0.0.1:1", "", 0)
	require.Error(t, err)
}
