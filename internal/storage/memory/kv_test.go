package memorystore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKV(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	value := []byte("hello")
	require.NoError(t, kv.Set(ctx, "k", value, time.Minute))
	// Mutating the input must not change the stored value.
	value[0] = 'j'

	got, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "hello", string(got))

	require.NoError(t, kv.Del(ctx, "k"))
	_, found, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)
}

func TestKV_Expiry(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	kv.now = func() time.Time { return now }

	require.NoError(t, kv.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, kv.Set(ctx, "long", []byte("2"), time.Hour))
	require.NoError(t, kv.Set(ctx, "forever", []byte("3"), 0))

	now = now.Add(time.Minute)

	_, found, err := kv.Get(ctx, "short")
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = kv.Get(ctx, "long")
	require.NoError(t, err)
	require.True(t, found)

	now = now.Add(24 * time.Hour)
	kv.Sweep()
	require.Equal(t, 1, kv.Len())

	_, found, err = kv.Get(ctx, "forever")
	require.NoError(t, err)
	require.True(t, found)
}

func TestKV_Run(t *testing.T) {
	kv := NewKV()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		kv.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
