package storage_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/pkg/storage"
)

func testStore(t *testing.T, s storage.Store) {
	t.Helper()

	ctx := context.Background()
	key := "authToken-" + uuid.Must(uuid.NewV4()).String()

	_, err := s.Get(ctx, key)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Set(ctx, key, "first"))
	require.NoError(t, s.Set(ctx, key, "second"))

	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, "second", v)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))

	_, err = s.Get(ctx, key)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemory(t *testing.T) {
	t.Parallel()

	testStore(t, storage.NewMemory())
}

func TestNamespace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := storage.NewMemory()

	a := storage.WithPrefix(m, "browser-a")
	b := storage.WithPrefix(m, "browser-b")

	testStore(t, a)

	require.NoError(t, a.Set(ctx, "authToken", "token-a"))

	_, err := b.Get(ctx, "authToken")
	require.ErrorIs(t, err, storage.ErrNotFound)

	v, err := m.Get(ctx, "browser-a:authToken")
	require.NoError(t, err)
	require.Equal(t, "token-a", v)
}

func TestRedis(t *testing.T) {
	t.Parallel()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := storage.NewRedis(ctx, addr, "", 0, time.Minute)
	require.NoError(t, err)

	t.Cleanup(func() { _ = r.Close() })

	testStore(t, r)
	testStore(t, storage.WithPrefix(r, "pos-test"))
}
