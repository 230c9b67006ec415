//go:build unit

package kvstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-portal/internal/infra"
	"hotel-portal/internal/infra/kvstore"
	"hotel-portal/internal/pkg/clock"
)

func newMemoryStore() (*kvstore.MemoryStore, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	return kvstore.NewMemoryStore(clk, "test", slog.New(slog.NewTextHandler(io.Discard, nil))), clk
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s, _ := newMemoryStore()
		_, err := s.Get(ctx, "nope")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("set get delete", func(t *testing.T) {
		s, _ := newMemoryStore()
		require.NoError(t, s.Set(ctx, "k", []byte("v1"), 0))
		require.NoError(t, s.Set(ctx, "k", []byte("v2"), 0))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)

		require.NoError(t, s.Delete(ctx, "k"))
		_, err = s.Get(ctx, "k")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("ttl expiry", func(t *testing.T) {
		s, clk := newMemoryStore()
		require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))

		clk.Add(59 * time.Second)
		_, err := s.Get(ctx, "k")
		require.NoError(t, err)

		clk.Add(time.Second)
		_, err = s.Get(ctx, "k")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		s, _ := newMemoryStore()
		require.NoError(t, s.Set(ctx, "k", []byte("abc"), 0))
		got, _ := s.Get(ctx, "k")
		got[0] = 'x'
		again, _ := s.Get(ctx, "k")
		assert.Equal(t, []byte("abc"), again)
	})
}
