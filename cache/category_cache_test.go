package category_cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durable-fastener/durable-cms-backend/catalog"
)

func countingLoader(calls *int) Loader {
	return func(ctx context.Context) (catalog.Tree, error) {
		*calls++
		return catalog.BuildTree([]catalog.Category{{ID: "c1", Name: "Fasteners"}}, nil, nil), nil
	}
}

func TestStoreServesFromCache(t *testing.T) {
	s := New(TTL)
	calls := 0

	tree, err := s.Tree(context.Background(), countingLoader(&calls))
	require.NoError(t, err)
	require.Len(t, tree, 1)

	_, err = s.Tree(context.Background(), countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestStoreInvalidate(t *testing.T) {
	s := New(TTL)
	calls := 0

	_, _ = s.Tree(context.Background(), countingLoader(&calls))
	s.Invalidate()
	_, ok := s.Get()
	assert.False(t, ok)

	_, _ = s.Tree(context.Background(), countingLoader(&calls))
	assert.Equal(t, 2, calls)
}

func TestStoreExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(time.Minute)
	s.now = func() time.Time { return now }

	s.Set(catalog.Tree{})
	_, ok := s.Get()
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestStoreRefreshError(t *testing.T) {
	s := New(TTL)
	boom := errors.New("db down")

	_, err := s.Refresh(context.Background(), func(ctx context.Context) (catalog.Tree, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	_, ok := s.Get()
	assert.False(t, ok)
}

func TestStoreDropsLoadOverlappingInvalidate(t *testing.T) {
	s := New(TTL)
	started := make(chan struct{})
	release := make(chan struct{})
	stale := catalog.BuildTree([]catalog.Category{{ID: "c1", Name: "Old"}}, nil, nil)

	done := make(chan catalog.Tree)
	go func() {
		tree, _ := s.Refresh(context.Background(), func(ctx context.Context) (catalog.Tree, error) {
			close(started)
			<-release
			return stale, nil
		})
		done <- tree
	}()

	<-started
	s.Invalidate()
	close(release)

	assert.Equal(t, stale, <-done)
	_, ok := s.Get()
	assert.False(t, ok)

	calls := 0
	tree, err := s.Tree(context.Background(), countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Fasteners", tree[0].Name)
}
