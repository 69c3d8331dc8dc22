package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	category_cache "github.com/durable-fastener/durable-cms-backend/cache"
	"github.com/durable-fastener/durable-cms-backend/testutil"
)

func newTestServices(t *testing.T, store ObjectStore, rec Recommender) *Services {
	t.Helper()
	jwtSvc, err := NewJWTService("test-secret")
	require.NoError(t, err)
	return New(Deps{
		DB:          testutil.NewDB(t),
		Cache:       category_cache.New(category_cache.TTL),
		JWT:         jwtSvc,
		Store:       store,
		Recommender: rec,
	})
}

func ctx() context.Context { return context.Background() }
