package redisStore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRedisStore_SharedPerDB(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := GetRedisStore(ctx, Options{Addr: mr.Addr(), DB: 7})
	require.NotNil(t, a)
	b := GetRedisStore(ctx, Options{Addr: mr.Addr(), DB: 7})
	assert.Same(t, a, b)

	require.NoError(t, a.Set(ctx, "k", "v", time.Minute))
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = a.Get(ctx, "missing")
	assert.True(t, a.IsNil(err))
	assert.NoError(t, a.Ping(ctx))
}

func TestGetRedisStore_Offline(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	assert.Nil(t, GetRedisStore(context.Background(), Options{Addr: addr, DB: 9}))
}
