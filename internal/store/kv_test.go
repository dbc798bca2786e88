package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKV(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	kv := NewRedisKV(client)

	_, err := kv.Get(ctx, "mavita:score:u1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set(ctx, "mavita:score:u1", `[{"id":"general-health"}]`, time.Minute))
	v, err := kv.Get(ctx, "mavita:score:u1")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"general-health"}]`, v)

	// TTL 到期
	mr.FastForward(2 * time.Minute)
	_, err = kv.Get(ctx, "mavita:score:u1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set(ctx, "a", "1", 0))
	require.NoError(t, kv.Del(ctx, "a", "missing"))
	require.NoError(t, kv.Del(ctx))
	_, err = kv.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
}
