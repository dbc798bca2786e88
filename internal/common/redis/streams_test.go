package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mavita-score/internal/common/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	mr := miniredis.RunT(t)
	client := NewRedisClient(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestPublishAndRead(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	require.NoError(t, Ping(ctx, client))

	require.NoError(t, CreateConsumerGroup(ctx, client, "score:events", "cli"))
	// 重复创建不报错
	require.NoError(t, CreateConsumerGroup(ctx, client, "score:events", "cli"))

	id, err := PublishJSONToStream(ctx, client, "score:events", 100, map[string]any{"userUuid": "u-1", "total": 16})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	msgs, err := ReadFromStream(ctx, client, "score:events", "cli", "c1", 10, -1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, id, msgs[0].ID)
	assert.NotEmpty(t, msgs[0].Values["timestamp"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msgs[0].Data(), &payload))
	assert.Equal(t, "u-1", payload["userUuid"])
	assert.Equal(t, float64(16), payload["total"])

	require.NoError(t, Ack(ctx, client, "score:events", "cli", id))
}

func TestPublishToStream_StringifiesValues(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := PublishToStream(ctx, client, "s", 0, map[string]interface{}{
		"n":    42,
		"ok":   true,
		"f":    1.5,
		"list": []string{"a"},
	})
	require.NoError(t, err)

	entries, err := client.XRange(ctx, "s", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "42", entries[0].Values["n"])
	assert.Equal(t, "true", entries[0].Values["ok"])
	assert.Equal(t, "1.5", entries[0].Values["f"])
	assert.Equal(t, `["a"]`, entries[0].Values["list"])
}

func TestReadFromStream_Empty(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	require.NoError(t, CreateConsumerGroup(ctx, client, "empty", "g"))

	msgs, err := ReadFromStream(ctx, client, "empty", "g", "c", 10, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
