package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	commonredis "mavita-score/internal/common/redis"
	"mavita-score/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeMQTT struct {
	topic    string
	retained bool
	payload  []byte
}

func (f *fakeMQTT) Publish(topic string, retained bool, payload []byte) error {
	f.topic, f.retained, f.payload = topic, retained, payload
	return nil
}

type fakeAMQP struct {
	messageID string
	body      []byte
}

func (f *fakeAMQP) Publish(ctx context.Context, messageID string, body []byte) error {
	f.messageID, f.body = messageID, body
	return nil
}

func testEvent() ScoreEvent {
	return ScoreEvent{
		EventID:     "evt-1",
		UserUUID:    testUser,
		Summary:     models.ScoreSummary{SmokingScore: 4},
		Indicators:  []models.IndicatorResult{{ID: "lifestyle-risk", Score: 4}},
		EvaluatedAt: fixedNow,
	}
}

func TestRedisStreamPublisher(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	p := NewRedisStreamPublisher(client, "mavita:score:events", 100)
	require.NoError(t, p.PublishScore(ctx, testEvent()))

	require.NoError(t, commonredis.CreateConsumerGroup(ctx, client, "mavita:score:events", "test"))
	msgs, err := commonredis.ReadFromStream(ctx, client, "mavita:score:events", "test", "c1", 10, -1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	var got ScoreEvent
	require.NoError(t, json.Unmarshal(msgs[0].Data(), &got))
	assert.Equal(t, "evt-1", got.EventID)
	assert.Equal(t, 4, got.Summary.SmokingScore)
	assert.True(t, fixedNow.Equal(got.EvaluatedAt))
}

func TestMQTTPublisher(t *testing.T) {
	client := &fakeMQTT{}
	p := NewMQTTPublisher(client, "mavita/score/{user_uuid}")
	require.NoError(t, p.PublishScore(context.Background(), testEvent()))

	assert.Equal(t, "mavita/score/"+testUser, client.topic)
	assert.True(t, client.retained)
	assert.Contains(t, string(client.payload), `"eventId":"evt-1"`)
}

func TestAMQPPublisher(t *testing.T) {
	client := &fakeAMQP{}
	require.NoError(t, NewAMQPPublisher(client).PublishScore(context.Background(), testEvent()))
	assert.Equal(t, "evt-1", client.messageID)
	assert.Contains(t, string(client.body), `"userUuid":"`+testUser+`"`)
}

func TestMultiPublisher_LogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := NewMultiPublisher(zap.New(core))

	failing := &fakePublisher{err: errBroker}
	ok := &fakePublisher{}
	m.Add("stream", failing)
	m.Add("mqtt", ok)
	assert.Equal(t, 2, m.Len())

	require.NoError(t, m.PublishScore(context.Background(), testEvent()))
	assert.Len(t, failing.events, 1)
	assert.Len(t, ok.events, 1)

	entries := logs.FilterMessage("Failed to publish score event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "stream", entries[0].ContextMap()["target"])
}

func TestIndicatorCache(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	cache := NewIndicatorCache(kv, "c:", time.Minute, nil)

	_, ok := cache.Get(ctx, testUser)
	assert.False(t, ok)

	results := []models.IndicatorResult{{ID: "general-health", Score: 12, MaxScore: 62}}
	cache.Put(ctx, testUser, results)
	got, ok := cache.Get(ctx, testUser)
	require.True(t, ok)
	assert.Equal(t, results[0].Score, got[0].Score)

	kv.data["c:"+testUser] = "{not json"
	_, ok = cache.Get(ctx, testUser)
	assert.False(t, ok)

	cache.Invalidate(ctx, testUser)
	assert.Empty(t, kv.data)

	kv.err = errBroker
	cache.Put(ctx, testUser, results)
	_, ok = cache.Get(ctx, testUser)
	assert.False(t, ok)

	var disabled *IndicatorCache
	_, ok = disabled.Get(ctx, testUser)
	assert.False(t, ok)
	disabled.Put(ctx, testUser, results)
	disabled.Invalidate(ctx, testUser)
}
