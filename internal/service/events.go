package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	commonredis "mavita-score/internal/common/redis"
	"mavita-score/internal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ScoreEvent 一次已保存评估的通知
type ScoreEvent struct {
	EventID     string                   `json:"eventId"`
	UserUUID    string                   `json:"userUuid"`
	Summary     models.ScoreSummary      `json:"summary"`
	Indicators  []models.IndicatorResult `json:"indicators"`
	EvaluatedAt time.Time                `json:"evaluatedAt"`
}

// EventPublisher 评估事件发布
type EventPublisher interface {
	PublishScore(ctx context.Context, event ScoreEvent) error
}

// RedisStreamPublisher 发布到 Redis Stream（字段 data / timestamp）
type RedisStreamPublisher struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

func NewRedisStreamPublisher(client redis.Cmdable, stream string, maxLen int64) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client, stream: stream, maxLen: maxLen}
}

func (p *RedisStreamPublisher) PublishScore(ctx context.Context, event ScoreEvent) error {
	if _, err := commonredis.PublishJSONToStream(ctx, p.client, p.stream, p.maxLen, event); err != nil {
		return fmt.Errorf("failed to publish to stream %s: %w", p.stream, err)
	}
	return nil
}

// mqttPublisher *mqtt.Client 满足此接口
type mqttPublisher interface {
	Publish(topic string, retained bool, payload []byte) error
}

// MQTTPublisher 发布到 MQTT，主题中的 {user_uuid} 替换为用户 ID
type MQTTPublisher struct {
	client mqttPublisher
	topic  string
}

func NewMQTTPublisher(client mqttPublisher, topicTemplate string) *MQTTPublisher {
	return &MQTTPublisher{client: client, topic: topicTemplate}
}

// Topic 事件对应的主题
func (p *MQTTPublisher) Topic(userUUID string) string {
	return strings.ReplaceAll(p.topic, "{user_uuid}", userUUID)
}

func (p *MQTTPublisher) PublishScore(_ context.Context, event ScoreEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	// retained：新订阅者立即拿到最近一次评估
	return p.client.Publish(p.Topic(event.UserUUID), true, payload)
}

// amqpPublisher *amqp.Publisher 满足此接口
type amqpPublisher interface {
	Publish(ctx context.Context, messageID string, body []byte) error
}

// AMQPPublisher 发布到 RabbitMQ 队列
type AMQPPublisher struct {
	client amqpPublisher
}

func NewAMQPPublisher(client amqpPublisher) *AMQPPublisher {
	return &AMQPPublisher{client: client}
}

func (p *AMQPPublisher) PublishScore(ctx context.Context, event ScoreEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, event.EventID, body)
}

// MultiPublisher 依次发布到所有目标；失败只记录日志，不影响调用方
type MultiPublisher struct {
	targets map[string]EventPublisher
	order   []string
	logger  *zap.Logger
}

func NewMultiPublisher(logger *zap.Logger) *MultiPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MultiPublisher{targets: make(map[string]EventPublisher), logger: logger}
}

// Add 注册发布目标（name 用于日志）
func (m *MultiPublisher) Add(name string, p EventPublisher) {
	if _, ok := m.targets[name]; !ok {
		m.order = append(m.order, name)
	}
	m.targets[name] = p
}

// Len 已注册目标数
func (m *MultiPublisher) Len() int {
	return len(m.order)
}

func (m *MultiPublisher) PublishScore(ctx context.Context, event ScoreEvent) error {
	for _, name := range m.order {
		if err := m.targets[name].PublishScore(ctx, event); err != nil {
			m.logger.Warn("Failed to publish score event",
				zap.String("target", name),
				zap.String("event_id", event.EventID),
				zap.String("user_uuid", event.UserUUID),
				zap.Error(err),
			)
		}
	}
	return nil
}
