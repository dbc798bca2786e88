package amqp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mavita-score/internal/common/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var errNotConnected = errors.New("not connected to a server")

// Publisher 向 RabbitMQ 队列发布消息（默认交换机，路由键为队列名）
type Publisher struct {
	queue   string
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger

	mu      sync.Mutex
	closed  bool
	onClose chan *amqp.Error
}

// NewPublisher 连接 broker 并声明持久化队列
func NewPublisher(cfg *config.AMQPConfig, logger *zap.Logger) (*Publisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial AMQP broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.Queue, err)
	}

	p := &Publisher{
		queue:   cfg.Queue,
		conn:    conn,
		channel: ch,
		logger:  logger,
		onClose: make(chan *amqp.Error, 1),
	}
	conn.NotifyClose(p.onClose)
	go p.watch()

	logger.Info("Connected to AMQP broker", zap.String("queue", cfg.Queue))
	return p, nil
}

func (p *Publisher) watch() {
	err, ok := <-p.onClose
	if !ok {
		return
	}
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.logger.Warn("AMQP connection closed", zap.String("queue", p.queue), zap.Error(err))
}

// Publish 发布一条 JSON 消息
func (p *Publisher) Publish(ctx context.Context, messageID string, body []byte) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return errNotConnected
	}

	err := p.channel.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", p.queue, err)
	}
	return nil
}

// Close 关闭通道和连接
func (p *Publisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return errors.Join(p.channel.Close(), p.conn.Close())
}
