package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

// ContactEvent is the payload published for every persisted contact message.
type ContactEvent struct {
	Recipient string    `json:"recipient"`
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// RedisPublisher publishes contact events on a Pub/Sub channel so other
// processes (chat bots, dashboards) can react. A nil client disables it.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     logrus.FieldLogger
}

var _ Notifier = (*RedisPublisher)(nil)

func NewRedisPublisher(client *redis.Client, channel string, log logrus.FieldLogger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, log: log}
}

// NewRedisClient parses a redis:// URL into a client. It does not dial.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (p *RedisPublisher) Name() string { return "redis" }

func (p *RedisPublisher) Notify(ctx context.Context, recipient string, msg domain.Message) Result {
	if p.client == nil {
		return ResultDisabled
	}

	data, err := json.Marshal(ContactEvent{
		Recipient: recipient,
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	})
	if err != nil {
		p.log.WithError(err).Error("failed to marshal contact event")
		return ResultFailed
	}

	entry := p.log.WithFields(logrus.Fields{"message_id": msg.ID, "channel": p.channel})
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		entry.WithError(err).Error("failed to publish contact event")
		return ResultFailed
	}
	entry.Debug("contact event published")
	return ResultSent
}
