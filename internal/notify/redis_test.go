package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saicharan1203/portfolio-backend/internal/logging"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRedisPublisher_Publishes(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, "portfolio:contact")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	p := NewRedisPublisher(client, "portfolio:contact", logging.Discard())
	require.Equal(t, ResultSent, p.Notify(ctx, "inbox@example.com", ada))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var event ContactEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
	assert.Equal(t, "inbox@example.com", event.Recipient)
	assert.Equal(t, ada.ID, event.ID)
	assert.Equal(t, "Ada", event.Name)
	assert.Equal(t, ada.Message, event.Message)
	assert.True(t, ada.CreatedAt.Equal(event.CreatedAt))
}

func TestRedisPublisher_Disabled(t *testing.T) {
	p := NewRedisPublisher(nil, "portfolio:contact", logging.Discard())
	assert.Equal(t, ResultDisabled, p.Notify(context.Background(), "inbox@example.com", ada))
}

func TestRedisPublisher_ServerDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	p := NewRedisPublisher(client, "portfolio:contact", logging.Discard())
	assert.Equal(t, ResultFailed, p.Notify(context.Background(), "inbox@example.com", ada))
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, 2, client.Options().DB)

	_, err = NewRedisClient("http://nope")
	assert.Error(t, err)
}
