package kafka_test

import (
	"context"
	"testing"

	"voyage/config"
	"voyage/infras/kafka"
	"voyage/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:   "booking-1",
		Value: map[string]any{"event": "booking.created", "num_rooms": 2},
	}

	msg, err := message.ToKafkaMessage("voyage.booking")
	require.NoError(t, err)

	assert.Equal(t, "voyage.booking", msg.Topic)
	assert.Equal(t, []byte("booking-1"), msg.Key)
	assert.JSONEq(t, `{"event":"booking.created","num_rooms":2}`, string(msg.Value))
}

func TestMessage_ToKafkaMessageInvalidValue(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage("voyage.booking")
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}

	client := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, client.SendMessages(context.Background(), "voyage.booking", kafka.Message{Key: "k", Value: "v"}))
	assert.NoError(t, client.Close())
}
