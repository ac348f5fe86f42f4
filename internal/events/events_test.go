package events

import (
	"context"
	"testing"
	"time"

	"catalog-service/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInMemoryEventPublisher_RecordsEvents(t *testing.T) {
	publisher := NewInMemoryEventPublisher(zap.NewNop())

	event := ProductCreatedEvent{
		ProductID:  "65f1a2b3c4d5e6f7a8b9c0d1",
		Name:       "Red Shirt",
		Category:   "CLOTHING",
		Price:      19.99,
		Stock:      50,
		OccurredAt: time.Now(),
	}

	err := publisher.Publish(context.Background(), event)
	assert.NoError(t, err)

	recorded := publisher.Events()
	assert.Len(t, recorded, 1)
	assert.Equal(t, event, recorded[0])
}

func TestKafkaEventPublisher_EventTypeMapping(t *testing.T) {
	// sarama.SyncProducer is not mocked here; only the mapping logic is tested
	publisher := &KafkaEventPublisher{
		logger: zap.NewNop(),
		config: &config.Config{KafkaTopicProducts: "catalog.products"},
	}

	eventType, err := publisher.getEventType(ProductCreatedEvent{ProductID: "abc"})
	assert.NoError(t, err)
	assert.Equal(t, "ProductCreated", eventType)

	_, err = publisher.getEventType("not an event")
	assert.Error(t, err)
}

func TestKafkaEventPublisher_PartitionKey(t *testing.T) {
	publisher := &KafkaEventPublisher{
		logger: zap.NewNop(),
		config: &config.Config{KafkaTopicProducts: "catalog.products"},
	}

	key := publisher.getPartitionKey(ProductCreatedEvent{ProductID: "abc"})
	assert.Equal(t, "abc", key)

	assert.Empty(t, publisher.getPartitionKey("not an event"))
}
