package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ProductCreatedEvent is emitted after a product is persisted
type ProductCreatedEvent struct {
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher publishes catalog events to interested consumers
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
	Close() error
}

// InMemoryEventPublisher collects events in memory. It is the fallback when
// Kafka is disabled or unreachable, and doubles as a test double.
type InMemoryEventPublisher struct {
	mu     sync.Mutex
	events []interface{}
	logger *zap.Logger
}

func NewInMemoryEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		events: make([]interface{}, 0),
		logger: logger,
	}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	p.logger.Debug("Event recorded in-memory", zap.Any("event", event))
	return nil
}

func (p *InMemoryEventPublisher) Close() error {
	return nil
}

// Events returns a copy of the recorded events
func (p *InMemoryEventPublisher) Events() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]interface{}, len(p.events))
	copy(out, p.events)
	return out
}
