package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/trace"
)

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

// MemoryPublisherFactory serves the local environment and the tests: messages
// never leave the process.
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return NewMemoryPublisherFactoryWithBroker(GetMemoryBroker())
}

func NewMemoryPublisherFactoryWithBroker(broker *MemoryBroker) *MemoryPublisherFactory {
	return &MemoryPublisherFactory{broker: broker}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

var _ ConsumerFactory = (*MemoryConsumerFactory)(nil)

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return NewMemoryConsumerFactoryWithBroker(GetMemoryBroker(), group)
}

func NewMemoryConsumerFactoryWithBroker(broker *MemoryBroker, group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{broker: broker, group: group}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

func (c *MemoryConsumer) Consume(topic Topic, handler MessageHandler, _ Prototype) error {
	c.broker.Subscribe(topic, c.group, handler)
	return nil
}

// MemoryBroker delivers every message synchronously to one handler per
// consumer group, in publish order.
type MemoryBroker struct {
	mu     sync.RWMutex
	groups map[Topic]map[string][]MessageHandler
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = NewMemoryBroker()
	})
	return memoryBroker
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		groups: make(map[Topic]map[string][]MessageHandler),
	}
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.groups[topic] == nil {
		b.groups[topic] = make(map[string][]MessageHandler)
	}
	b.groups[topic][group] = append(b.groups[topic][group], handler)
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	b.mu.RLock()
	handlers := make([]MessageHandler, 0, len(b.groups[topic]))
	for _, groupHandlers := range b.groups[topic] {
		if len(groupHandlers) > 0 {
			handlers = append(handlers, groupHandlers[0])
		}
	}
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	// handlers run detached from the publisher's cancellation, but keep its trace
	consumeCtx := InjectTraceIntoContext(context.Background(), ExtractTraceFromContext(ctx))
	for _, handler := range handlers {
		b.deliver(consumeCtx, topic, key, message, handler)
	}

	return nil
}

func (b *MemoryBroker) deliver(ctx context.Context, topic Topic, key Key, message Message, handler MessageHandler) {
	ctx, span := CreateChildSpan(ctx, fmt.Sprintf("consume %s", topic), trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler", slog.String("topic", string(topic)), slog.Any("panic", r))
		}
	}()

	if err := handler(ctx, key, message); err != nil {
		slog.Error("handling message",
			slog.String("topic", string(topic)),
			slog.String("key", string(key)),
			slog.String("error", err.Error()))
	}
}

// Reset drops every subscription.
func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.groups = make(map[Topic]map[string][]MessageHandler)
}
