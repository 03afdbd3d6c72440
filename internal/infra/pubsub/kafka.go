package pubsub

import (
	"context"
	"finance-tracker/internal/shared_kernel/avro"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lovoo/goka"
)

const (
	_maxRetries = 10
	_retryDelay = 5 * time.Second
)

var _ PublisherFactory = (*KafkaPublisherFactory)(nil)

type KafkaPublisherFactoryOptions struct {
	Brokers           []string
	SchemaRegistryURL string
}

func NewKafkaPublisherFactory(opts KafkaPublisherFactoryOptions) *KafkaPublisherFactory {
	return &KafkaPublisherFactory{
		brokers:           opts.Brokers,
		schemaRegistryURL: opts.SchemaRegistryURL,
	}
}

type KafkaPublisherFactory struct {
	brokers           []string
	schemaRegistryURL string
}

func (f *KafkaPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	publisher, err := NewKafkaPublisher(f.brokers, string(topic), prototype, f.schemaRegistryURL)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	return publisher, nil
}

type publisherKey struct {
	brokers           string
	topic             string
	prototypeType     string
	schemaRegistryURL string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

// NewKafkaPublisher returns one emitter per (brokers, topic, prototype,
// registry) for the whole process.
func NewKafkaPublisher(brokers []string, topic string, prototype any, schemaRegistryURL string) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers:           strings.Join(brokers, ","),
		topic:             topic,
		prototypeType:     fmt.Sprintf("%T", prototype),
		schemaRegistryURL: schemaRegistryURL,
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher",
			slog.String("schema_registry", schemaRegistryURL),
			slog.String("topic", topic),
			slog.String("prototype", key.prototypeType))

		codec, err := newKafkaCodec(prototype, schemaRegistryURL)
		if err != nil {
			instance.err = fmt.Errorf("creating avro codec: %w", err)
			return
		}

		for try := 0; try < _maxRetries; try++ {
			slog.Debug("connecting to kafka brokers", slog.String("brokers", key.brokers), slog.Int("try", try))
			emitter, err := goka.NewEmitter(brokers, goka.Stream(topic), codec)
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{emitter: emitter}
				return
			}
			time.Sleep(_retryDelay)
		}

		instance.err = fmt.Errorf("connecting to kafka brokers after %d retries", _maxRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

// newKafkaCodec uses the Confluent wire format when a schema registry is
// configured and the static schemas otherwise.
func newKafkaCodec(prototype any, schemaRegistryURL string) (goka.Codec, error) {
	if schemaRegistryURL == "" {
		return avro.NewAvroCodec(prototype)
	}

	return avro.NewConfluentAvroCodec(prototype, avro.NewConfluentSchemaRegistry(schemaRegistryURL))
}

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("key", string(key)))
	err := p.emitter.EmitSync(string(key), message)
	if err != nil {
		slog.Error("emitting message", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func (p *SimpleKafkaPublisher) Close() error {
	return p.emitter.Finish()
}
