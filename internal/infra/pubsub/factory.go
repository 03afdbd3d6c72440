package pubsub

// Factory picks the publisher implementation for the environment.
type Factory struct {
	publisherFactory PublisherFactory
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	SchemaRegistryURL string
}

func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == "local" || len(opts.KafkaBrokers) == 0 {
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(),
		}
	}

	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(KafkaPublisherFactoryOptions{
			Brokers:           opts.KafkaBrokers,
			SchemaRegistryURL: opts.SchemaRegistryURL,
		}),
	}
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}
