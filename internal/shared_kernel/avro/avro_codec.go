package avro

import (
	"finance-tracker/schemas"
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

// AvroCodec encodes one message type with its static schema, for brokers
// running without a schema registry.
type AvroCodec struct {
	prototype reflect.Type
	schema    avro.Schema
}

func NewAvroCodec(prototype any) (*AvroCodec, error) {
	prototypeType := messageType(prototype)
	definition, err := schemaFor(prototypeType)
	if err != nil {
		return nil, err
	}

	raw, err := schemas.Load(definition.file)
	if err != nil {
		return nil, err
	}

	schema, err := avro.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", definition.file, err)
	}

	return &AvroCodec{
		prototype: prototypeType,
		schema:    schema,
	}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	if t := messageType(value); t != c.prototype {
		return nil, fmt.Errorf("codec for %s cannot encode %s", c.prototype.Name(), t)
	}

	data, err := avro.Marshal(c.schema, value)
	if err != nil {
		return nil, fmt.Errorf("marshaling to avro: %w", err)
	}

	return data, nil
}

// Decode returns a pointer to a new value of the prototype type.
func (c *AvroCodec) Decode(data []byte) (any, error) {
	instance := reflect.New(c.prototype).Interface()
	if err := avro.Unmarshal(c.schema, data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from avro: %w", err)
	}

	return instance, nil
}

func schemaFor(t reflect.Type) (messageSchema, error) {
	if t == nil {
		return messageSchema{}, fmt.Errorf("no avro schema for a nil prototype")
	}
	definition, ok := messageSchemas[t.Name()]
	if !ok {
		return messageSchema{}, fmt.Errorf("no avro schema for message type %s", t.Name())
	}
	return definition, nil
}

func messageType(value any) reflect.Type {
	t := reflect.TypeOf(value)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
