package avro

import (
	"encoding/binary"
	"finance-tracker/schemas"
	"fmt"
	"reflect"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
	_subjectSuffix         = "-value"
	_magicByte             = byte(0)
	_headerSize            = 5
)

// SchemaRegistry resolves schema ids by subject and schema text by id.
type SchemaRegistry interface {
	LatestSchemaID(subject string) (int, error)
	RegisterSchema(subject string, schema string) (int, error)
	SchemaByID(schemaID int) (string, error)
}

var _ SchemaRegistry = (*ConfluentSchemaRegistry)(nil)

// ConfluentSchemaRegistry adapts the srclient registry client.
type ConfluentSchemaRegistry struct {
	client *srclient.SchemaRegistryClient
}

func NewConfluentSchemaRegistry(url string) *ConfluentSchemaRegistry {
	return &ConfluentSchemaRegistry{client: srclient.CreateSchemaRegistryClient(url)}
}

func (r *ConfluentSchemaRegistry) LatestSchemaID(subject string) (int, error) {
	schema, err := r.client.GetLatestSchema(subject)
	if err != nil {
		return 0, err
	}
	return schema.ID(), nil
}

func (r *ConfluentSchemaRegistry) RegisterSchema(subject string, schema string) (int, error) {
	created, err := r.client.CreateSchema(subject, schema, srclient.Avro)
	if err != nil {
		return 0, err
	}
	return created.ID(), nil
}

func (r *ConfluentSchemaRegistry) SchemaByID(schemaID int) (string, error) {
	schema, err := r.client.GetSchema(schemaID)
	if err != nil {
		return "", err
	}
	return schema.Schema(), nil
}

// ConfluentAvroCodec writes the Confluent wire format: a zero magic byte, the
// big-endian schema id and the Avro binary body.
type ConfluentAvroCodec struct {
	prototype      reflect.Type
	definition     messageSchema
	schemaRegistry SchemaRegistry
	schemaIDs      *ristretto.Cache
	codecs         *ristretto.Cache
}

func NewConfluentAvroCodec(prototype any, schemaRegistry SchemaRegistry) (*ConfluentAvroCodec, error) {
	prototypeType := messageType(prototype)
	definition, err := schemaFor(prototypeType)
	if err != nil {
		return nil, err
	}

	schemaIDs, err := newCodecCache()
	if err != nil {
		return nil, err
	}
	codecs, err := newCodecCache()
	if err != nil {
		return nil, err
	}

	return &ConfluentAvroCodec{
		prototype:      prototypeType,
		definition:     definition,
		schemaRegistry: schemaRegistry,
		schemaIDs:      schemaIDs,
		codecs:         codecs,
	}, nil
}

func newCodecCache() (*ristretto.Cache, error) {
	return ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 10,
		BufferItems: 64,
	})
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	native, err := toNative(value)
	if err != nil {
		return nil, fmt.Errorf("converting to avro native: %w", err)
	}

	schemaID, err := c.getOrRegisterSchemaID()
	if err != nil {
		return nil, fmt.Errorf("getting schema id: %w", err)
	}

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema id: %w", err)
	}

	body, err := codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encoding to avro: %w", err)
	}

	result := make([]byte, _headerSize+len(body))
	result[0] = _magicByte
	binary.BigEndian.PutUint32(result[1:_headerSize], uint32(schemaID))
	copy(result[_headerSize:], body)

	return result, nil
}

// Decode reads with the writer's schema, resolved by the id in the header.
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _headerSize {
		return nil, fmt.Errorf("invalid avro data: too short")
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}

	schemaID := int(binary.BigEndian.Uint32(data[1:_headerSize]))
	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema id: %w", err)
	}

	native, _, err := codec.NativeFromBinary(data[_headerSize:])
	if err != nil {
		return nil, fmt.Errorf("decoding avro data: %w", err)
	}

	record, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected avro native %T", native)
	}

	return fromNative(c.prototype, record)
}

func (c *ConfluentAvroCodec) getOrRegisterSchemaID() (int, error) {
	subject := c.definition.subject + _subjectSuffix

	if cached, found := c.schemaIDs.Get(subject); found {
		return cached.(int), nil
	}

	if id, err := c.schemaRegistry.LatestSchemaID(subject); err == nil {
		c.remember(c.schemaIDs, subject, id)
		return id, nil
	}

	raw, err := schemas.Load(c.definition.file)
	if err != nil {
		return 0, err
	}

	id, err := c.schemaRegistry.RegisterSchema(subject, raw)
	if err != nil {
		return 0, fmt.Errorf("registering schema: %w", err)
	}

	c.remember(c.schemaIDs, subject, id)
	return id, nil
}

func (c *ConfluentAvroCodec) getCodecByID(schemaID int) (*goavro.Codec, error) {
	if cached, found := c.codecs.Get(schemaID); found {
		return cached.(*goavro.Codec), nil
	}

	schema, err := c.schemaRegistry.SchemaByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("fetching schema from registry: %w", err)
	}

	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("creating codec from schema: %w", err)
	}

	c.remember(c.codecs, schemaID, codec)
	return codec, nil
}

func (c *ConfluentAvroCodec) remember(store *ristretto.Cache, key any, value any) {
	store.SetWithTTL(key, value, 1, _defaultSchemaCacheTTL)
	store.Wait()
}

func toNative(value any) (map[string]any, error) {
	switch v := value.(type) {
	case *AvroFieldDefinition:
		return fieldDefinitionToNative(*v), nil
	case AvroFieldDefinition:
		return fieldDefinitionToNative(v), nil
	case *AvroLedgerRecord:
		return ledgerRecordToNative(*v), nil
	case AvroLedgerRecord:
		return ledgerRecordToNative(v), nil
	case *AvroBudgetPeriod:
		return budgetPeriodToNative(*v), nil
	case AvroBudgetPeriod:
		return budgetPeriodToNative(v), nil
	default:
		return nil, fmt.Errorf("unsupported type for avro conversion: %T", value)
	}
}

func fromNative(prototype reflect.Type, m map[string]any) (any, error) {
	switch prototype.Name() {
	case "AvroFieldDefinition":
		return &AvroFieldDefinition{
			ID:        getString(m, "id"),
			OwnerID:   getString(m, "owner_id"),
			Context:   getString(m, "context"),
			Key:       getString(m, "key"),
			Label:     getString(m, "label"),
			Kind:      getString(m, "kind"),
			IsCore:    getBool(m, "is_core"),
			IsEnabled: getBool(m, "is_enabled"),
			Order:     getInt(m, "ordering"),
			Operation: getString(m, "operation"),
			UpdatedAt: getTime(m, "updated_at"),
		}, nil
	case "AvroLedgerRecord":
		return &AvroLedgerRecord{
			ID:          getString(m, "id"),
			OwnerID:     getString(m, "owner_id"),
			Context:     getString(m, "context"),
			Amount:      getString(m, "amount"),
			Description: getString(m, "description"),
			Category:    getOptionalString(m, "category"),
			OccurredOn:  getString(m, "occurred_on"),
			Attributes:  getString(m, "attributes"),
			Operation:   getString(m, "operation"),
			UpdatedAt:   getTime(m, "updated_at"),
		}, nil
	case "AvroBudgetPeriod":
		return &AvroBudgetPeriod{
			ID:         getString(m, "id"),
			OwnerID:    getString(m, "owner_id"),
			Name:       getString(m, "name"),
			PeriodType: getString(m, "period_type"),
			StartDate:  getOptionalString(m, "start_date"),
			EndDate:    getOptionalString(m, "end_date"),
			IsActive:   getBool(m, "is_active"),
			Operation:  getString(m, "operation"),
			UpdatedAt:  getTime(m, "updated_at"),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported prototype for avro conversion: %s", prototype.Name())
	}
}

func fieldDefinitionToNative(v AvroFieldDefinition) map[string]any {
	return map[string]any{
		"id":         v.ID,
		"owner_id":   v.OwnerID,
		"context":    v.Context,
		"key":        v.Key,
		"label":      v.Label,
		"kind":       v.Kind,
		"is_core":    v.IsCore,
		"is_enabled": v.IsEnabled,
		"ordering":   int32(v.Order),
		"operation":  v.Operation,
		"updated_at": v.UpdatedAt,
	}
}

func ledgerRecordToNative(v AvroLedgerRecord) map[string]any {
	return map[string]any{
		"id":          v.ID,
		"owner_id":    v.OwnerID,
		"context":     v.Context,
		"amount":      v.Amount,
		"description": v.Description,
		"category":    optionalString(v.Category),
		"occurred_on": v.OccurredOn,
		"attributes":  v.Attributes,
		"operation":   v.Operation,
		"updated_at":  v.UpdatedAt,
	}
}

func budgetPeriodToNative(v AvroBudgetPeriod) map[string]any {
	return map[string]any{
		"id":          v.ID,
		"owner_id":    v.OwnerID,
		"name":        v.Name,
		"period_type": v.PeriodType,
		"start_date":  optionalString(v.StartDate),
		"end_date":    optionalString(v.EndDate),
		"is_active":   v.IsActive,
		"operation":   v.Operation,
		"updated_at":  v.UpdatedAt,
	}
}

func optionalString(value *string) any {
	if value == nil {
		return nil
	}
	return goavro.Union("string", *value)
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getOptionalString(m map[string]any, key string) *string {
	switch v := m[key].(type) {
	case map[string]any:
		if s, ok := v["string"].(string); ok {
			return &s
		}
	case string:
		return &v
	}
	return nil
}

func getInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func getBool(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func getTime(m map[string]any, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case int64:
		return time.UnixMilli(v).UTC()
	}
	return time.Time{}
}
