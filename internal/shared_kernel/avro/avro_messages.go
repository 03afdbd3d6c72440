package avro

import (
	"time"
)

const (
	OperationUpsert = "upsert"
	OperationDelete = "delete"
)

// AvroFieldDefinition is the change event of a catalog field.
type AvroFieldDefinition struct {
	ID        string    `avro:"id"`
	OwnerID   string    `avro:"owner_id"`
	Context   string    `avro:"context"`
	Key       string    `avro:"key"`
	Label     string    `avro:"label"`
	Kind      string    `avro:"kind"`
	IsCore    bool      `avro:"is_core"`
	IsEnabled bool      `avro:"is_enabled"`
	Order     int       `avro:"ordering"`
	Operation string    `avro:"operation"`
	UpdatedAt time.Time `avro:"updated_at"`
}

// AvroLedgerRecord is the change event of an expense or income. Amount is the
// decimal string and Attributes the JSON encoding of the attribute bag.
type AvroLedgerRecord struct {
	ID          string    `avro:"id"`
	OwnerID     string    `avro:"owner_id"`
	Context     string    `avro:"context"`
	Amount      string    `avro:"amount"`
	Description string    `avro:"description"`
	Category    *string   `avro:"category"`
	OccurredOn  string    `avro:"occurred_on"`
	Attributes  string    `avro:"attributes"`
	Operation   string    `avro:"operation"`
	UpdatedAt   time.Time `avro:"updated_at"`
}

type AvroBudgetPeriod struct {
	ID         string    `avro:"id"`
	OwnerID    string    `avro:"owner_id"`
	Name       string    `avro:"name"`
	PeriodType string    `avro:"period_type"`
	StartDate  *string   `avro:"start_date"`
	EndDate    *string   `avro:"end_date"`
	IsActive   bool      `avro:"is_active"`
	Operation  string    `avro:"operation"`
	UpdatedAt  time.Time `avro:"updated_at"`
}

type messageSchema struct {
	file    string
	subject string
}

var messageSchemas = map[string]messageSchema{
	"AvroFieldDefinition": {file: "field_definition.avsc", subject: "field_definitions"},
	"AvroLedgerRecord":    {file: "ledger_record.avsc", subject: "ledger_records"},
	"AvroBudgetPeriod":    {file: "budget_period.avsc", subject: "budget_periods"},
}
