package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"finance-tracker/internal/infra/utils"
	"finance-tracker/internal/ledger/domain"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"maps"

	"github.com/shopspring/decimal"
)

type Record struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	OwnerID     string          `json:"owner_id" gorm:"index:idx_record_owner_context;not null"`
	Context     string          `json:"context" gorm:"index:idx_record_owner_context;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,4);not null"`
	Description string          `json:"description" gorm:"not null;default:''"`
	Category    *string         `json:"category"`
	OccurredOn  string          `json:"occurred_on" gorm:"type:char(10);index;not null"`
	Attributes  Attributes      `json:"attributes" gorm:"type:jsonb"`
	CreatedAt   utils.Time      `json:"created_at"`
	UpdatedAt   utils.Time      `json:"updated_at"`
}

func (Record) TableName() string {
	return "ledger_records"
}

type Attributes map[string]any

func (a Attributes) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	return json.Marshal(a)
}

func (a *Attributes) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*a = Attributes{}
		return nil
	default:
		return errors.New("invalid type for attributes")
	}

	return json.Unmarshal(data, a)
}

func FromRecord(record domain.Record) Record {
	return Record{
		ID:          record.ID.String(),
		OwnerID:     record.Owner.String(),
		Context:     record.Context.String(),
		Amount:      record.Amount,
		Description: record.Description,
		Category:    record.Category,
		OccurredOn:  record.OccurredOn,
		Attributes:  Attributes(maps.Clone(record.Attributes)),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func (m Record) ToDomain() domain.Record {
	attributes := domain.Attributes(m.Attributes)
	if attributes == nil {
		attributes = domain.Attributes{}
	}

	return domain.Record{
		ID:          shareddomain.ID(m.ID),
		Owner:       shareddomain.OwnerID(m.OwnerID),
		Context:     schemadomain.Context(m.Context),
		Amount:      m.Amount,
		Description: m.Description,
		Category:    m.Category,
		OccurredOn:  m.OccurredOn,
		Attributes:  attributes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
