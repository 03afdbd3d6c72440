package domain

import (
	"finance-tracker/internal/infra/utils"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"time"

	"github.com/shopspring/decimal"
)

// Attributes holds the values of every submitted key without a dedicated
// column. Values are JSON primitives.
type Attributes map[string]any

// Record is an expense or an income.
type Record struct {
	ID          shareddomain.ID
	Owner       shareddomain.OwnerID
	Context     schemadomain.Context
	Amount      decimal.Decimal
	Description string
	Category    *string
	OccurredOn  string
	Attributes  Attributes
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
}

// Replace overwrites every composed value. Attributes absent from composition
// are dropped.
func (r *Record) Replace(composition Composition) {
	r.Amount = composition.Amount
	r.Description = composition.Description
	r.Category = composition.Category
	r.OccurredOn = composition.OccurredOn
	r.Attributes = composition.Attributes
	r.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewRecordBuilder() *recordBuilder {
	return &recordBuilder{}
}

type recordBuilder struct {
	actions []recordHandler
}

type recordHandler func(v *Record) error

func (b *recordBuilder) WithOwner(value shareddomain.OwnerID) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.Owner = value
		return nil
	})
	return b
}

func (b *recordBuilder) WithContext(value schemadomain.Context) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.Context = value
		return nil
	})
	return b
}

func (b *recordBuilder) WithComposition(value Composition) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.Amount = value.Amount
		d.Description = value.Description
		d.Category = value.Category
		d.OccurredOn = value.OccurredOn
		d.Attributes = value.Attributes
		return nil
	})
	return b
}

func (b *recordBuilder) Build() (Record, error) {
	now := utils.Time{Time: time.Now()}
	result := Record{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		Attributes: Attributes{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Record{}, err
		}
	}

	if result.Owner == "" {
		return Record{}, ErrOwnerRequired
	}

	if !result.Context.IsValid() {
		return Record{}, shareddomain.NewValidationError("context", "must be expense or income")
	}

	if !result.Amount.IsPositive() {
		return Record{}, shareddomain.NewValidationError("amount", "must be greater than zero")
	}

	if !utils.IsCanonicalDate(result.OccurredOn) {
		return Record{}, shareddomain.NewValidationError("date", "must be a YYYY-MM-DD date")
	}

	if result.Attributes == nil {
		result.Attributes = Attributes{}
	}

	return result, nil
}
