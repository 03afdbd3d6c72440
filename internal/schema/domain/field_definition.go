package domain

import (
	"finance-tracker/internal/infra/utils"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"strings"
	"time"
)

type Key string

func (k Key) String() string {
	return string(k)
}

type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

func (k Kind) IsValid() bool {
	return k == KindText || k == KindNumber || k == KindSelect
}

// Retirement tells how a field leaves the catalog.
type Retirement int

const (
	RetirementForbidden Retirement = iota
	RetirementDisable
	RetirementDelete
)

type FieldDefinition struct {
	ID        shareddomain.ID
	Owner     shareddomain.OwnerID
	Context   Context
	Key       Key
	Label     shareddomain.DisplayName
	Kind      Kind
	IsCore    bool
	IsEnabled bool
	Order     int
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

// IsProtected reports whether the field carries the amount, which every record
// of every context needs.
func (f FieldDefinition) IsProtected() bool {
	return f.IsCore && f.Key == KeyAmount
}

func (f FieldDefinition) Retirement() Retirement {
	switch {
	case f.IsProtected():
		return RetirementForbidden
	case f.IsCore:
		return RetirementDisable
	default:
		return RetirementDelete
	}
}

func (f *FieldDefinition) Disable() {
	f.IsEnabled = false
	f.UpdatedAt = utils.Time{Time: time.Now()}
}

func (f *FieldDefinition) Relabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return shareddomain.NewValidationError("label", "is required")
	}
	f.Label = shareddomain.DisplayName(label)
	f.UpdatedAt = utils.Time{Time: time.Now()}
	return nil
}

func NewFieldDefinitionBuilder() *fieldDefinitionBuilder {
	return &fieldDefinitionBuilder{}
}

type fieldDefinitionBuilder struct {
	actions []fieldDefinitionHandler
}

type fieldDefinitionHandler func(v *FieldDefinition) error

func (b *fieldDefinitionBuilder) WithOwner(value shareddomain.OwnerID) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Owner = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithContext(value Context) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Context = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithLabel(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Label = shareddomain.DisplayName(strings.TrimSpace(value))
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithKind(value Kind) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		if value != "" {
			d.Kind = value
		}
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithKey(value Key) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Key = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithOrder(value int) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Order = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithCore(value bool) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.IsCore = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) Build() (FieldDefinition, error) {
	now := utils.Time{Time: time.Now()}
	result := FieldDefinition{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Kind:      KindText,
		IsEnabled: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldDefinition{}, err
		}
	}

	if result.Owner == "" {
		return FieldDefinition{}, ErrOwnerRequired
	}

	if !result.Context.IsValid() {
		return FieldDefinition{}, shareddomain.NewValidationError("context", "must be expense or income")
	}

	if result.Label == "" {
		return FieldDefinition{}, shareddomain.NewValidationError("label", "is required")
	}

	if !result.Kind.IsValid() {
		return FieldDefinition{}, shareddomain.NewValidationError("kind", "must be text, number or select")
	}

	if result.Key == "" {
		result.Key = NewFieldKey(string(result.Label), NextKeySuffix())
	}

	return result, nil
}
