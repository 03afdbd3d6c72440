package internal

import (
	"finance-tracker/internal/infra/utils"
	"finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

type FieldDefinition struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	OwnerID   string     `json:"owner_id" gorm:"uniqueIndex:idx_field_owner_context_key;not null"`
	Context   string     `json:"context" gorm:"uniqueIndex:idx_field_owner_context_key;not null"`
	FieldKey  string     `json:"field_key" gorm:"uniqueIndex:idx_field_owner_context_key;not null"`
	Label     string     `json:"label" gorm:"not null"`
	Kind      string     `json:"kind" gorm:"not null"`
	IsCore    bool       `json:"is_core" gorm:"not null;default:false"`
	IsEnabled bool       `json:"is_enabled" gorm:"not null"`
	Ordering  int        `json:"ordering" gorm:"not null;default:0"`
	CreatedAt utils.Time `json:"created_at"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func (FieldDefinition) TableName() string {
	return "field_definitions"
}

func FromFieldDefinition(field domain.FieldDefinition) FieldDefinition {
	return FieldDefinition{
		ID:        field.ID.String(),
		OwnerID:   field.Owner.String(),
		Context:   field.Context.String(),
		FieldKey:  field.Key.String(),
		Label:     string(field.Label),
		Kind:      string(field.Kind),
		IsCore:    field.IsCore,
		IsEnabled: field.IsEnabled,
		Ordering:  field.Order,
		CreatedAt: field.CreatedAt,
		UpdatedAt: field.UpdatedAt,
	}
}

func (m FieldDefinition) ToDomain() domain.FieldDefinition {
	return domain.FieldDefinition{
		ID:        shareddomain.ID(m.ID),
		Owner:     shareddomain.OwnerID(m.OwnerID),
		Context:   domain.Context(m.Context),
		Key:       domain.Key(m.FieldKey),
		Label:     shareddomain.DisplayName(m.Label),
		Kind:      domain.Kind(m.Kind),
		IsCore:    m.IsCore,
		IsEnabled: m.IsEnabled,
		Order:     m.Ordering,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
