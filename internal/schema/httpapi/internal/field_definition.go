package internal

import (
	"finance-tracker/internal/schema/domain"
	"time"
)

type FieldListResponse struct {
	Data []FieldResponse `json:"data"`
}

type FieldResponse struct {
	ID        string    `json:"id"`
	Context   string    `json:"context"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Kind      string    `json:"kind"`
	IsCore    bool      `json:"is_core"`
	IsEnabled bool      `json:"is_enabled"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FieldCreateRequest struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

type FieldReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

type FieldRelabelRequest struct {
	Label string `json:"label"`
}

func ToFieldResponse(field domain.FieldDefinition) FieldResponse {
	return FieldResponse{
		ID:        field.ID.String(),
		Context:   field.Context.String(),
		Key:       field.Key.String(),
		Label:     string(field.Label),
		Kind:      string(field.Kind),
		IsCore:    field.IsCore,
		IsEnabled: field.IsEnabled,
		Order:     field.Order,
		CreatedAt: field.CreatedAt.Time,
		UpdatedAt: field.UpdatedAt.Time,
	}
}

func ToFieldListResponse(fields []domain.FieldDefinition) FieldListResponse {
	data := make([]FieldResponse, len(fields))
	for i, field := range fields {
		data[i] = ToFieldResponse(field)
	}
	return FieldListResponse{Data: data}
}
