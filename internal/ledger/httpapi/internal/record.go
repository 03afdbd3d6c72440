package internal

import (
	"finance-tracker/internal/ledger/domain"
	"finance-tracker/internal/ledger/usecases"
	"time"
)

type RecordListResponse struct {
	Data []RecordResponse `json:"data"`
}

type RecordResponse struct {
	ID          string         `json:"id"`
	Context     string         `json:"context"`
	Amount      string         `json:"amount"`
	Description string         `json:"description"`
	Category    *string        `json:"category"`
	Date        string         `json:"date"`
	Attributes  map[string]any `json:"attributes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// RecordEditResponse is a stored record flattened for an edit form. The amount
// is a JSON number carrying the stored decimal digits.
type RecordEditResponse struct {
	ID      string          `json:"id"`
	Entries []EntryResponse `json:"entries"`
	Values  map[string]any  `json:"values"`
}

type EntryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value any    `json:"value"`
}

type RenderedListResponse struct {
	Data []RenderedRowResponse `json:"data"`
}

type RenderedRowResponse struct {
	ID      string          `json:"id"`
	Date    string          `json:"date"`
	Entries []EntryResponse `json:"entries"`
	Legacy  map[string]any  `json:"legacy,omitempty"`
}

func ToRecordResponse(record domain.Record) RecordResponse {
	attributes := map[string]any(record.Attributes)
	if attributes == nil {
		attributes = map[string]any{}
	}

	return RecordResponse{
		ID:          record.ID.String(),
		Context:     record.Context.String(),
		Amount:      record.Amount.String(),
		Description: record.Description,
		Category:    record.Category,
		Date:        record.OccurredOn,
		Attributes:  attributes,
		CreatedAt:   record.CreatedAt.Time,
		UpdatedAt:   record.UpdatedAt.Time,
	}
}

func ToRecordResponses(records []domain.Record) []RecordResponse {
	result := make([]RecordResponse, len(records))
	for i, record := range records {
		result[i] = ToRecordResponse(record)
	}
	return result
}

func ToRecordEditResponse(id string, decoded domain.Decoded) RecordEditResponse {
	return RecordEditResponse{
		ID:      id,
		Entries: toEntryResponses(decoded.Entries),
		Values:  decoded.Values,
	}
}

func ToRenderedListResponse(rows []usecases.RenderedRow) RenderedListResponse {
	data := make([]RenderedRowResponse, len(rows))
	for i, row := range rows {
		data[i] = RenderedRowResponse{
			ID:      row.ID.String(),
			Date:    row.OccurredOn,
			Entries: toEntryResponses(row.Cells),
			Legacy:  row.Legacy,
		}
	}
	return RenderedListResponse{Data: data}
}

func toEntryResponses(entries []domain.Entry) []EntryResponse {
	result := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		result[i] = EntryResponse{
			Key:   entry.Key.String(),
			Label: entry.Label,
			Value: entry.Value,
		}
	}
	return result
}
