package internal

import (
	"finance-tracker/internal/ledger/usecases"
	"time"
)

// ChangeMessage is what the change feed writes to a websocket client.
type ChangeMessage struct {
	Type      string          `json:"type"`
	Context   string          `json:"context"`
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Record    *RecordResponse `json:"record,omitempty"`
}

func ToChangeMessage(event string, change usecases.RecordChange, at time.Time) ChangeMessage {
	message := ChangeMessage{
		Type:      event,
		Context:   change.Context.String(),
		ID:        change.ID.String(),
		Timestamp: at,
	}
	if change.Record != nil {
		record := ToRecordResponse(*change.Record)
		message.Record = &record
	}
	return message
}
