package utils

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a version 7 UUID. Ids issued by one process sort in
// creation order.
func GenerateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
