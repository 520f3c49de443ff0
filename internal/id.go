package internal

import "github.com/google/uuid"

// NewRecordID creates a unique ID for a translation history record.
func NewRecordID() string {
	return uuid.NewString()
}
