package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LedgerEvent represents the ledger_events table - a durable journal of every
// notification emitted by the ledger. Rows are written in the same transaction
// as the state change they describe, so the journal never records a mutation
// that was rolled back.
type LedgerEvent struct {
	// Cursor is an auto-incrementing sequence number for ordering and pagination
	Cursor int64 `gorm:"column:cursor;primaryKey;autoIncrement"`
	// EventID is the ULID assigned by the ledger core
	EventID string `gorm:"column:event_id;not null;unique;type:varchar(26)"`
	// EventType is transfer, approval or approval_for_all
	EventType string `gorm:"column:event_type;not null;type:text;index:idx_ledger_events_type"`
	// TokenID is the token the event concerns (null for approval_for_all)
	TokenID *uint64 `gorm:"column:token_id;index:idx_ledger_events_token"`
	// Payload is the full event as published, JSON encoded
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// CreatedAt is the timestamp when the event was journaled
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerEvent model
func (LedgerEvent) TableName() string {
	return "ledger_events"
}
