package schema

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookDelivery represents the webhook_deliveries table - one row per
// delivery attempt sequence of a ledger event to a webhook client
type WebhookDelivery struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ClientID references the webhook client the event was delivered to
	ClientID string `gorm:"column:client_id;not null;type:varchar(36);index:idx_webhook_deliveries_client"`
	// EventID is the ULID of the delivered ledger event
	EventID string `gorm:"column:event_id;not null;type:varchar(26);index:idx_webhook_deliveries_event"`
	// EventType is the type of the delivered event
	EventType string `gorm:"column:event_type;not null;type:text"`
	// Payload is the signed JSON body that was sent
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// Attempts is the number of HTTP attempts made
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// StatusCode is the HTTP status of the final attempt (0 if none completed)
	StatusCode int `gorm:"column:status_code;not null;default:0"`
	// Success indicates whether the delivery eventually succeeded
	Success bool `gorm:"column:success;not null;default:false"`
	// LastError contains error details of the final failed attempt, if any
	LastError string `gorm:"column:last_error;type:text"`
	// CreatedAt is the timestamp when the delivery was first attempted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the most recent attempt
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WebhookDelivery model
func (WebhookDelivery) TableName() string {
	return "webhook_deliveries"
}
