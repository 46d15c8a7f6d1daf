package domain

import (
	"time"
)

// EventType represents the type of ledger event
type EventType string

const (
	EventTypeTransfer       EventType = "transfer"
	EventTypeApproval       EventType = "approval"
	EventTypeApprovalForAll EventType = "approval_for_all"

	// EventTypeWildcard matches all event types in webhook client filters
	EventTypeWildcard EventType = "*"
)

// ValidEventFilter reports whether t can appear in a webhook client's event
// filter list
func ValidEventFilter(t EventType) bool {
	switch t {
	case EventTypeTransfer, EventTypeApproval, EventTypeApprovalForAll, EventTypeWildcard:
		return true
	}
	return false
}

// LedgerEvent is a notification emitted on every ownership or approval change.
// It is constructed by the ledger core and handed to the messaging layer; the
// core never depends on a live event transport.
//
// Field usage by event type:
//   - transfer: From (nil for mint), To (nil for burn), TokenID
//   - approval: From (granting caller), To (delegate), TokenID
//   - approval_for_all: Owner, Operator, Approved
type LedgerEvent struct {
	// EventID is a ULID, unique and time-sortable
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`

	From     *AccountID `json:"from,omitempty"`
	To       *AccountID `json:"to,omitempty"`
	Owner    *AccountID `json:"owner,omitempty"`
	Operator *AccountID `json:"operator,omitempty"`
	Approved *bool      `json:"approved,omitempty"`
	TokenID  *TokenID   `json:"token_id,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// NewTransferEvent builds a transfer notification. A nil from means the token
// was minted; a nil to means it was burned.
func NewTransferEvent(eventID string, from, to *AccountID, id TokenID, at time.Time) *LedgerEvent {
	return &LedgerEvent{
		EventID:   eventID,
		EventType: EventTypeTransfer,
		From:      from,
		To:        to,
		TokenID:   &id,
		Timestamp: at,
	}
}

// NewApprovalEvent builds a single-token approval notification
func NewApprovalEvent(eventID string, from, to AccountID, id TokenID, at time.Time) *LedgerEvent {
	return &LedgerEvent{
		EventID:   eventID,
		EventType: EventTypeApproval,
		From:      &from,
		To:        &to,
		TokenID:   &id,
		Timestamp: at,
	}
}

// NewApprovalForAllEvent builds an operator approval notification
func NewApprovalForAllEvent(eventID string, owner, operator AccountID, approved bool, at time.Time) *LedgerEvent {
	return &LedgerEvent{
		EventID:   eventID,
		EventType: EventTypeApprovalForAll,
		Owner:     &owner,
		Operator:  &operator,
		Approved:  &approved,
		Timestamp: at,
	}
}
