package store

import (
	"context"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// Store defines the mapping tables the ledger core operates on: ownership
// record, balance counters, token approvals and operator approvals, plus the
// event journal. Implementations must give each Transaction callback
// all-or-nothing semantics.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,WebhookStore=MockWebhookStore
type Store interface {
	// OwnerOf returns the current owner of a token, or nil if the token does not exist
	OwnerOf(ctx context.Context, id domain.TokenID) (*domain.AccountID, error)
	// TokenExists reports whether the ownership record contains the token
	TokenExists(ctx context.Context, id domain.TokenID) (bool, error)
	// SetOwner inserts or replaces the owner of a token
	SetOwner(ctx context.Context, id domain.TokenID, owner domain.AccountID) error
	// RemoveOwner deletes the ownership record of a token
	RemoveOwner(ctx context.Context, id domain.TokenID) error

	// BalanceOf returns the balance counter for an account and whether the
	// counter row exists at all. A missing counter is distinct from a zero
	// counter: the former signals a consistency fault on decrement paths.
	BalanceOf(ctx context.Context, account domain.AccountID) (uint64, bool, error)
	// SetBalance inserts or replaces the balance counter for an account
	SetBalance(ctx context.Context, account domain.AccountID, count uint64) error

	// DelegateOf returns the single transfer delegate recorded for a token, or nil
	DelegateOf(ctx context.Context, id domain.TokenID) (*domain.AccountID, error)
	// SetDelegate records the transfer delegate for a token
	SetDelegate(ctx context.Context, id domain.TokenID, delegate domain.AccountID) error
	// RemoveDelegate clears the transfer delegate for a token; removing an
	// absent delegate is not an error
	RemoveDelegate(ctx context.Context, id domain.TokenID) error

	// IsOperator reports whether operator may act on all of owner's tokens
	IsOperator(ctx context.Context, owner, operator domain.AccountID) (bool, error)
	// SetOperator inserts the (owner, operator) grant; inserting an existing
	// grant is not an error
	SetOperator(ctx context.Context, owner, operator domain.AccountID) error
	// RemoveOperator deletes the (owner, operator) grant; removing an absent
	// grant is not an error
	RemoveOperator(ctx context.Context, owner, operator domain.AccountID) error

	// RecordEvent appends a ledger event to the journal
	RecordEvent(ctx context.Context, event *domain.LedgerEvent) error

	// Transaction runs fn against a transactional view of the store. If fn
	// returns an error, no mutation made inside it is kept.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// EventJournal exposes read access to the durable event journal
type EventJournal interface {
	// ListEvents returns journaled events after the given cursor, oldest
	// first, optionally filtered by event type
	ListEvents(ctx context.Context, afterCursor int64, limit int, eventType *domain.EventType) ([]*schema.LedgerEvent, error)
}

// WebhookStore defines persistence for webhook clients and delivery records.
// It is implemented by the Postgres store and consumed by the API server and
// the event bridge.
type WebhookStore interface {
	// CreateWebhookClient registers a new webhook client
	CreateWebhookClient(ctx context.Context, client *schema.WebhookClient) error
	// GetWebhookClientByID retrieves a webhook client by its client id, or nil
	GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error)
	// ListActiveWebhookClients returns active clients whose filters match the
	// given event type (including wildcard filters)
	ListActiveWebhookClients(ctx context.Context, eventType domain.EventType) ([]*schema.WebhookClient, error)
	// CreateWebhookDelivery inserts a delivery record and backfills its ID
	CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error
	// UpdateWebhookDelivery persists the attempt counters and outcome of a delivery
	UpdateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error
}
