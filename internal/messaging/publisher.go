package messaging

import (
	"context"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// Publisher defines the interface for publishing ledger events to the
// external event-delivery transport
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a ledger event to the message broker
	PublishEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close closes the connection
	Close()
}

// NoopPublisher discards events; used when the ledger runs without a broker
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event
func NewNoopPublisher() Publisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishEvent(_ context.Context, _ *domain.LedgerEvent) error {
	return nil
}

func (p *NoopPublisher) Close() {}
