package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/adapter"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// Signature header names sent with every delivery
const (
	HeaderSignature = "X-Ledger-Signature"
	HeaderTimestamp = "X-Ledger-Timestamp"
	HeaderEventID   = "X-Ledger-Event-ID"
)

// Config holds deliverer configuration
type Config struct {
	// PoolSize is the maximum number of concurrent deliveries
	PoolSize int
	// QueueSize is the number of pending deliveries the pool buffers
	QueueSize int
	// InitialRetryWait is the first retry interval; subsequent waits back off
	// exponentially
	InitialRetryWait time.Duration
	// DefaultMaxAttempts is used when a client has no retry budget configured
	DefaultMaxAttempts int
}

// Deliverer fans ledger events out to registered webhook clients over a
// bounded worker pool, retrying failed deliveries with exponential backoff
// and recording every outcome.
type Deliverer struct {
	store  store.WebhookStore
	http   adapter.HTTPClient
	clock  adapter.Clock
	config Config
	pool   pond.Pool
}

// NewDeliverer creates a webhook deliverer
func NewDeliverer(st store.WebhookStore, httpClient adapter.HTTPClient, clock adapter.Clock, cfg Config) *Deliverer {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 10
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.InitialRetryWait <= 0 {
		cfg.InitialRetryWait = 5 * time.Second
	}
	if cfg.DefaultMaxAttempts <= 0 {
		cfg.DefaultMaxAttempts = 5
	}

	return &Deliverer{
		store:  st,
		http:   httpClient,
		clock:  clock,
		config: cfg,
		pool:   pond.NewPool(cfg.PoolSize, pond.WithQueueSize(cfg.QueueSize)),
	}
}

// Dispatch queues the event for delivery to every active client whose filters
// match its type. Queuing is fire-and-forget; per-client outcomes are
// recorded in webhook_deliveries.
func (d *Deliverer) Dispatch(ctx context.Context, event *domain.LedgerEvent) error {
	clients, err := d.store.ListActiveWebhookClients(ctx, event.EventType)
	if err != nil {
		return fmt.Errorf("failed to list webhook clients: %w", err)
	}

	if len(clients) == 0 {
		logger.Debug("No webhook clients for event type", zap.String("event_type", string(event.EventType)))
		return nil
	}

	for _, client := range clients {
		client := client
		d.pool.Submit(func() {
			d.deliver(ctx, client, event)
		})
	}

	return nil
}

// StopAndWait drains the pool, letting queued deliveries finish
func (d *Deliverer) StopAndWait() {
	d.pool.StopAndWait()
}

// deliver signs the event and POSTs it to one client, retrying per the
// client's retry budget
func (d *Deliverer) deliver(ctx context.Context, client *schema.WebhookClient, event *domain.LedgerEvent) {
	payload, signature, timestamp, err := GenerateSignedPayload(client.WebhookSecret, event, d.clock.Now())
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("client_id", client.ClientID),
			zap.String("event_id", event.EventID))
		return
	}

	delivery := &schema.WebhookDelivery{
		ClientID:  client.ClientID,
		EventID:   event.EventID,
		EventType: string(event.EventType),
		Payload:   payload,
	}
	if err := d.store.CreateWebhookDelivery(ctx, delivery); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("client_id", client.ClientID),
			zap.String("event_id", event.EventID))
		return
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		HeaderSignature: signature,
		HeaderTimestamp: fmt.Sprintf("%d", timestamp),
		HeaderEventID:   event.EventID,
	}

	maxAttempts := client.RetryMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = d.config.DefaultMaxAttempts
	}

	operation := func() error {
		delivery.Attempts++

		status, body, err := d.http.Post(ctx, client.WebhookURL, headers, payload)
		delivery.StatusCode = status
		if err != nil {
			delivery.LastError = err.Error()
			return err
		}

		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			delivery.Success = true
			delivery.LastError = ""
			return nil
		}

		deliveryErr := fmt.Errorf("unexpected status code %d: %s", status, string(body))
		delivery.LastError = deliveryErr.Error()

		// Client errors other than rate limiting will not heal on retry
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError && status != http.StatusTooManyRequests {
			return backoff.Permanent(deliveryErr)
		}
		return deliveryErr
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = d.config.InitialRetryWait
	err = backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(maxAttempts-1)), ctx)) //nolint:gosec,G115

	if err != nil {
		logger.WarnCtx(ctx, "webhook delivery failed",
			zap.String("client_id", client.ClientID),
			zap.String("event_id", event.EventID),
			zap.Int("attempts", delivery.Attempts),
			zap.Error(err))
	} else {
		logger.InfoCtx(ctx, "webhook delivered",
			zap.String("client_id", client.ClientID),
			zap.String("event_id", event.EventID),
			zap.Int("status", delivery.StatusCode))
	}

	if err := d.store.UpdateWebhookDelivery(ctx, delivery); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("client_id", client.ClientID),
			zap.String("event_id", event.EventID))
	}
}
