package rest

import (
	"fmt"
	"net/url"
	"time"

	"github.com/feral-file/nft-ledger/internal/api/apierrors"
	"github.com/feral-file/nft-ledger/internal/domain"
)

// MintRequest is the request body for minting a token
type MintRequest struct {
	TokenID domain.TokenID `json:"token_id"`
}

// BurnRequest is the request body for burning a token
type BurnRequest struct {
	TokenID domain.TokenID `json:"token_id"`
}

// TransferRequest is the request body for transferring a caller-owned token
type TransferRequest struct {
	TokenID domain.TokenID `json:"token_id"`
	To      string         `json:"to"`
}

// TransferFromRequest is the request body for a delegated transfer
type TransferFromRequest struct {
	TokenID domain.TokenID `json:"token_id"`
	From    string         `json:"from"`
	To      string         `json:"to"`
}

// ApproveRequest is the request body for recording a token delegate
type ApproveRequest struct {
	TokenID domain.TokenID `json:"token_id"`
	To      string         `json:"to"`
}

// ApprovalForAllRequest is the request body for granting or revoking an operator
type ApprovalForAllRequest struct {
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

// BalanceResponse reports an account's token count
type BalanceResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

// OwnerResponse reports a token's current owner and recorded delegate
type OwnerResponse struct {
	TokenID  domain.TokenID `json:"token_id"`
	Owner    string         `json:"owner"`
	Delegate *string        `json:"delegate,omitempty"`
}

// OperatorResponse reports whether an operator grant exists
type OperatorResponse struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

// EventResponse is one journaled ledger event
type EventResponse struct {
	Cursor    int64            `json:"cursor"`
	EventID   string           `json:"event_id"`
	EventType domain.EventType `json:"event_type"`
	TokenID   *uint64          `json:"token_id,omitempty"`
	Payload   interface{}      `json:"payload"`
	CreatedAt time.Time        `json:"created_at"`
}

// ListEventsResponse is a page of journaled ledger events
type ListEventsResponse struct {
	Events     []EventResponse `json:"events"`
	NextCursor int64           `json:"next_cursor"`
}

// CreateWebhookClientRequest is the request body for registering a webhook client
type CreateWebhookClientRequest struct {
	WebhookURL       string   `json:"webhook_url"`
	EventFilters     []string `json:"event_filters"`
	RetryMaxAttempts *int     `json:"retry_max_attempts,omitempty"`
}

// Validate checks the webhook client registration request. HTTPS is required
// outside debug mode.
func (r *CreateWebhookClientRequest) Validate(debug bool) error {
	if r.WebhookURL == "" {
		return apierrors.NewValidationError("webhook_url is required")
	}

	parsed, err := url.Parse(r.WebhookURL)
	if err != nil || parsed.Host == "" {
		return apierrors.NewValidationError("webhook_url must be a valid URL")
	}
	if !debug && parsed.Scheme != "https" {
		return apierrors.NewValidationError("webhook_url must be a valid HTTPS URL")
	}

	if len(r.EventFilters) == 0 {
		return apierrors.NewValidationError("event_filters is required")
	}
	for _, filter := range r.EventFilters {
		if !domain.ValidEventFilter(domain.EventType(filter)) {
			return apierrors.NewValidationError(fmt.Sprintf("unsupported event type: %s", filter))
		}
	}

	if r.RetryMaxAttempts != nil && *r.RetryMaxAttempts <= 0 {
		return apierrors.NewValidationError("retry_max_attempts must be positive")
	}

	return nil
}

// CreateWebhookClientResponse returns the registered client's id and its
// signing secret. The secret is only returned at registration time.
type CreateWebhookClientResponse struct {
	ClientID      string `json:"client_id"`
	WebhookSecret string `json:"webhook_secret"`
}
