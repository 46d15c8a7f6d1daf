package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// PGStore is the PostgreSQL-backed Store. It also implements WebhookStore and
// EventJournal.
type PGStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) *PGStore {
	return &PGStore{db: db}
}

// Migrate creates or updates all ledger tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.TokenOwner{},
		&schema.Balance{},
		&schema.TokenApproval{},
		&schema.OperatorApproval{},
		&schema.LedgerEvent{},
		&schema.WebhookClient{},
		&schema.WebhookDelivery{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m max lifetime, 10m max idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// OwnerOf returns the current owner of a token, or nil if the token does not exist
func (s *PGStore) OwnerOf(ctx context.Context, id domain.TokenID) (*domain.AccountID, error) {
	var row schema.TokenOwner
	err := s.db.WithContext(ctx).Where("token_id = ?", uint64(id)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token owner: %w", err)
	}

	owner, err := domain.ParseAccountID(row.Owner)
	if err != nil {
		return nil, fmt.Errorf("corrupt owner column for token %d: %w", uint64(id), err)
	}
	return &owner, nil
}

// TokenExists reports whether the ownership record contains the token
func (s *PGStore) TokenExists(ctx context.Context, id domain.TokenID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.TokenOwner{}).
		Where("token_id = ?", uint64(id)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check token existence: %w", err)
	}
	return count > 0, nil
}

// SetOwner inserts or replaces the owner of a token
func (s *PGStore) SetOwner(ctx context.Context, id domain.TokenID, owner domain.AccountID) error {
	row := schema.TokenOwner{
		TokenID: uint64(id),
		Owner:   owner.String(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"owner": owner.String(), "updated_at": gorm.Expr("now()")}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to set token owner: %w", err)
	}
	return nil
}

// RemoveOwner deletes the ownership record of a token
func (s *PGStore) RemoveOwner(ctx context.Context, id domain.TokenID) error {
	err := s.db.WithContext(ctx).
		Where("token_id = ?", uint64(id)).
		Delete(&schema.TokenOwner{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove token owner: %w", err)
	}
	return nil
}

// BalanceOf returns the balance counter for an account and whether the counter row exists
func (s *PGStore) BalanceOf(ctx context.Context, account domain.AccountID) (uint64, bool, error) {
	var row schema.Balance
	err := s.db.WithContext(ctx).Where("owner = ?", account.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get balance: %w", err)
	}
	return row.Count, true, nil
}

// SetBalance inserts or replaces the balance counter for an account
func (s *PGStore) SetBalance(ctx context.Context, account domain.AccountID, count uint64) error {
	row := schema.Balance{
		Owner: account.String(),
		Count: count,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": count, "updated_at": gorm.Expr("now()")}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}
	return nil
}

// DelegateOf returns the single transfer delegate recorded for a token, or nil
func (s *PGStore) DelegateOf(ctx context.Context, id domain.TokenID) (*domain.AccountID, error) {
	var row schema.TokenApproval
	err := s.db.WithContext(ctx).Where("token_id = ?", uint64(id)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token delegate: %w", err)
	}

	delegate, err := domain.ParseAccountID(row.Delegate)
	if err != nil {
		return nil, fmt.Errorf("corrupt delegate column for token %d: %w", uint64(id), err)
	}
	return &delegate, nil
}

// SetDelegate records the transfer delegate for a token
func (s *PGStore) SetDelegate(ctx context.Context, id domain.TokenID, delegate domain.AccountID) error {
	row := schema.TokenApproval{
		TokenID:  uint64(id),
		Delegate: delegate.String(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to set token delegate: %w", err)
	}
	return nil
}

// RemoveDelegate clears the transfer delegate for a token
func (s *PGStore) RemoveDelegate(ctx context.Context, id domain.TokenID) error {
	err := s.db.WithContext(ctx).
		Where("token_id = ?", uint64(id)).
		Delete(&schema.TokenApproval{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove token delegate: %w", err)
	}
	return nil
}

// IsOperator reports whether operator may act on all of owner's tokens
func (s *PGStore) IsOperator(ctx context.Context, owner, operator domain.AccountID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.OperatorApproval{}).
		Where("owner = ? AND operator = ?", owner.String(), operator.String()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check operator approval: %w", err)
	}
	return count > 0, nil
}

// SetOperator inserts the (owner, operator) grant
func (s *PGStore) SetOperator(ctx context.Context, owner, operator domain.AccountID) error {
	row := schema.OperatorApproval{
		Owner:    owner.String(),
		Operator: operator.String(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to set operator approval: %w", err)
	}
	return nil
}

// RemoveOperator deletes the (owner, operator) grant
func (s *PGStore) RemoveOperator(ctx context.Context, owner, operator domain.AccountID) error {
	err := s.db.WithContext(ctx).
		Where("owner = ? AND operator = ?", owner.String(), operator.String()).
		Delete(&schema.OperatorApproval{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove operator approval: %w", err)
	}
	return nil
}

// RecordEvent appends a ledger event to the journal
func (s *PGStore) RecordEvent(ctx context.Context, event *domain.LedgerEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	row := schema.LedgerEvent{
		EventID:   event.EventID,
		EventType: string(event.EventType),
		Payload:   payload,
	}
	if event.TokenID != nil {
		tokenID := uint64(*event.TokenID)
		row.TokenID = &tokenID
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// ListEvents returns journaled events after the given cursor, oldest first
func (s *PGStore) ListEvents(ctx context.Context, afterCursor int64, limit int, eventType *domain.EventType) ([]*schema.LedgerEvent, error) {
	query := s.db.WithContext(ctx).Model(&schema.LedgerEvent{}).
		Where("cursor > ?", afterCursor).
		Order("cursor ASC").
		Limit(limit)
	if eventType != nil {
		query = query.Where("event_type = ?", string(*eventType))
	}

	var rows []*schema.LedgerEvent
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return rows, nil
}

// Transaction runs fn inside a database transaction
func (s *PGStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PGStore{db: tx})
	})
}

// CreateWebhookClient registers a new webhook client
func (s *PGStore) CreateWebhookClient(ctx context.Context, client *schema.WebhookClient) error {
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("failed to create webhook client: %w", err)
	}
	return nil
}

// GetWebhookClientByID retrieves a webhook client by its client id, or nil
func (s *PGStore) GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error) {
	var client schema.WebhookClient
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook client: %w", err)
	}
	return &client, nil
}

// ListActiveWebhookClients returns active clients whose filters match the event type
func (s *PGStore) ListActiveWebhookClients(ctx context.Context, eventType domain.EventType) ([]*schema.WebhookClient, error) {
	var clients []*schema.WebhookClient
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("event_filters @> ? OR event_filters @> ?",
			fmt.Sprintf(`["%s"]`, string(eventType)),
			fmt.Sprintf(`["%s"]`, string(domain.EventTypeWildcard))).
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook clients: %w", err)
	}
	return clients, nil
}

// CreateWebhookDelivery inserts a delivery record and backfills its ID
func (s *PGStore) CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error {
	if err := s.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return fmt.Errorf("failed to create webhook delivery: %w", err)
	}
	return nil
}

// UpdateWebhookDelivery persists the attempt counters and outcome of a delivery
func (s *PGStore) UpdateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error {
	if err := s.db.WithContext(ctx).Save(delivery).Error; err != nil {
		return fmt.Errorf("failed to update webhook delivery: %w", err)
	}
	return nil
}
