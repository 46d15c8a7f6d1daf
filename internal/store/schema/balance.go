package schema

import "time"

// Balance represents the balances table - the per-account token counter.
// For every account the count equals the number of token_owners rows naming
// it; the counter is maintained incrementally, never recomputed by scanning.
// Rows are never deleted: a zero count is a valid terminal state.
type Balance struct {
	// Owner is the hex-encoded account the counter belongs to
	Owner string `gorm:"column:owner;primaryKey;type:varchar(66)"`
	// Count is the number of tokens currently owned
	Count uint64 `gorm:"column:count;not null;type:bigint"`
	// CreatedAt is the timestamp when this counter was created (first mint)
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this counter was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}
