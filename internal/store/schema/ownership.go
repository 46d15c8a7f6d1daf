package schema

import "time"

// TokenOwner represents the token_owners table - the ownership record mapping
// each token id to its single current owner. Absence of a row means the token
// does not exist (never minted, or burned).
type TokenOwner struct {
	// TokenID is the token identifier
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// Owner is the hex-encoded account currently holding the token
	Owner string `gorm:"column:owner;not null;type:varchar(66);index:idx_token_owners_owner"`
	// CreatedAt is the timestamp when this row was created (mint time)
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated (last transfer)
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenOwner model
func (TokenOwner) TableName() string {
	return "token_owners"
}
