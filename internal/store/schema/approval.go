package schema

import "time"

// TokenApproval represents the token_approvals table - the single transfer
// delegate recorded for a token. A row may exist only for an existing token
// and is cleared whenever the token changes hands.
type TokenApproval struct {
	// TokenID is the token the delegation applies to
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// Delegate is the hex-encoded account authorized to transfer the token
	Delegate string `gorm:"column:delegate;not null;type:varchar(66)"`
	// CreatedAt is the timestamp when the approval was granted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenApproval model
func (TokenApproval) TableName() string {
	return "token_approvals"
}

// OperatorApproval represents the operator_approvals table - the set of
// (owner, operator) pairs meaning "operator may act on all of owner's
// tokens". No implicit expiry; rows are removed only by explicit revoke.
type OperatorApproval struct {
	// Owner is the hex-encoded granting account
	Owner string `gorm:"column:owner;primaryKey;type:varchar(66)"`
	// Operator is the hex-encoded account granted blanket authority
	Operator string `gorm:"column:operator;primaryKey;type:varchar(66)"`
	// CreatedAt is the timestamp when the grant was made
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OperatorApproval model
func (OperatorApproval) TableName() string {
	return "operator_approvals"
}
