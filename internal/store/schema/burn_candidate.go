package schema

import (
	"time"
)

// BurnCandidate represents the burn_candidates table - treat ids that were
// burn eligible when last swept. Status is re-derived on every read.
type BurnCandidate struct {
	// Chain identifies the blockchain network (CAIP-2)
	Chain string `gorm:"column:chain;primaryKey;type:text"`
	// TokenID is the treat NFT id (numeric to support uint256)
	TokenID string `gorm:"column:token_id;primaryKey;type:numeric(78,0)"`
	// Expiry is the last seen expiry of the treat
	Expiry time.Time `gorm:"column:expiry;not null;type:timestamptz"`
	// StatusCode is the last seen raw on-chain status
	StatusCode int16 `gorm:"column:status_code;not null"`
	// CreatedAt is the timestamp when the id was first indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last sweep that saw the id
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BurnCandidate model
func (BurnCandidate) TableName() string {
	return "burn_candidates"
}
