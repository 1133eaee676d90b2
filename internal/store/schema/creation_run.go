package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CreationRun represents the creation_runs table - one row per execution of the creation state machine
type CreationRun struct {
	// ID is the run identifier (uuid)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// IdempotencyKey is the draft hash or the caller-supplied key
	IdempotencyKey string `gorm:"column:idempotency_key;not null;type:text;index"`
	// State is the current step of the state machine
	State string `gorm:"column:state;not null;type:text"`
	// Draft is the snapshot of the user-entered fields
	Draft datatypes.JSON `gorm:"column:draft;not null;type:jsonb"`
	// Quote is the fee breakdown used for the run, null before quoting
	Quote datatypes.JSON `gorm:"column:quote;type:jsonb"`
	// ImageURI is the ipfs:// URI of the uploaded image
	ImageURI *string `gorm:"column:image_uri;type:text"`
	// MetadataURI is the ipfs:// URI of the uploaded metadata document
	MetadataURI *string `gorm:"column:metadata_uri;type:text"`
	// ApprovalTxHash is the hash of the ERC-20 approve transaction, if one was sent
	ApprovalTxHash *string `gorm:"column:approval_tx_hash;type:text"`
	// MintTxHash is the hash of the mint transaction
	MintTxHash *string `gorm:"column:mint_tx_hash;type:text"`
	// ErrorMessage is the user-facing failure message
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// CreatedAt is the timestamp when the run started
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last transition
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CreationRun model
func (CreationRun) TableName() string {
	return "creation_runs"
}
