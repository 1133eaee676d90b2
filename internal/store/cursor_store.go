package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving sweep cursors
type CursorStore interface {
	// GetSweepCursor retrieves the next treat id to sweep on a chain
	GetSweepCursor(ctx context.Context, chain domain.Chain) (uint64, error)
	// SetSweepCursor stores the next treat id to sweep on a chain
	SetSweepCursor(ctx context.Context, chain domain.Chain, next uint64) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

func sweepCursorKey(chain domain.Chain) string {
	return fmt.Sprintf("burn_sweep_cursor:%s", chain)
}

// GetSweepCursor retrieves the next treat id to sweep on a chain
func (s *cursorStore) GetSweepCursor(ctx context.Context, chain domain.Chain) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", sweepCursorKey(chain)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // A fresh chain starts at id 0
		}
		return 0, fmt.Errorf("failed to get sweep cursor: %w", err)
	}

	next, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse sweep cursor: %w", err)
	}

	return next, nil
}

// SetSweepCursor stores the next treat id to sweep on a chain
func (s *cursorStore) SetSweepCursor(ctx context.Context, chain domain.Chain, next uint64) error {
	kv := schema.KeyValueStore{
		Key:   sweepCursorKey(chain),
		Value: strconv.FormatUint(next, 10),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set sweep cursor: %w", err)
	}

	return nil
}
