package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/store/schema"
)

type pgStore struct {
	CursorStore
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{CursorStore: NewCursorStore(db), db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 1 hour
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = time.Hour
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// MaxIdleConns must not exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// =============================================================================
// Creation runs
// =============================================================================

func toCreationRunRow(run *creation.Run) (*schema.CreationRun, error) {
	draft, err := json.Marshal(run.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft: %w", err)
	}

	row := &schema.CreationRun{
		ID:             run.ID,
		IdempotencyKey: run.IdempotencyKey,
		State:          string(run.State),
		Draft:          draft,
		ImageURI:       nullable(run.ImageURI),
		MetadataURI:    nullable(run.MetadataURI),
		ApprovalTxHash: nullable(run.ApprovalTxHash),
		MintTxHash:     nullable(run.MintTxHash),
		ErrorMessage:   nullable(run.Error),
		CreatedAt:      run.CreatedAt,
		UpdatedAt:      run.UpdatedAt,
	}
	if run.Quote != nil {
		quote, err := json.Marshal(run.Quote)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal quote: %w", err)
		}
		row.Quote = quote
	}

	return row, nil
}

func fromCreationRunRow(row *schema.CreationRun) (*creation.Run, error) {
	run := &creation.Run{
		ID:             row.ID,
		IdempotencyKey: row.IdempotencyKey,
		State:          creation.State(row.State),
		ImageURI:       deref(row.ImageURI),
		MetadataURI:    deref(row.MetadataURI),
		ApprovalTxHash: deref(row.ApprovalTxHash),
		MintTxHash:     deref(row.MintTxHash),
		Error:          deref(row.ErrorMessage),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Draft, &run.Draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	if len(row.Quote) > 0 && string(row.Quote) != "null" {
		var quote domain.Quote
		if err := json.Unmarshal(row.Quote, &quote); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quote: %w", err)
		}
		run.Quote = &quote
	}

	return run, nil
}

// CreateRun inserts a new creation run
func (s *pgStore) CreateRun(ctx context.Context, run *creation.Run) error {
	row, err := toCreationRunRow(run)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create creation run: %w", err)
	}

	return nil
}

// UpdateRun overwrites the mutable columns of an existing creation run
func (s *pgStore) UpdateRun(ctx context.Context, run *creation.Run) error {
	row, err := toCreationRunRow(run)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&schema.CreationRun{}).
		Where("id = ?", run.ID).
		Updates(map[string]interface{}{
			"state":            row.State,
			"quote":            row.Quote,
			"image_uri":        row.ImageURI,
			"metadata_uri":     row.MetadataURI,
			"approval_tx_hash": row.ApprovalTxHash,
			"mint_tx_hash":     row.MintTxHash,
			"error_message":    row.ErrorMessage,
			"updated_at":       row.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update creation run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCreationRunNotFound
	}

	return nil
}

// GetRun retrieves a creation run by id
func (s *pgStore) GetRun(ctx context.Context, id string) (*creation.Run, error) {
	var row schema.CreationRun
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCreationRunNotFound
		}
		return nil, fmt.Errorf("failed to get creation run: %w", err)
	}

	return fromCreationRunRow(&row)
}

// =============================================================================
// Burn index
// =============================================================================

// UpsertBurnCandidates inserts or refreshes burn index rows
func (s *pgStore) UpsertBurnCandidates(ctx context.Context, candidates []BurnCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]schema.BurnCandidate, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, schema.BurnCandidate{
			Chain:      string(c.Chain),
			TokenID:    c.ID.String(),
			Expiry:     c.Expiry.UTC(),
			StatusCode: int16(c.StatusCode),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chain"}, {Name: "token_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"expiry", "status_code", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert burn candidates: %w", err)
	}

	return nil
}

// ListBurnCandidateIDs returns candidate ids of chain ordered by id
func (s *pgStore) ListBurnCandidateIDs(ctx context.Context, chain domain.Chain, offset, limit int) ([]*big.Int, error) {
	var tokenIDs []string
	err := s.db.WithContext(ctx).
		Model(&schema.BurnCandidate{}).
		Where("chain = ?", string(chain)).
		Order("token_id ASC").
		Offset(offset).
		Limit(limit).
		Pluck("token_id", &tokenIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list burn candidates: %w", err)
	}

	ids := make([]*big.Int, 0, len(tokenIDs))
	for _, raw := range tokenIDs {
		id, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return nil, fmt.Errorf("invalid burn candidate id: %s", raw)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// RemoveBurnCandidate deletes id from the burn index of chain
func (s *pgStore) RemoveBurnCandidate(ctx context.Context, chain domain.Chain, id *big.Int) error {
	return s.RemoveBurnCandidates(ctx, chain, []*big.Int{id})
}

// RemoveBurnCandidates deletes ids from the burn index of chain
func (s *pgStore) RemoveBurnCandidates(ctx context.Context, chain domain.Chain, ids []*big.Int) error {
	if len(ids) == 0 {
		return nil
	}

	tokenIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		tokenIDs = append(tokenIDs, id.String())
	}

	err := s.db.WithContext(ctx).
		Where("chain = ? AND token_id IN ?", string(chain), tokenIDs).
		Delete(&schema.BurnCandidate{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove burn candidates: %w", err)
	}

	return nil
}

// PruneBurnCandidatesFrom deletes every id >= from from the burn index of chain
func (s *pgStore) PruneBurnCandidatesFrom(ctx context.Context, chain domain.Chain, from *big.Int) error {
	err := s.db.WithContext(ctx).
		Where("chain = ? AND token_id >= ?::numeric", string(chain), from.String()).
		Delete(&schema.BurnCandidate{}).Error
	if err != nil {
		return fmt.Errorf("failed to prune burn candidates: %w", err)
	}

	return nil
}

// CountBurnCandidates returns the size of the burn index of chain
func (s *pgStore) CountBurnCandidates(ctx context.Context, chain domain.Chain) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.BurnCandidate{}).
		Where("chain = ?", string(chain)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count burn candidates: %w", err)
	}

	return count, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
