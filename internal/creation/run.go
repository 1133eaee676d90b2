package creation

import (
	"context"
	"sync"
	"time"

	"github.com/tokentreat/treat-service/internal/domain"
)

// State is a step of the creation state machine
type State string

const (
	StateIdle              State = "IDLE"
	StateQuoting           State = "QUOTING"
	StateApproving         State = "APPROVING"
	StateUploadingImage    State = "UPLOADING_IMAGE"
	StateUploadingMetadata State = "UPLOADING_METADATA"
	StateMinting           State = "MINTING"
	StateSuccess           State = "SUCCESS"
	StateFailed            State = "FAILED"
)

// Terminal reports whether no transition leaves s
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateFailed
}

// transitions lists the states reachable from each state
var transitions = map[State][]State{
	StateIdle:              {StateQuoting, StateFailed},
	StateQuoting:           {StateApproving, StateUploadingImage, StateFailed},
	StateApproving:         {StateUploadingImage, StateFailed},
	StateUploadingImage:    {StateUploadingMetadata, StateFailed},
	StateUploadingMetadata: {StateMinting, StateFailed},
	StateMinting:           {StateSuccess, StateFailed},
}

// CanTransition reports whether from -> to is a legal step
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Run is one persisted execution of the creation state machine
type Run struct {
	ID             string               `json:"id"`
	IdempotencyKey string               `json:"idempotency_key"`
	State          State                `json:"state"`
	Draft          domain.CreationDraft `json:"draft"`
	Quote          *domain.Quote        `json:"quote,omitempty"`
	ImageURI       string               `json:"image_uri,omitempty"`
	MetadataURI    string               `json:"metadata_uri,omitempty"`
	ApprovalTxHash string               `json:"approval_tx_hash,omitempty"`
	MintTxHash     string               `json:"mint_tx_hash,omitempty"`
	Error          string               `json:"error,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// RunStore persists creation runs
//
//go:generate mockgen -source=run.go -destination=../mocks/run_store.go -package=mocks -mock_names=RunStore=MockRunStore
type RunStore interface {
	CreateRun(ctx context.Context, run *Run) error
	UpdateRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
}

type memoryRunStore struct {
	mu   sync.RWMutex
	runs map[string]Run
}

// NewMemoryRunStore creates a process-local run store used when no database is configured
func NewMemoryRunStore() RunStore {
	return &memoryRunStore{runs: make(map[string]Run)}
}

func (s *memoryRunStore) CreateRun(_ context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

func (s *memoryRunStore) UpdateRun(_ context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[run.ID]; !ok {
		return domain.ErrCreationRunNotFound
	}
	s.runs[run.ID] = *run
	return nil
}

func (s *memoryRunStore) GetRun(_ context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrCreationRunNotFound
	}
	return &run, nil
}
