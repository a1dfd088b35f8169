package memory

import (
	"context"
	"sync"

	"compound-risk-lab/internal/domain"
	"compound-risk-lab/internal/storage"
)

// ScoreStore is an in-memory implementation of storage.ScoreStore.
type ScoreStore struct {
	mu    sync.RWMutex
	data  map[string]*domain.WalletScore // keyed by wallet
	order []string                       // wallets in insertion order
}

// NewScoreStore creates a new in-memory score store.
func NewScoreStore() *ScoreStore {
	return &ScoreStore{
		data: make(map[string]*domain.WalletScore),
	}
}

// Insert adds a score. Returns ErrDuplicateKey if the wallet was already scored.
func (s *ScoreStore) Insert(_ context.Context, score *domain.WalletScore) error {
	if score == nil || score.WalletID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[score.WalletID]; exists {
		return storage.ErrDuplicateKey
	}

	scoreCopy := *score
	s.data[score.WalletID] = &scoreCopy
	s.order = append(s.order, score.WalletID)
	return nil
}

// GetByWallet retrieves a wallet's score. Returns ErrNotFound if not exists.
func (s *ScoreStore) GetByWallet(_ context.Context, wallet string) (*domain.WalletScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	score, ok := s.data[wallet]
	if !ok {
		return nil, storage.ErrNotFound
	}
	scoreCopy := *score
	return &scoreCopy, nil
}

// GetAll retrieves all scores in insertion order.
func (s *ScoreStore) GetAll(_ context.Context) ([]*domain.WalletScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.WalletScore, 0, len(s.order))
	for _, wallet := range s.order {
		scoreCopy := *s.data[wallet]
		result = append(result, &scoreCopy)
	}
	return result, nil
}

var _ storage.ScoreStore = (*ScoreStore)(nil)
