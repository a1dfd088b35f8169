package storage

import (
	"context"

	"compound-risk-lab/internal/domain"
)

// ScoreStore collects wallet scores for the current run.
type ScoreStore interface {
	// Insert adds a score. Returns ErrDuplicateKey if the wallet was already scored,
	// ErrInvalidInput for a nil score or empty wallet.
	Insert(ctx context.Context, s *domain.WalletScore) error

	// GetByWallet retrieves a wallet's score. Returns ErrNotFound if not exists.
	GetByWallet(ctx context.Context, wallet string) (*domain.WalletScore, error)

	// GetAll retrieves all scores in insertion order.
	GetAll(ctx context.Context) ([]*domain.WalletScore, error)
}
