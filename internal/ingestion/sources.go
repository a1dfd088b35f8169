package ingestion

import (
	"context"
	"errors"

	"compound-risk-lab/internal/alchemy"
	"compound-risk-lab/internal/domain"
)

// ErrInvalidWallet is returned for wallet identifiers that are not hex addresses.
var ErrInvalidWallet = errors.New("invalid wallet address")

// TransferSource provides a wallet's protocol transfer history.
type TransferSource interface {
	// Fetch returns transfers sent by wallet to the tracked contracts.
	// On error the returned set is empty and still safe to score.
	Fetch(ctx context.Context, wallet string) (domain.TransferSet, error)
}

// TransferClient is the subset of the Alchemy client used by CompoundSource.
type TransferClient interface {
	GetAssetTransfers(ctx context.Context, params alchemy.AssetTransfersParams) (*alchemy.AssetTransfersPage, error)
}
