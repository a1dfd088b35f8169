package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"compound-risk-lab/internal/alchemy"
	"compound-risk-lab/internal/domain"
	"compound-risk-lab/internal/observability"
	"compound-risk-lab/internal/wallets"
)

// CompoundSource fetches a wallet's interactions with the Compound V2 contracts.
type CompoundSource struct {
	client    TransferClient
	contracts []string
	maxPages  int
	pageSize  uint64
	logger    *log.Logger
}

// CompoundSourceOptions contains configuration for creating a CompoundSource.
type CompoundSourceOptions struct {
	Client    TransferClient
	Contracts []domain.Contract // defaults to domain.CompoundContracts
	MaxPages  int               // defaults to 1
	PageSize  uint64            // defaults to alchemy.DefaultMaxCount
	Logger    *log.Logger
}

// NewCompoundSource creates a new CompoundSource.
func NewCompoundSource(opts CompoundSourceOptions) *CompoundSource {
	contracts := opts.Contracts
	if len(contracts) == 0 {
		contracts = domain.CompoundContracts
	}

	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}

	pageSize := opts.PageSize
	if pageSize == 0 {
		pageSize = alchemy.DefaultMaxCount
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &CompoundSource{
		client:    opts.Client,
		contracts: domain.ContractAddresses(contracts),
		maxPages:  maxPages,
		pageSize:  pageSize,
		logger:    logger,
	}
}

// Compile-time interface check.
var _ TransferSource = (*CompoundSource)(nil)

// Fetch pages through alchemy_getAssetTransfers until the provider reports no
// further pages or maxPages is reached. Any failure discards partial results.
func (s *CompoundSource) Fetch(ctx context.Context, wallet string) (domain.TransferSet, error) {
	if !wallets.Valid(wallet) {
		return domain.TransferSet{}, fmt.Errorf("%w: %q", ErrInvalidWallet, wallet)
	}

	var transfers []domain.TransferRecord
	pageKey := ""

	for page := 0; page < s.maxPages; page++ {
		result, err := s.client.GetAssetTransfers(ctx, alchemy.AssetTransfersParams{
			FromAddress:       wallet,
			ContractAddresses: s.contracts,
			Categories:        alchemy.LendingCategories,
			WithMetadata:      true,
			ExcludeZeroValue:  false,
			MaxCount:          s.pageSize,
			PageKey:           pageKey,
		})
		if err != nil {
			return domain.TransferSet{}, fmt.Errorf("fetch transfers page %d: %w", page+1, err)
		}

		transfers = append(transfers, result.Transfers...)

		if result.PageKey == "" {
			break
		}
		pageKey = result.PageKey

		if page+1 == s.maxPages {
			s.logTruncation(wallet, transfers)
		}
	}

	observability.RecordTransfersFetched(len(transfers))
	return domain.NewTransferSet(transfers), nil
}

// logTruncation reports a wallet whose history exceeds maxPages, including the
// last transfer kept so the cut-off point can be located.
func (s *CompoundSource) logTruncation(wallet string, kept []domain.TransferRecord) {
	last := "none"
	if len(kept) > 0 {
		if data, err := json.Marshal(kept[len(kept)-1]); err == nil {
			last = string(data)
		}
	}
	s.logger.Printf("Wallet %s has more transfers than %d page(s); truncating at %d, last kept: %s",
		wallet, s.maxPages, len(kept), last)
}
