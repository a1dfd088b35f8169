// Package pipeline drives wallet scoring: fetch, reduce, score, store.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"compound-risk-lab/internal/alchemy"
	"compound-risk-lab/internal/domain"
	"compound-risk-lab/internal/features"
	"compound-risk-lab/internal/ingestion"
	"compound-risk-lab/internal/observability"
	"compound-risk-lab/internal/scoring"
	"compound-risk-lab/internal/storage"
)

// Fetch failure reasons reported to metrics.
const (
	ReasonInvalidAddress = "invalid_address"
	ReasonRPCError       = "rpc_error"
	ReasonCanceled       = "canceled"
	ReasonTransport      = "transport"
)

// Runner scores wallets one at a time.
type Runner struct {
	source ingestion.TransferSource
	scorer scoring.Scorer
	store  storage.ScoreStore
	logger *log.Logger
	now    func() time.Time
}

// RunnerOptions contains configuration for creating a Runner.
type RunnerOptions struct {
	Source ingestion.TransferSource
	Scorer scoring.Scorer // defaults to scoring.NewRiskScorer()
	Store  storage.ScoreStore
	Logger *log.Logger
}

// NewRunner creates a new Runner.
func NewRunner(opts RunnerOptions) *Runner {
	scorer := opts.Scorer
	if scorer == nil {
		scorer = scoring.NewRiskScorer()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Runner{
		source: opts.Source,
		scorer: scorer,
		store:  opts.Store,
		logger: logger,
		now:    time.Now,
	}
}

// Result contains counters from a Run.
type Result struct {
	WalletsProcessed int
	FetchFailures    int
	Duration         time.Duration
}

// Run scores wallets in order. A failed fetch is scored as an empty history.
// Cancellation stops the run: a wallet whose fetch was interrupted is not stored,
// and the partial result is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, wallets []string) (*Result, error) {
	start := r.now()
	result := &Result{}
	defer func() {
		result.Duration = r.now().Sub(start)
	}()

	total := len(wallets)
	for i, wallet := range wallets {
		if err := ctx.Err(); err != nil {
			r.logger.Printf("Stopping after %d/%d wallets: %v", i, total, err)
			return result, err
		}

		r.logger.Printf("[%d/%d] Processing: %s", i+1, total, wallet)

		ws, err := r.scoreWallet(ctx, wallet)
		if err != nil {
			return result, err
		}

		result.WalletsProcessed++
		if ws.FetchFailed {
			result.FetchFailures++
		}
	}

	return result, nil
}

// scoreWallet fetches, reduces, scores and stores one wallet.
func (r *Runner) scoreWallet(ctx context.Context, wallet string) (*domain.WalletScore, error) {
	set, err := r.source.Fetch(ctx, wallet)
	failed := err != nil
	if failed {
		reason := FailureReason(err)
		// An aborted run is not a provider failure: leave the wallet unscored.
		if reason == ReasonCanceled && ctx.Err() != nil {
			r.logger.Printf("Fetch for %s interrupted: %v", wallet, err)
			return nil, ctx.Err()
		}
		r.logger.Printf("Error fetching transfers for %s (%s): %v", wallet, reason, err)
		observability.RecordFetchFailure(reason)
		set = domain.TransferSet{}
	}

	fv := features.Reduce(set.Transfers)
	ws := &domain.WalletScore{
		WalletID:    wallet,
		Score:       r.scorer.Score(fv),
		Features:    fv,
		FetchFailed: failed,
	}

	if err := r.store.Insert(ctx, ws); err != nil {
		return nil, fmt.Errorf("store score for %s: %w", wallet, err)
	}
	observability.RecordWalletScored(ws.Score)

	return ws, nil
}

// FailureReason classifies a fetch error for metrics labels.
func FailureReason(err error) string {
	var rpcErr *alchemy.RPCError
	switch {
	case errors.Is(err, ingestion.ErrInvalidWallet):
		return ReasonInvalidAddress
	case errors.As(err, &rpcErr):
		return ReasonRPCError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCanceled
	default:
		return ReasonTransport
	}
}
