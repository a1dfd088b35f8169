package stub

import (
	"context"
	"sync"

	"compound-risk-lab/internal/domain"
)

// StubTransferSource returns fixed in-memory transfer sets for testing.
// Implements ingestion.TransferSource interface.
type StubTransferSource struct {
	mu        sync.Mutex
	transfers map[string][]domain.TransferRecord
	errs      map[string]error
	calls     []string
}

// NewStubTransferSource creates a stub source keyed by wallet.
func NewStubTransferSource(transfers map[string][]domain.TransferRecord) *StubTransferSource {
	if transfers == nil {
		transfers = make(map[string][]domain.TransferRecord)
	}
	return &StubTransferSource{
		transfers: transfers,
		errs:      make(map[string]error),
	}
}

// WithError makes Fetch fail for wallet.
func (s *StubTransferSource) WithError(wallet string, err error) *StubTransferSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[wallet] = err
	return s
}

// Fetch returns a copy of the configured transfers for wallet.
// Unknown wallets yield an empty set.
func (s *StubTransferSource) Fetch(_ context.Context, wallet string) (domain.TransferSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, wallet)

	if err, ok := s.errs[wallet]; ok {
		return domain.TransferSet{}, err
	}

	src := s.transfers[wallet]
	out := make([]domain.TransferRecord, len(src))
	copy(out, src)
	return domain.NewTransferSet(out), nil
}

// Calls returns the wallets passed to Fetch, in call order.
func (s *StubTransferSource) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}
