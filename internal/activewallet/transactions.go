package activewallet

import (
	"context"
	"fmt"
	"slices"

	"github.com/gabapcia/walletdesk/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	loadOutcomeSuccess    = "success"
	loadOutcomeError      = "error"
	loadOutcomeSuperseded = "superseded"
)

func (s *service) recordTransactionLoad(ctx context.Context, outcome string) {
	s.transactionLoads.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// releaseTransactionLoad clears IsLoadingTransactions unless a newer load was
// issued after the one identified by seq.
func (s *service) releaseTransactionLoad(ctx context.Context, seq uint64) {
	s.mu.Lock()
	if seq == s.txSeq {
		s.state.IsLoadingTransactions = false
	}
	s.mu.Unlock()

	s.publish(ctx)
}

func (s *service) LoadActiveWalletTransactions(ctx context.Context, initial bool) error {
	s.mu.Lock()
	if _, ok := s.activeWallet(); !ok {
		s.mu.Unlock()
		return ErrNoActiveWallet
	}

	s.txSeq++
	seq := s.txSeq
	query := TransactionQuery{
		Address:    s.state.SelectedAddress,
		SearchTerm: s.state.SearchTerm,
		Limit:      s.state.SearchLimit,
	}

	s.state.IsLoadingTransactions = true
	if initial {
		s.state.HasAnyTransactions = false
	}
	s.mu.Unlock()

	s.publish(ctx)
	defer s.releaseTransactionLoad(ctx, seq)

	page, err := s.api.LoadWalletTransactions(ctx, query)
	if err != nil {
		s.recordTransactionLoad(ctx, loadOutcomeError)
		return fmt.Errorf("%w: %w", ErrRemoteFetch, err)
	}

	s.mu.Lock()
	if seq != s.txSeq {
		s.mu.Unlock()

		s.recordTransactionLoad(ctx, loadOutcomeSuperseded)
		logger.Debug(ctx, "discarding superseded transaction page", "wallet.address", query.Address, "load.seq", seq)
		return nil
	}

	if w, ok := s.wallets.find(query.Address); ok {
		w.Transactions = slices.Clone(page.Transactions)
	}
	s.state.TotalAvailableTransactions = page.Total
	if page.Total > 0 {
		s.state.HasAnyTransactions = true
	}
	s.mu.Unlock()

	s.recordTransactionLoad(ctx, loadOutcomeSuccess)
	return nil
}

func (s *service) SetSearchTerm(ctx context.Context, term string) error {
	s.mu.Lock()
	w, ok := s.activeWallet()
	if !ok {
		s.mu.Unlock()
		return ErrNoActiveWallet
	}

	s.state.SearchTerm = term
	w.Transactions = nil
	s.mu.Unlock()

	s.publish(ctx)
	return s.LoadActiveWalletTransactions(ctx, false)
}

func (s *service) LoadMoreTransactions(ctx context.Context) error {
	s.mu.Lock()
	if _, ok := s.activeWallet(); !ok {
		s.mu.Unlock()
		return ErrNoActiveWallet
	}

	s.state.SearchLimit += SearchLimitStep
	s.mu.Unlock()

	s.publish(ctx)
	return s.LoadActiveWalletTransactions(ctx, false)
}
