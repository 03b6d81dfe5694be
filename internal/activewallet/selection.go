package activewallet

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletdesk/internal/pkg/logger"
	"github.com/gabapcia/walletdesk/internal/pkg/validator"
)

func (s *service) beginWalletLoad(ctx context.Context) {
	s.mu.Lock()
	s.pendingWalletLoads++
	s.mu.Unlock()

	s.publish(ctx)
}

func (s *service) endWalletLoad(ctx context.Context) {
	s.mu.Lock()
	s.pendingWalletLoads--
	s.mu.Unlock()

	s.publish(ctx)
}

func (s *service) LoadWallets(ctx context.Context) error {
	s.beginWalletLoad(ctx)
	defer s.endWalletLoad(ctx)

	wallets, err := s.api.LoadWallets(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteFetch, err)
	}

	var lastUsed []string

	s.mu.Lock()
	for _, data := range wallets {
		s.wallets.upsert(newWallet(data))
		if data.LastUsed {
			lastUsed = append(lastUsed, data.Address)
		}
	}
	s.mu.Unlock()

	logger.Debug(ctx, "wallets loaded", "wallets.count", len(wallets))

	// The wallet list is already complete here, so a failed first page only
	// affects the selected wallet and is not a failure of LoadWallets.
	for _, address := range lastUsed {
		if err := s.SelectWallet(ctx, address); err != nil {
			logger.Warn(ctx, "failed to open last used wallet", "wallet.address", address, "error", err)
		}
	}

	return nil
}

func (s *service) SelectWallet(ctx context.Context, address string) error {
	s.mu.Lock()
	w, ok := s.wallets.find(address)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrWalletNotFound, address)
	}

	if s.state.SelectedAddress == w.Address {
		s.mu.Unlock()
		return nil
	}

	s.state.SelectedAddress = w.Address
	s.state.SearchLimit = s.initialSearchLimit
	s.state.SearchTerm = ""
	s.mu.Unlock()

	ctx = logger.Derive(ctx, "wallet.address", address)
	logger.Info(ctx, "active wallet changed")

	s.publish(ctx)
	s.navigateHome(ctx, address)

	return s.LoadActiveWalletTransactions(ctx, true)
}

// navigateHome requests the home view of the wallet at address. Navigation is
// a side effect of the operation that triggered it, so failures are only logged.
func (s *service) navigateHome(ctx context.Context, address string) {
	route := WalletHomeRoute(address)
	if err := s.navigator.NavigateTo(ctx, route); err != nil {
		logger.Warn(ctx, "navigation request failed", "route", route, "error", err)
	}
}

func (s *service) CreateWallet(ctx context.Context, data NewWallet) error {
	if err := validator.Validate(data); err != nil {
		return err
	}

	created, err := s.api.CreatePersonalWallet(ctx, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWalletCreation, err)
	}

	s.mu.Lock()
	s.wallets.upsert(newWallet(created))
	s.mu.Unlock()

	logger.Info(ctx, "wallet created", "wallet.address", created.Address, "wallet.currency", created.Currency)
	return s.SelectWallet(ctx, created.Address)
}
