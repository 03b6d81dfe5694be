package activewallet

import "context"

// State is a snapshot of the session fields observed by the UI.
type State struct {
	SelectedAddress            string `json:"selectedAddress"`
	IsLoading                  bool   `json:"isLoading"`
	IsLoadingTransactions      bool   `json:"isLoadingTransactions"`
	HasAnyTransactions         bool   `json:"hasAnyTransactions"`
	SearchTerm                 string `json:"searchTerm"`
	SearchLimit                int    `json:"searchLimit"`
	TotalAvailableTransactions int    `json:"totalAvailableTransactions"`
}

// StateListener is called with a fresh snapshot after the session state changes.
// It runs on the goroutine that performed the change and must not block.
type StateListener func(ctx context.Context, state State)

// publish hands the current snapshot to the listener, if any.
func (s *service) publish(ctx context.Context) {
	if s.listener == nil {
		return
	}

	s.listener(ctx, s.State())
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	state.IsLoading = s.pendingWalletLoads > 0
	return state
}

func (s *service) Wallets() []Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wallets.list()
}

func (s *service) ActiveWallet() (Wallet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.activeWallet()
	if !ok {
		return Wallet{}, false
	}
	return w.clone(), true
}

// activeWallet returns the selected wallet. s.mu must be held.
func (s *service) activeWallet() (*Wallet, bool) {
	if s.state.SelectedAddress == "" {
		return nil, false
	}

	return s.wallets.find(s.state.SelectedAddress)
}
