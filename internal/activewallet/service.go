// Package activewallet implements the active-wallet session: which wallet the
// user has selected, which page of its transactions is loaded, and the
// payments and wallet creations issued from it. The session mediates between
// the remote wallet backend and the observable UI state.
package activewallet

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	// DefaultInitialSearchLimit is the transaction page size used right after a wallet is selected.
	DefaultInitialSearchLimit = 20

	// SearchLimitStep is how much LoadMoreTransactions grows the page size.
	SearchLimitStep = 10

	meterName = "github.com/gabapcia/walletdesk/internal/activewallet"
)

// Service is the active-wallet session.
//
// Every method is safe for concurrent use. Backend calls are never made while
// holding the session lock, and transaction loads are sequenced so that only
// the most recently issued load updates the state.
type Service interface {
	// LoadWallets fetches the user's wallets, adds them to the collection and
	// selects the ones flagged as last used.
	LoadWallets(ctx context.Context) error

	// SelectWallet makes the wallet at address the active one. Selecting the
	// active wallet again does nothing.
	SelectWallet(ctx context.Context, address string) error

	// LoadActiveWalletTransactions replaces the active wallet's transactions
	// with the page described by the current search term and limit.
	LoadActiveWalletTransactions(ctx context.Context, initial bool) error

	// SendMoney submits a payment from the active wallet.
	SendMoney(ctx context.Context, details PaymentDetails) error

	// CreateWallet creates a personal wallet and selects it.
	CreateWallet(ctx context.Context, data NewWallet) error

	// SetSearchTerm filters the active wallet's transactions by term.
	SetSearchTerm(ctx context.Context, term string) error

	// LoadMoreTransactions grows the page size by SearchLimitStep and reloads.
	LoadMoreTransactions(ctx context.Context) error

	// State returns a snapshot of the observable session fields.
	State() State

	// Wallets returns a copy of the user's wallets in the order they were added.
	Wallets() []Wallet

	// ActiveWallet returns a copy of the selected wallet, if any.
	ActiveWallet() (Wallet, bool)
}

type service struct {
	mu                 sync.Mutex
	wallets            walletCollection
	state              State
	pendingWalletLoads int
	txSeq              uint64

	api                WalletAPI
	navigator          Navigator
	listener           StateListener
	initialSearchLimit int
	transactionLoads   metric.Int64Counter
}

var _ Service = (*service)(nil)

type config struct {
	initialSearchLimit int
	navigator          Navigator
	listener           StateListener
}

// Option configures the session.
type Option func(*config)

// WithInitialSearchLimit sets the page size used after a wallet is selected.
// Non-positive values are ignored.
func WithInitialSearchLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.initialSearchLimit = n
		}
	}
}

// WithNavigator sets the router receiving navigation requests.
func WithNavigator(n Navigator) Option {
	return func(c *config) {
		c.navigator = n
	}
}

// WithStateListener registers a callback invoked after every state change.
func WithStateListener(l StateListener) Option {
	return func(c *config) {
		c.listener = l
	}
}

// New creates a session backed by api. Without options it uses
// DefaultInitialSearchLimit and discards navigation requests.
func New(api WalletAPI, opts ...Option) *service {
	cfg := config{
		initialSearchLimit: DefaultInitialSearchLimit,
		navigator:          nopNavigator{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	loads, err := otel.Meter(meterName).Int64Counter(
		"activewallet.transaction_loads",
		metric.WithDescription("Transaction page loads by outcome"),
	)
	if err != nil {
		loads = noop.Int64Counter{}
	}

	return &service{
		wallets: newWalletCollection(),
		state: State{
			SearchLimit: cfg.initialSearchLimit,
		},
		api:                api,
		navigator:          cfg.navigator,
		listener:           cfg.listener,
		initialSearchLimit: cfg.initialSearchLimit,
		transactionLoads:   loads,
	}
}
