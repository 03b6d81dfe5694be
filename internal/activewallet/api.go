package activewallet

import "context"

// TransactionQuery selects a page of a wallet's transactions.
type TransactionQuery struct {
	Address    string
	SearchTerm string
	Limit      int
}

// TransactionPage is the result of a TransactionQuery. Total is the number of
// transactions matching the query on the backend, regardless of Limit.
type TransactionPage struct {
	Transactions []Transaction
	Total        int
}

// PaymentRequest is the payment submitted to the wallet backend.
type PaymentRequest struct {
	Receiver    string
	Amount      float64
	Description string
	Sender      string
	Currency    string
}

// NewWallet describes a personal wallet to be created.
type NewWallet struct {
	Name     string `validate:"required"`
	Currency string `validate:"required"`
}

// WalletAPI is the remote wallet backend the session talks to.
type WalletAPI interface {
	// LoadWallets returns every wallet of the current user.
	LoadWallets(ctx context.Context) ([]WalletData, error)

	// LoadWalletTransactions returns the transactions of query.Address that
	// match query.SearchTerm, at most query.Limit of them.
	LoadWalletTransactions(ctx context.Context, query TransactionQuery) (TransactionPage, error)

	// SendMoney submits a payment and returns the resulting transaction.
	SendMoney(ctx context.Context, req PaymentRequest) (Transaction, error)

	// CreatePersonalWallet creates a wallet and returns it.
	CreatePersonalWallet(ctx context.Context, data NewWallet) (WalletData, error)
}
