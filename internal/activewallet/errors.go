package activewallet

import "errors"

var (
	// ErrRemoteFetch is returned when loading wallets or transactions from the backend fails.
	ErrRemoteFetch = errors.New("failed to fetch from wallet backend")

	// ErrWalletNotFound is returned when selecting an address missing from the user's wallets.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNoActiveWallet is returned by operations that need a selected wallet.
	ErrNoActiveWallet = errors.New("no active wallet")

	// ErrPaymentSubmission is returned when the backend rejects a payment.
	ErrPaymentSubmission = errors.New("payment submission failed")

	// ErrWalletCreation is returned when the backend rejects a wallet creation.
	ErrWalletCreation = errors.New("wallet creation failed")
)
