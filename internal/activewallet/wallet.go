package activewallet

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable payment record belonging to a wallet.
type Transaction struct {
	ID          string
	Sender      string
	Receiver    string
	Amount      decimal.Decimal
	Currency    string
	Description string
	Date        time.Time
}

// WalletData is a wallet as reported by the wallet backend.
type WalletData struct {
	Address  string
	Name     string
	Currency string
	Amount   decimal.Decimal
	LastUsed bool
}

// Wallet is a user wallet together with the transactions loaded for it.
type Wallet struct {
	Address      string
	Name         string
	Currency     string
	Amount       decimal.Decimal
	LastUsed     bool
	Transactions []Transaction
}

func newWallet(data WalletData) *Wallet {
	return &Wallet{
		Address:  data.Address,
		Name:     data.Name,
		Currency: data.Currency,
		Amount:   data.Amount,
		LastUsed: data.LastUsed,
	}
}

// clone returns a copy that shares no mutable state with w.
func (w *Wallet) clone() Wallet {
	c := *w
	c.Transactions = slices.Clone(w.Transactions)
	return c
}

// walletCollection holds the user's wallets in insertion order, keyed by address.
type walletCollection struct {
	order     []string
	byAddress map[string]*Wallet
}

func newWalletCollection() walletCollection {
	return walletCollection{byAddress: make(map[string]*Wallet)}
}

// upsert adds w to the collection. When a wallet with the same address is
// already stored, its metadata is refreshed in place and its transactions are
// kept. The stored wallet is returned.
func (c *walletCollection) upsert(w *Wallet) *Wallet {
	stored, ok := c.byAddress[w.Address]
	if !ok {
		c.order = append(c.order, w.Address)
		c.byAddress[w.Address] = w
		return w
	}

	stored.Name = w.Name
	stored.Currency = w.Currency
	stored.Amount = w.Amount
	stored.LastUsed = w.LastUsed
	return stored
}

func (c *walletCollection) find(address string) (*Wallet, bool) {
	w, ok := c.byAddress[address]
	return w, ok
}

func (c *walletCollection) list() []Wallet {
	wallets := make([]Wallet, 0, len(c.order))
	for _, address := range c.order {
		wallets = append(wallets, c.byAddress[address].clone())
	}
	return wallets
}
