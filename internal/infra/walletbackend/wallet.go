package walletbackend

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/walletdesk/internal/activewallet"

	"github.com/shopspring/decimal"
)

type (
	// WalletResponse is a wallet as returned by the backend.
	WalletResponse struct {
		Address  string          `json:"address"`
		Name     string          `json:"name"`
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
		LastUsed bool            `json:"lastUsed"`
	}

	// CreateWalletParams is the payload of wallets_createPersonalWallet.
	CreateWalletParams struct {
		Name     string `json:"name"`
		Currency string `json:"currency"`
	}
)

// toWalletData converts a WalletResponse to an activewallet.WalletData.
func (w WalletResponse) toWalletData() activewallet.WalletData {
	return activewallet.WalletData{
		Address:  w.Address,
		Name:     w.Name,
		Currency: w.Currency,
		Amount:   w.Amount,
		LastUsed: w.LastUsed,
	}
}

// LoadWallets implements the activewallet.WalletAPI interface.
func (c *client) LoadWallets(ctx context.Context) ([]activewallet.WalletData, error) {
	data, err := c.conn.Fetch(ctx, methodLoadWallets)
	if err != nil {
		return nil, err
	}

	var resp []WalletResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	wallets := make([]activewallet.WalletData, len(resp))
	for i, w := range resp {
		wallets[i] = w.toWalletData()
	}

	return wallets, nil
}

// CreatePersonalWallet implements the activewallet.WalletAPI interface.
func (c *client) CreatePersonalWallet(ctx context.Context, data activewallet.NewWallet) (activewallet.WalletData, error) {
	raw, err := c.conn.Fetch(ctx, methodCreatePersonalWallet, CreateWalletParams{
		Name:     data.Name,
		Currency: data.Currency,
	})
	if err != nil {
		return activewallet.WalletData{}, err
	}

	var resp WalletResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return activewallet.WalletData{}, err
	}

	return resp.toWalletData(), nil
}
