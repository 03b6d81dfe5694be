package walletbackend

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gabapcia/walletdesk/internal/activewallet"

	"github.com/shopspring/decimal"
)

type (
	// TransactionResponse is a transaction as returned by the backend.
	TransactionResponse struct {
		ID          string          `json:"id"`
		Sender      string          `json:"sender"`
		Receiver    string          `json:"receiver"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
		Description string          `json:"description"`
		Date        time.Time       `json:"date"`
	}

	// TransactionPageResponse is the result of wallets_loadWalletTransactions.
	TransactionPageResponse struct {
		Transactions []TransactionResponse `json:"transactions"`
		Total        int                   `json:"total"`
	}

	// TransactionQueryParams is the payload of wallets_loadWalletTransactions.
	TransactionQueryParams struct {
		Address    string `json:"address"`
		SearchTerm string `json:"searchTerm"`
		Limit      int    `json:"limit"`
	}

	// PaymentParams is the payload of wallets_sendMoney.
	PaymentParams struct {
		Receiver    string  `json:"receiver"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		Sender      string  `json:"sender"`
		Currency    string  `json:"currency"`
	}
)

// toTransaction converts a TransactionResponse to an activewallet.Transaction.
func (t TransactionResponse) toTransaction() activewallet.Transaction {
	return activewallet.Transaction{
		ID:          t.ID,
		Sender:      t.Sender,
		Receiver:    t.Receiver,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Description: t.Description,
		Date:        t.Date,
	}
}

// toTransactionPage converts a TransactionPageResponse to an activewallet.TransactionPage.
func (p TransactionPageResponse) toTransactionPage() activewallet.TransactionPage {
	transactions := make([]activewallet.Transaction, len(p.Transactions))
	for i, t := range p.Transactions {
		transactions[i] = t.toTransaction()
	}

	return activewallet.TransactionPage{
		Transactions: transactions,
		Total:        p.Total,
	}
}

// LoadWalletTransactions implements the activewallet.WalletAPI interface.
func (c *client) LoadWalletTransactions(ctx context.Context, query activewallet.TransactionQuery) (activewallet.TransactionPage, error) {
	data, err := c.conn.Fetch(ctx, methodLoadWalletTransactions, TransactionQueryParams{
		Address:    query.Address,
		SearchTerm: query.SearchTerm,
		Limit:      query.Limit,
	})
	if err != nil {
		return activewallet.TransactionPage{}, err
	}

	var resp TransactionPageResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return activewallet.TransactionPage{}, err
	}

	return resp.toTransactionPage(), nil
}

// SendMoney implements the activewallet.WalletAPI interface.
func (c *client) SendMoney(ctx context.Context, req activewallet.PaymentRequest) (activewallet.Transaction, error) {
	data, err := c.conn.Fetch(ctx, methodSendMoney, PaymentParams{
		Receiver:    req.Receiver,
		Amount:      req.Amount,
		Description: req.Description,
		Sender:      req.Sender,
		Currency:    req.Currency,
	})
	if err != nil {
		return activewallet.Transaction{}, err
	}

	var resp TransactionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return activewallet.Transaction{}, err
	}

	return resp.toTransaction(), nil
}
