package activewallet

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletdesk/internal/pkg/logger"
	"github.com/gabapcia/walletdesk/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

// PaymentDetails is a payment as entered by the user. Amount is a decimal
// string such as "12.5".
type PaymentDetails struct {
	Receiver    string `validate:"required"`
	Amount      string `validate:"required,positive_decimal"`
	Description string
}

func (s *service) SendMoney(ctx context.Context, details PaymentDetails) error {
	if err := validator.Validate(details); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(details.Amount)
	if err != nil {
		return err
	}

	s.mu.Lock()
	w, ok := s.activeWallet()
	if !ok {
		s.mu.Unlock()
		return ErrNoActiveWallet
	}
	sender, currency := w.Address, w.Currency
	s.mu.Unlock()

	ctx = logger.Derive(ctx, "wallet.address", sender)

	tx, err := s.api.SendMoney(ctx, PaymentRequest{
		Receiver:    details.Receiver,
		Amount:      amount.InexactFloat64(),
		Description: details.Description,
		Sender:      sender,
		Currency:    currency,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPaymentSubmission, err)
	}

	s.mu.Lock()
	if w, ok := s.wallets.find(sender); ok {
		w.Transactions = append(w.Transactions, tx)
	}
	s.mu.Unlock()

	logger.Info(ctx, "payment submitted", "transaction.id", tx.ID, "transaction.receiver", tx.Receiver)

	s.publish(ctx)
	s.navigateHome(ctx, sender)

	return s.LoadActiveWalletTransactions(ctx, false)
}
