package cli

import (
	"testing"
	"time"

	"github.com/gabapcia/walletdesk/internal/activewallet"
	activewallettest "github.com/gabapcia/walletdesk/internal/activewallet/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListTransactionsCommand(t *testing.T) {
	activeWallet := activewallet.Wallet{
		Address:  "addr1",
		Name:     "Main",
		Currency: "ADA",
		Transactions: []activewallet.Transaction{
			{
				ID:          "tx1",
				Sender:      "addr1",
				Receiver:    "addr2",
				Amount:      decimal.RequireFromString("12.5"),
				Currency:    "ADA",
				Description: "rent",
				Date:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}

	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := listTransactionsCommand(activewallettest.NewService(t))

		assert.Equal(t, "transactions", cmd.Name)
		assert.Len(t, cmd.Flags, 3)
	})

	t.Run("prints the first page of the last used wallet", func(t *testing.T) {
		session := activewallettest.NewService(t)
		session.EXPECT().LoadWallets(mock.Anything).Return(nil).Once()
		session.EXPECT().ActiveWallet().Return(activeWallet, true).Once()
		session.EXPECT().State().Return(activewallet.State{TotalAvailableTransactions: 7}).Once()

		out, err := runCommand(t, t.Context(), listTransactionsCommand(session), "transactions")
		require.NoError(t, err)

		assert.Contains(t, out, "tx1")
		assert.Contains(t, out, "2024-03-01 12:00:00")
		assert.Contains(t, out, "12.5 ADA")
		assert.Contains(t, out, "showing 1 of 7 transactions of addr1")
	})

	t.Run("selects, searches and loads more pages", func(t *testing.T) {
		session := activewallettest.NewService(t)
		session.EXPECT().LoadWallets(mock.Anything).Return(nil).Once()
		session.EXPECT().SelectWallet(mock.Anything, "addr1").Return(nil).Once()
		session.EXPECT().SetSearchTerm(mock.Anything, "rent").Return(nil).Once()
		session.EXPECT().LoadMoreTransactions(mock.Anything).Return(nil).Twice()
		session.EXPECT().ActiveWallet().Return(activeWallet, true).Once()
		session.EXPECT().State().Return(activewallet.State{TotalAvailableTransactions: 1}).Once()

		_, err := runCommand(t, t.Context(), listTransactionsCommand(session),
			"transactions", "--wallet", "addr1", "--search", "rent", "--more", "2")
		require.NoError(t, err)
	})

	t.Run("fails without an active wallet", func(t *testing.T) {
		session := activewallettest.NewService(t)
		session.EXPECT().LoadWallets(mock.Anything).Return(nil).Once()
		session.EXPECT().ActiveWallet().Return(activewallet.Wallet{}, false).Once()

		_, err := runCommand(t, t.Context(), listTransactionsCommand(session), "transactions")
		assert.ErrorIs(t, err, activewallet.ErrNoActiveWallet)
	})

	t.Run("stops when a page fails to load", func(t *testing.T) {
		session := activewallettest.NewService(t)
		session.EXPECT().LoadWallets(mock.Anything).Return(nil).Once()
		session.EXPECT().LoadMoreTransactions(mock.Anything).Return(activewallet.ErrRemoteFetch).Once()

		_, err := runCommand(t, t.Context(), listTransactionsCommand(session), "transactions", "--more", "3")
		assert.ErrorIs(t, err, activewallet.ErrRemoteFetch)
	})
}
