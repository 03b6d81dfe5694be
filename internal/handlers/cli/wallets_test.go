package cli

import (
	"errors"
	"testing"

	"github.com/gabapcia/walletdesk/internal/activewallet"
	activewallettest "github.com/gabapcia/walletdesk/internal/activewallet/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListWalletsCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := listWalletsCommand(activewallettest.NewService(t))

		assert.Equal(t, "wallets", cmd.Name)
		assert.Len(t, cmd.Flags, 0)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("prints every wallet and marks the active one", func(t *testing.T) {
		session := activewallettest.NewService(t)
		session.EXPECT().LoadWallets(mock.Anything).Return(nil).Once()
		session.EXPECT().Wallets().Return([]activewallet.Wallet{
			{Address: "addr1", Name: "Main", Currency: "ADA", Amount: decimal.RequireFromString("100")},
			{Address: "addr2", Name: "Savings", Currency: "ADA", Amount: decimal.RequireFromString("5.5")},
		}).Once()
		session.EXPECT().State().Return(activewallet.State{SelectedAddress: "addr2"}).Once()

		out, err := runCommand(t, t.Context(), listWalletsCommand(session), "wallets")
		require.NoError(t, err)

		assert.Contains(t, out, "ADDRESS")
		assert.Regexp(t, `(?m)^\s+addr1\s+Main\s+ADA\s+100$`, out)
		assert.Regexp(t, `(?m)^\*\s+addr2\s+Savings\s+ADA\s+5\.5$`, out)
	})

	t.Run("should return error when loading fails", func(t *testing.T) {
		session := activewallettest.NewService(t)
		expectedError := errors.New("backend offline")
		session.EXPECT().LoadWallets(mock.Anything).Return(expectedError).Once()

		_, err := runCommand(t, t.Context(), listWalletsCommand(session), "wallets")
		assert.ErrorIs(t, err, expectedError)
	})
}

func TestCreateWalletCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := createWalletCommand(activewallettest.NewService(t))

		assert.Equal(t, "create", cmd.Name)
		assert.Len(t, cmd.Flags, 2)
	})

	t.Run("creates the wallet", func(t *testing.T) {
		session := activewallettest.NewService(t)
		session.EXPECT().CreateWallet(mock.Anything, activewallet.NewWallet{Name: "Travel", Currency: "ADA"}).Return(nil).Once()
		session.EXPECT().State().Return(activewallet.State{SelectedAddress: "addr3"}).Once()

		out, err := runCommand(t, t.Context(), createWalletCommand(session), "create", "--name", "Travel", "--currency", "ADA")
		require.NoError(t, err)
		assert.Equal(t, "wallet addr3 created\n", out)
	})

	t.Run("should fail when required flags are missing", func(t *testing.T) {
		session := activewallettest.NewService(t)

		_, err := runCommand(t, t.Context(), createWalletCommand(session), "create", "--name", "Travel")
		assert.Error(t, err)
	})

	t.Run("should return error when creation fails", func(t *testing.T) {
		session := activewallettest.NewService(t)
		session.EXPECT().CreateWallet(mock.Anything, mock.Anything).Return(activewallet.ErrWalletCreation).Once()

		_, err := runCommand(t, t.Context(), createWalletCommand(session), "create", "--name", "Travel", "--currency", "ADA")
		assert.ErrorIs(t, err, activewallet.ErrWalletCreation)
	})
}
