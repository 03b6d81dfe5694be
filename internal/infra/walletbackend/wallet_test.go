package walletbackend

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gabapcia/walletdesk/internal/activewallet"
	jsonrpctest "github.com/gabapcia/walletdesk/internal/pkg/transport/jsonrpc/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_LoadWallets(t *testing.T) {
	t.Run("decodes wallets with numeric and string amounts", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "wallets_loadWallets").Return(json.RawMessage(`[
			{"address":"addr1","name":"Main","currency":"ADA","amount":100.25,"lastUsed":false},
			{"address":"addr2","name":"Savings","currency":"ADA","amount":"5.5","lastUsed":true}
		]`), nil).Once()

		wallets, err := NewClient(conn).LoadWallets(t.Context())
		require.NoError(t, err)
		require.Len(t, wallets, 2)

		assert.Equal(t, "addr1", wallets[0].Address)
		assert.Equal(t, "Main", wallets[0].Name)
		assert.Equal(t, "100.25", wallets[0].Amount.String())
		assert.False(t, wallets[0].LastUsed)

		assert.Equal(t, "addr2", wallets[1].Address)
		assert.Equal(t, "5.5", wallets[1].Amount.String())
		assert.True(t, wallets[1].LastUsed)
	})

	t.Run("returns an empty list", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "wallets_loadWallets").Return(json.RawMessage(`[]`), nil).Once()

		wallets, err := NewClient(conn).LoadWallets(t.Context())
		require.NoError(t, err)
		assert.Empty(t, wallets)
	})

	t.Run("propagates connection errors", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		fetchErr := errors.New("connection reset")
		conn.EXPECT().Fetch(mock.Anything, "wallets_loadWallets").Return(nil, fetchErr).Once()

		wallets, err := NewClient(conn).LoadWallets(t.Context())
		assert.ErrorIs(t, err, fetchErr)
		assert.Nil(t, wallets)
	})

	t.Run("fails on malformed results", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "wallets_loadWallets").Return(json.RawMessage(`{"address":1}`), nil).Once()

		_, err := NewClient(conn).LoadWallets(t.Context())
		assert.Error(t, err)
	})
}

func TestClient_CreatePersonalWallet(t *testing.T) {
	t.Run("sends name and currency and decodes the created wallet", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().
			Fetch(mock.Anything, "wallets_createPersonalWallet", CreateWalletParams{Name: "Travel", Currency: "ADA"}).
			Return(json.RawMessage(`{"address":"addr3","name":"Travel","currency":"ADA","amount":0}`), nil).
			Once()

		wallet, err := NewClient(conn).CreatePersonalWallet(t.Context(), activewallet.NewWallet{Name: "Travel", Currency: "ADA"})
		require.NoError(t, err)
		assert.Equal(t, "addr3", wallet.Address)
		assert.Equal(t, "Travel", wallet.Name)
		assert.True(t, wallet.Amount.IsZero())
	})

	t.Run("propagates backend rejections", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		fetchErr := errors.New("name taken")
		conn.EXPECT().Fetch(mock.Anything, "wallets_createPersonalWallet", mock.Anything).Return(nil, fetchErr).Once()

		_, err := NewClient(conn).CreatePersonalWallet(t.Context(), activewallet.NewWallet{Name: "Travel", Currency: "ADA"})
		assert.ErrorIs(t, err, fetchErr)
	})
}
