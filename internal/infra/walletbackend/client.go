// Package walletbackend implements the activewallet.WalletAPI interface on top
// of a JSON-RPC connection to the wallet backend.
package walletbackend

import (
	"github.com/gabapcia/walletdesk/internal/activewallet"
	"github.com/gabapcia/walletdesk/internal/pkg/transport/jsonrpc"
)

const (
	methodLoadWallets            = "wallets_loadWallets"
	methodLoadWalletTransactions = "wallets_loadWalletTransactions"
	methodSendMoney              = "wallets_sendMoney"
	methodCreatePersonalWallet   = "wallets_createPersonalWallet"
)

// client implements the activewallet.WalletAPI interface.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to reach the backend
}

// Ensure client implements the activewallet.WalletAPI interface at compile time.
var _ activewallet.WalletAPI = (*client)(nil)

// NewClient creates a wallet backend client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
