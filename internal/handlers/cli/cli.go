package cli

import (
	"context"
	"os"

	"github.com/gabapcia/walletdesk/internal/activewallet"
	"github.com/gabapcia/walletdesk/internal/handlers/bridge"
	"github.com/gabapcia/walletdesk/internal/navigation"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the walletdesk CLI application.
//
// It registers all available commands, including:
//
//   - `wallets`: Lists the user's wallets.
//   - `transactions`: Lists the transactions of a wallet.
//   - `send`: Sends money from a wallet.
//   - `create`: Creates a personal wallet.
//   - `serve`: Runs the HTTP automation bridge.
//   - `route`: Shows or waits for the current application route.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, session activewallet.Service, nav navigation.Service, server bridge.Server) error {
	return newApp(session, nav, server).Run(ctx, os.Args)
}

func newApp(session activewallet.Service, nav navigation.Service, server bridge.Server) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletdesk",
		Description:           "Command-line interface for driving an active wallet session against a wallet backend.",
		Usage:                 "walletdesk [command] [flags]",
		Commands: []*cli.Command{
			listWalletsCommand(session),
			listTransactionsCommand(session),
			sendMoneyCommand(session),
			createWalletCommand(session),
			serveCommand(server),
			routeCommand(nav),
		},
	}
}

// walletFlag selects the wallet a command operates on.
func walletFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "wallet",
		Usage: "Address of the wallet to use (defaults to the last used wallet)",
	}
}

// openSession loads the user's wallets and, when address is set, selects that wallet.
func openSession(ctx context.Context, session activewallet.Service, address string) error {
	if err := session.LoadWallets(ctx); err != nil {
		return err
	}

	if address == "" {
		return nil
	}

	return session.SelectWallet(ctx, address)
}
