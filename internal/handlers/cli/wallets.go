package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletdesk/internal/activewallet"

	"github.com/urfave/cli/v3"
)

// listWalletsCommand returns a CLI command that prints the user's wallets,
// marking the last used one.
//
// Usage example:
//
//	walletdesk wallets
func listWalletsCommand(session activewallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "wallets",
		Description: "List the wallets of the current user.",
		Usage:       "Loads the user's wallets from the backend and prints them.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := session.LoadWallets(ctx); err != nil {
				return err
			}

			return printWallets(c.Root().Writer, session.Wallets(), session.State().SelectedAddress)
		},
	}
}

// createWalletCommand returns a CLI command that creates a personal wallet
// and makes it the active one.
//
// Usage example:
//
//	walletdesk create --name Travel --currency ADA
func createWalletCommand(session activewallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Create a personal wallet.",
		Usage:       "Creates a wallet with the given name and currency. Must provide both name and currency.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Usage:    "Name of the new wallet",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "currency",
				Usage:    "Currency held by the new wallet (e.g., ADA)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			err := session.CreateWallet(ctx, activewallet.NewWallet{
				Name:     c.String("name"),
				Currency: c.String("currency"),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "wallet %s created\n", session.State().SelectedAddress)
			return err
		},
	}
}
