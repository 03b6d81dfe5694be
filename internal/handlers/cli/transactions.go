package cli

import (
	"context"

	"github.com/gabapcia/walletdesk/internal/activewallet"

	"github.com/urfave/cli/v3"
)

// listTransactionsCommand returns a CLI command that prints a page of the
// transactions of a wallet, optionally filtered by a search term.
//
// Usage example:
//
//	walletdesk transactions --wallet addr1 --search coffee --more 2
func listTransactionsCommand(session activewallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "transactions",
		Description: "List the transactions of a wallet.",
		Usage:       "Prints the first page of transactions. Use --more to load additional pages.",
		Flags: []cli.Flag{
			walletFlag(),
			&cli.StringFlag{
				Name:  "search",
				Usage: "Only show transactions matching this term",
			},
			&cli.IntFlag{
				Name:  "more",
				Usage: "Number of additional pages to load",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := openSession(ctx, session, c.String("wallet")); err != nil {
				return err
			}

			if term := c.String("search"); term != "" {
				if err := session.SetSearchTerm(ctx, term); err != nil {
					return err
				}
			}

			for range c.Int("more") {
				if err := session.LoadMoreTransactions(ctx); err != nil {
					return err
				}
			}

			wallet, ok := session.ActiveWallet()
			if !ok {
				return activewallet.ErrNoActiveWallet
			}

			return printTransactions(c.Root().Writer, wallet, session.State().TotalAvailableTransactions)
		},
	}
}
