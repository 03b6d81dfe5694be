package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletdesk/internal/activewallet"

	"github.com/urfave/cli/v3"
)

// sendMoneyCommand returns a CLI command that submits a payment from a wallet.
//
// Usage example:
//
//	walletdesk send --wallet addr1 --receiver addr2 --amount 12.5 --description rent
func sendMoneyCommand(session activewallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Send money from a wallet.",
		Usage:       "Submits a payment. Must provide both receiver and amount.",
		Flags: []cli.Flag{
			walletFlag(),
			&cli.StringFlag{
				Name:     "receiver",
				Usage:    "Address receiving the payment",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount to send as a decimal number (e.g., 12.5)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Free text attached to the payment",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := openSession(ctx, session, c.String("wallet")); err != nil {
				return err
			}

			err := session.SendMoney(ctx, activewallet.PaymentDetails{
				Receiver:    c.String("receiver"),
				Amount:      c.String("amount"),
				Description: c.String("description"),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "sent %s to %s\n", c.String("amount"), c.String("receiver"))
			return err
		},
	}
}
