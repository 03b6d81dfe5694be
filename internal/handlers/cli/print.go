package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/gabapcia/walletdesk/internal/activewallet"
)

func newTableWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printWallets(w io.Writer, wallets []activewallet.Wallet, selected string) error {
	tw := newTableWriter(w)
	fmt.Fprintln(tw, "ACTIVE\tADDRESS\tNAME\tCURRENCY\tAMOUNT")

	for _, wallet := range wallets {
		marker := ""
		if wallet.Address == selected {
			marker = "*"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", marker, wallet.Address, wallet.Name, wallet.Currency, wallet.Amount.String())
	}

	return tw.Flush()
}

func printTransactions(w io.Writer, wallet activewallet.Wallet, total int) error {
	tw := newTableWriter(w)
	fmt.Fprintln(tw, "ID\tDATE\tSENDER\tRECEIVER\tAMOUNT\tDESCRIPTION")

	for _, tx := range wallet.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s %s\t%s\n",
			tx.ID,
			tx.Date.Format(time.DateTime),
			tx.Sender,
			tx.Receiver,
			tx.Amount.String(),
			tx.Currency,
			tx.Description,
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "showing %d of %d transactions of %s\n", len(wallet.Transactions), total, wallet.Address)
	return err
}
