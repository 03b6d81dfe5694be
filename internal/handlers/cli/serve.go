package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/walletdesk/internal/handlers/bridge"

	"github.com/urfave/cli/v3"
)

// serveCommand returns a CLI command that runs the HTTP automation bridge.
//
// Usage example:
//
//	walletdesk serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or ctx is canceled.
func serveCommand(server bridge.Server) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Runs the HTTP automation bridge exposing the active wallet session.",
		Usage:       "Serves the bridge API. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := server.Start(ctx); err != nil {
				return err
			}
			defer server.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}
