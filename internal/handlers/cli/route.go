package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletdesk/internal/navigation"

	"github.com/urfave/cli/v3"
)

// routeCommand returns a CLI command grouping the route inspection subcommands.
//
// Usage example:
//
//	walletdesk route show
//	walletdesk route wait --route /wallet/addr1/home
func routeCommand(nav navigation.Service) *cli.Command {
	return &cli.Command{
		Name:        "route",
		Description: "Inspect the current application route.",
		Usage:       "Shows the current route or waits until an expected route is reached.",
		Commands: []*cli.Command{
			showRouteCommand(nav),
			waitRouteCommand(nav),
		},
	}
}

func showRouteCommand(nav navigation.Service) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Prints the current route.",
		Action: func(ctx context.Context, c *cli.Command) error {
			route, err := nav.CurrentRoute(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, route)
			return err
		},
	}
}

func waitRouteCommand(nav navigation.Service) *cli.Command {
	return &cli.Command{
		Name:  "wait",
		Usage: "Blocks until the current route equals the given one.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "route",
				Usage:    "Expected route, or a hash routed URL (e.g., /wallet/addr1/home)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			route := navigation.RouteFromURL(c.String("route"))
			if err := nav.WaitUntilRouteEquals(ctx, route); err != nil {
				return err
			}

			_, err := fmt.Fprintf(c.Root().Writer, "route %s reached\n", route)
			return err
		},
	}
}
