package activewallet

import (
	"context"
	"fmt"
)

// Navigator receives the navigation requests issued by the session.
type Navigator interface {
	NavigateTo(ctx context.Context, path string) error
}

// WalletHomeRoute is the route of the home view of the wallet at address.
func WalletHomeRoute(address string) string {
	return fmt.Sprintf("/wallet/%s/home", address)
}

type nopNavigator struct{}

func (nopNavigator) NavigateTo(context.Context, string) error { return nil }
