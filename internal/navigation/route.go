package navigation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/walletdesk/internal/pkg/logger"
)

func (s *service) NavigateTo(ctx context.Context, route string) error {
	if !strings.HasPrefix(route, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidRoute, route)
	}

	if err := s.storage.SaveRoute(ctx, route); err != nil {
		return err
	}

	logger.Debug(ctx, "route changed", "route", route)
	return nil
}

func (s *service) CurrentRoute(ctx context.Context) (string, error) {
	return s.storage.LoadRoute(ctx)
}

func (s *service) WaitUntilRouteEquals(ctx context.Context, route string) error {
	return s.waiter.Execute(ctx, func() error {
		current, err := s.storage.LoadRoute(ctx)
		if err != nil && !errors.Is(err, ErrNoRouteFound) {
			return err
		}

		if current != route {
			return fmt.Errorf("%w: want %q, got %q", ErrRouteMismatch, route, current)
		}

		return nil
	})
}

// RouteFromURL extracts the application route from a hash-routed URL such as
// "file:///app/index.html#/wallet/addr1/home". URLs without "#/" are returned
// unchanged.
func RouteFromURL(rawURL string) string {
	if i := strings.Index(rawURL, "#/"); i >= 0 {
		return rawURL[i+1:]
	}

	return rawURL
}
