// Package navigation records the application route requested by the session
// and lets callers observe it. It plays the router's part for the active
// wallet session and for automation clients that wait for a view to open.
package navigation

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/walletdesk/internal/pkg/resilience/retry"
)

var (
	// ErrNoRouteFound is returned by RouteStorage.LoadRoute when no route was saved yet.
	ErrNoRouteFound = errors.New("no route found")

	// ErrInvalidRoute is returned when a route does not start with "/".
	ErrInvalidRoute = errors.New("invalid route")

	// ErrRouteMismatch is returned by WaitUntilRouteEquals when the expected
	// route was not reached in time.
	ErrRouteMismatch = errors.New("route mismatch")
)

// RouteStorage persists the current application route.
type RouteStorage interface {
	// SaveRoute overwrites the current route.
	SaveRoute(ctx context.Context, route string) error

	// LoadRoute returns the current route, or ErrNoRouteFound if none was saved.
	LoadRoute(ctx context.Context) (string, error)
}

// Service navigates between application routes.
type Service interface {
	// NavigateTo makes route the current route.
	NavigateTo(ctx context.Context, route string) error

	// CurrentRoute returns the current route.
	CurrentRoute(ctx context.Context) (string, error)

	// WaitUntilRouteEquals polls the current route until it equals route or
	// the configured attempts are exhausted.
	WaitUntilRouteEquals(ctx context.Context, route string) error
}

type service struct {
	storage RouteStorage
	waiter  retry.Retry
}

var _ Service = (*service)(nil)

type config struct {
	waitAttempts uint
	waitDelay    time.Duration
}

// Option configures the navigation service.
type Option func(*config)

// WithWaitAttempts sets how many times WaitUntilRouteEquals checks the route.
func WithWaitAttempts(n uint) Option {
	return func(c *config) {
		c.waitAttempts = n
	}
}

// WithWaitDelay sets the pause between two route checks.
func WithWaitDelay(d time.Duration) Option {
	return func(c *config) {
		c.waitDelay = d
	}
}

// New creates a navigation service over storage. A nil storage keeps the
// route in memory.
func New(storage RouteStorage, opts ...Option) *service {
	cfg := config{
		waitAttempts: 50,
		waitDelay:    100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if storage == nil {
		storage = NewMemoryStorage()
	}

	return &service{
		storage: storage,
		waiter: retry.New(
			retry.WithAttempts(cfg.waitAttempts),
			retry.WithDelay(cfg.waitDelay),
			retry.WithMaxDelay(cfg.waitDelay),
			retry.WithRetryIf(func(err error) bool {
				return errors.Is(err, ErrRouteMismatch)
			}),
		),
	}
}
