package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletdesk/internal/navigation"

	"github.com/redis/go-redis/v9"
)

// navigationKeyPrefix is the namespace prefix for all keys owned by the navigation service.
const navigationKeyPrefix = "navigation"

// navigationRouteKey returns the Redis key holding the current route.
//
//	"navigation:route"
func navigationRouteKey() string {
	return fmt.Sprintf("%s:route", navigationKeyPrefix)
}

// SaveRoute overwrites the current route. The key has no expiration.
func (c *client) SaveRoute(ctx context.Context, route string) error {
	return c.conn.Set(ctx, navigationRouteKey(), route, 0).Err()
}

// LoadRoute returns the current route, or navigation.ErrNoRouteFound when the
// key does not exist.
func (c *client) LoadRoute(ctx context.Context) (string, error) {
	return routeFromResult(c.conn.Get(ctx, navigationRouteKey()).Result())
}

// routeFromResult maps the reply of a GET on the route key, turning a missing
// key into navigation.ErrNoRouteFound.
func routeFromResult(route string, err error) (string, error) {
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = navigation.ErrNoRouteFound
		}

		return "", err
	}

	return route, nil
}

// Compile-time assertion to ensure client implements the RouteStorage interface.
var _ navigation.RouteStorage = new(client)
