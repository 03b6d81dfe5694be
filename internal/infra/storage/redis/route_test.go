package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/walletdesk/internal/navigation"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commandStub answers every command in place of the server.
type commandStub func(cmd redis.Cmder) error

func (h commandStub) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h commandStub) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		return h(cmd)
	}
}

func (h commandStub) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func newStubbedClient(stub commandStub) *client {
	conn := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	conn.AddHook(stub)

	return &client{conn: conn}
}

func TestNavigationRouteKey(t *testing.T) {
	assert.Equal(t, "navigation:route", navigationRouteKey())
}

func TestNewClient(t *testing.T) {
	t.Run("fails when the server is unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
		defer cancel()

		c, err := NewClient(ctx, "127.0.0.1:1", "", "", 0)
		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestRouteFromResult(t *testing.T) {
	t.Run("returns the stored route", func(t *testing.T) {
		route, err := routeFromResult("/wallet/addr1/home", nil)
		require.NoError(t, err)
		assert.Equal(t, "/wallet/addr1/home", route)
	})

	t.Run("maps a missing key to ErrNoRouteFound", func(t *testing.T) {
		route, err := routeFromResult("", redis.Nil)
		assert.ErrorIs(t, err, navigation.ErrNoRouteFound)
		assert.Empty(t, route)
	})

	t.Run("returns other errors unchanged", func(t *testing.T) {
		expectedError := errors.New("connection reset")

		route, err := routeFromResult("ignored", expectedError)
		assert.ErrorIs(t, err, expectedError)
		assert.NotErrorIs(t, err, navigation.ErrNoRouteFound)
		assert.Empty(t, route)
	})
}

func TestClient_SaveRoute(t *testing.T) {
	t.Run("sets the route key without expiration", func(t *testing.T) {
		var args []any
		c := newStubbedClient(func(cmd redis.Cmder) error {
			args = cmd.Args()
			return nil
		})

		require.NoError(t, c.SaveRoute(t.Context(), "/wallet/addr1/home"))
		assert.Equal(t, []any{"set", "navigation:route", "/wallet/addr1/home"}, args)
	})

	t.Run("should return error when the write fails", func(t *testing.T) {
		expectedError := errors.New("READONLY")
		c := newStubbedClient(func(redis.Cmder) error { return expectedError })

		assert.ErrorIs(t, c.SaveRoute(t.Context(), "/settings"), expectedError)
	})
}

func TestClient_LoadRoute(t *testing.T) {
	t.Run("reads the route key", func(t *testing.T) {
		var args []any
		c := newStubbedClient(func(cmd redis.Cmder) error {
			args = cmd.Args()
			cmd.(*redis.StringCmd).SetVal("/wallet/addr1/home")
			return nil
		})

		route, err := c.LoadRoute(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "/wallet/addr1/home", route)
		assert.Equal(t, []any{"get", "navigation:route"}, args)
	})

	t.Run("returns ErrNoRouteFound when nothing was saved", func(t *testing.T) {
		c := newStubbedClient(func(redis.Cmder) error { return redis.Nil })

		_, err := c.LoadRoute(t.Context())
		assert.ErrorIs(t, err, navigation.ErrNoRouteFound)
	})
}
