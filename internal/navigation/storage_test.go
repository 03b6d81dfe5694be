package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()

	_, err := storage.LoadRoute(t.Context())
	assert.ErrorIs(t, err, ErrNoRouteFound)

	require.NoError(t, storage.SaveRoute(t.Context(), "/wallets"))
	require.NoError(t, storage.SaveRoute(t.Context(), "/settings"))

	route, err := storage.LoadRoute(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "/settings", route)
}
