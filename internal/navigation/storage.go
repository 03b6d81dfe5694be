package navigation

import (
	"context"
	"sync"
)

// memoryStorage keeps the route in process memory.
type memoryStorage struct {
	mu    sync.RWMutex
	route string
}

var _ RouteStorage = (*memoryStorage)(nil)

// NewMemoryStorage returns a RouteStorage that lives as long as the process.
func NewMemoryStorage() *memoryStorage {
	return &memoryStorage{}
}

func (m *memoryStorage) SaveRoute(_ context.Context, route string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.route = route
	return nil
}

func (m *memoryStorage) LoadRoute(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.route == "" {
		return "", ErrNoRouteFound
	}
	return m.route, nil
}
