package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually advanced clock for loop tests
// Sleep advances it instead of blocking, so it can stand in for the level pause
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked instant
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleep advances the clock by d without blocking
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.Advance(d)
}
