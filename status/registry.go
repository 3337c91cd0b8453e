package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry holds run counters shared between the simulation and render goroutines
// Registration uses mutex; cached counter pointers are lock-free
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{counters: make(map[string]*atomic.Int64)}
}

// Counter returns the counter for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	r.mu.RLock()
	if c, ok := r.counters[key]; ok {
		r.mu.RUnlock()
		return c
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counters[key]; ok {
		return c
	}
	c := new(atomic.Int64)
	r.counters[key] = c
	return c
}

// Range visits counters in sorted key order
func (r *Registry) Range(fn func(key string, value int64)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.counters))
	for k := range r.counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, r.counters[k].Load())
	}
}

// LogAttrs flattens counters into alternating key/value pairs for slog
func (r *Registry) LogAttrs() []any {
	var attrs []any
	r.Range(func(key string, value int64) {
		attrs = append(attrs, key, value)
	})
	return attrs
}
