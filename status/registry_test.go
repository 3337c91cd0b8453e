package status

import (
	"sync"
	"testing"
)

func TestRegistryCounterCached(t *testing.T) {
	r := NewRegistry()
	a := r.Counter("engine.ticks")
	b := r.Counter("engine.ticks")
	if a != b {
		t.Error("Counter returned different pointers for the same key")
	}
}

func TestRegistryConcurrentAdds(t *testing.T) {
	r := NewRegistry()

	const workers = 50
	const adds = 200
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < adds; j++ {
				r.Counter("render.writes").Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Counter("render.writes").Load(); got != workers*adds {
		t.Errorf("counter = %d, want %d", got, workers*adds)
	}
}

func TestRegistryRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Counter("b").Store(2)
	r.Counter("a").Store(1)

	var keys []string
	r.Range(func(key string, value int64) {
		keys = append(keys, key)
	})
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys = %v, want [a b]", keys)
	}

	attrs := r.LogAttrs()
	if len(attrs) != 4 || attrs[0] != "a" || attrs[1] != int64(1) {
		t.Errorf("LogAttrs = %v", attrs)
	}
}
