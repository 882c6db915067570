package web

import (
	"sync"
)

func newInFlightGuard() *inFlightGuard {
	return &inFlightGuard{
		keys: make(map[string]struct{}),
	}
}

// inFlightGuard rejects duplicate concurrent operations for the same key.
// Two rapid join submissions from the same session would otherwise race to
// create two pending requests server-side.
type inFlightGuard struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// Begin marks the key as in flight. It returns false when an operation for
// the key is already running.
func (g *inFlightGuard) Begin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.keys[key]; ok {
		return false
	}
	g.keys[key] = struct{}{}
	return true
}

func (g *inFlightGuard) End(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.keys, key)
}
