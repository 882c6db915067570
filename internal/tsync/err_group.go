package tsync

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrorGroup is an errgroup variant that collects every task error instead of
// keeping only the first one, and that never cancels the group context on
// failure. Tasks are independent; one failing must not abort its siblings.
type ErrorGroup struct {
	eg     errgroup.Group
	cancel context.CancelFunc

	mu   sync.Mutex
	errs []error
}

// ErrorGroupWithContext returns a group and a context that is cancelled once
// Wait returns.
func ErrorGroupWithContext(ctx context.Context) (*ErrorGroup, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	return &ErrorGroup{cancel: cancel}, ctx
}

// SetLimit bounds the number of concurrently running tasks.
func (g *ErrorGroup) SetLimit(n int) {
	g.eg.SetLimit(n)
}

func (g *ErrorGroup) Go(fn func() error) {
	g.eg.Go(func() error {
		if err := fn(); err != nil {
			g.mu.Lock()
			g.errs = append(g.errs, err)
			g.mu.Unlock()
		}
		return nil
	})
}

// Wait blocks until every task has finished and returns the collected errors
// joined together, or nil if all succeeded.
func (g *ErrorGroup) Wait() error {
	_ = g.eg.Wait()
	if g.cancel != nil {
		g.cancel()
	}
	return errors.Join(g.errs...)
}
