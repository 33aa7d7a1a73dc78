package services

import (
	"context"
	"sync"
)

// SessionGuard serializes report builds: starting a new build cancels
// the previous one and waits for it to release, so at most one
// resolution is in flight at a time. Cancelled builds surface
// context.Canceled, which callers treat as "superseded", not as a
// user-visible error.
type SessionGuard struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Begin cancels any in-flight build, waits for it to release, and
// returns the context for the new build. The returned release func must
// be called exactly when the build finishes (success or failure).
func (g *SessionGuard) Begin(parent context.Context) (context.Context, func()) {
	for {
		g.mu.Lock()
		if g.done == nil {
			ctx, cancel := context.WithCancel(parent)
			done := make(chan struct{})
			g.cancel, g.done = cancel, done
			g.mu.Unlock()

			var once sync.Once
			release := func() {
				once.Do(func() {
					cancel()
					g.mu.Lock()
					if g.done == done {
						g.cancel, g.done = nil, nil
					}
					g.mu.Unlock()
					close(done)
				})
			}
			return ctx, release
		}

		cancel, done := g.cancel, g.done
		g.mu.Unlock()

		cancel()
		<-done
	}
}
