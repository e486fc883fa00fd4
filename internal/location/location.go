// Package location delivers at most one device position.
package location

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnavailable reports that no position was delivered.
var ErrUnavailable = errors.New("location unavailable")

// Fix is a position in decimal degrees.
type Fix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks the coordinate ranges.
func (f Fix) Validate() error {
	if f.Latitude < -90 || f.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", f.Latitude)
	}
	if f.Longitude < -180 || f.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", f.Longitude)
	}
	return nil
}

func (f Fix) String() string {
	return fmt.Sprintf("%.5f, %.5f", f.Latitude, f.Longitude)
}

// Watcher streams position updates until stopped.
type Watcher interface {
	// Start begins delivery. Closing the channel means no more updates.
	Start() <-chan Fix
	// Stop ends delivery. It may be called more than once.
	Stop()
}

// Result is the single resolution of Await.
type Result struct {
	Fix Fix
	Err error
}

// Await resolves exactly once with the first update from w, after which w is
// stopped. A closed update channel or a done ctx resolves with ErrUnavailable.
func Await(ctx context.Context, w Watcher) <-chan Result {
	out := make(chan Result, 1)
	if w == nil {
		out <- Result{Err: ErrUnavailable}
		close(out)
		return out
	}

	updates := w.Start()
	go func() {
		var res Result
		select {
		case fix, ok := <-updates:
			if ok {
				res.Fix = fix
			} else {
				res.Err = ErrUnavailable
			}
		case <-ctx.Done():
			res.Err = fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
		}

		// Stop before resolving so callers observe a stopped watcher.
		w.Stop()
		out <- res
		close(out)
	}()
	return out
}

// First blocks until Await resolves.
func First(ctx context.Context, w Watcher) (Fix, error) {
	res := <-Await(ctx, w)
	return res.Fix, res.Err
}

// Static delivers one configured fix.
type Static struct {
	fix     Fix
	mu      sync.Mutex
	stopped bool
}

// NewStatic returns a watcher that reports fix once.
func NewStatic(fix Fix) *Static {
	return &Static{fix: fix}
}

// Start implements Watcher.
func (s *Static) Start() <-chan Fix {
	ch := make(chan Fix, 1)
	ch <- s.fix
	close(ch)
	return ch
}

// Stop implements Watcher.
func (s *Static) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

// Stopped reports whether Stop was called.
func (s *Static) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Never is a watcher that never reports a position.
type Never struct{}

// Start implements Watcher.
func (Never) Start() <-chan Fix {
	return make(chan Fix)
}

// Stop implements Watcher.
func (Never) Stop() {}
