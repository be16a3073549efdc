package draft

import (
	"errors"
	"sync"
)

// ErrGuardActive is returned when a second guard is registered
var ErrGuardActive = errors.New("a navigation guard is already active")

// Guard decides whether navigation to a destination may proceed
type Guard func(to string) bool

// Navigator routes navigation requests through at most one active guard.
// Each editor gets its guard slot through Register and gives it back with the
// returned release func.
type Navigator struct {
	mu    sync.Mutex
	guard Guard
	token *struct{}
	goTo  func(to string)
}

// NewNavigator creates a navigator that performs navigation with goTo
func NewNavigator(goTo func(to string)) *Navigator {
	if goTo == nil {
		goTo = func(string) {}
	}
	return &Navigator{goTo: goTo}
}

// Register installs g as the active guard
func (n *Navigator) Register(g Guard) (release func(), err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.guard != nil {
		return nil, ErrGuardActive
	}
	tok := &struct{}{}
	n.guard = g
	n.token = tok

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if n.token == tok {
				n.guard = nil
				n.token = nil
			}
		})
	}, nil
}

// Navigate asks the active guard and navigates when allowed
func (n *Navigator) Navigate(to string) bool {
	n.mu.Lock()
	g := n.guard
	n.mu.Unlock()

	if g != nil && !g(to) {
		return false
	}
	n.goTo(to)
	return true
}

// Force navigates without consulting the guard
func (n *Navigator) Force(to string) {
	n.goTo(to)
}

// Guarded reports whether a guard is active
func (n *Navigator) Guarded() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.guard != nil
}
