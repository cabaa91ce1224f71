package processor

import (
	"sync"

	"github.com/goliatone/go-columns/pkg/layout"
)

// Component scopes cleanup callbacks registered by markdown renderers to the
// lifetime of the processor that invoked them.
type Component struct {
	mu       sync.Mutex
	cleanups []func()
	unloaded bool
}

var _ layout.Owner = (*Component)(nil)

// NewComponent creates a live component.
func NewComponent() *Component {
	return &Component{}
}

// Register queues cleanup for Unload. After Unload it runs immediately.
func (c *Component) Register(cleanup func()) {
	if cleanup == nil {
		return
	}
	c.mu.Lock()
	if c.unloaded {
		c.mu.Unlock()
		cleanup()
		return
	}
	c.cleanups = append(c.cleanups, cleanup)
	c.mu.Unlock()
}

// Unload runs queued cleanups in reverse registration order. Only the first
// call has any effect.
func (c *Component) Unload() {
	c.mu.Lock()
	if c.unloaded {
		c.mu.Unlock()
		return
	}
	c.unloaded = true
	cleanups := c.cleanups
	c.cleanups = nil
	c.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// Unloaded reports whether Unload ran.
func (c *Component) Unloaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unloaded
}

// Pending returns the number of queued cleanups.
func (c *Component) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cleanups)
}
