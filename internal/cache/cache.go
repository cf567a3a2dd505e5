// Package cache holds a short-lived snapshot of the public menu listing so
// the busiest page does not hit the store on every render.
package cache

import (
	"sync"
	"time"

	"github.com/rasahub/rasahub/internal/domain/menu"
)

type MenuListing struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items []menu.Menu
	exp   time.Time
	ok    bool
}

func NewMenuListing(ttl time.Duration) *MenuListing {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}

	return &MenuListing{ttl: ttl}
}

func (c *MenuListing) Get() ([]menu.Menu, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.ok || time.Now().After(c.exp) {
		return nil, false
	}

	return c.items, true
}

func (c *MenuListing) Set(items []menu.Menu) {
	c.mu.Lock()
	c.items = items
	c.exp = time.Now().Add(c.ttl)
	c.ok = true
	c.mu.Unlock()
}

// Invalidate drops the snapshot; called after any admin menu write.
func (c *MenuListing) Invalidate() {
	c.mu.Lock()
	c.ok = false
	c.items = nil
	c.mu.Unlock()
}
