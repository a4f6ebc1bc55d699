package orders

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
)

// Client decorates a Service with the session state shared by every view:
// a never-evicting order cache and the most recent successful list
// snapshot. Both live for the whole process and are only mutated by
// successful responses.
//
// A cache hit short-circuits the network entirely, so each id is fetched
// at most once per session. Concurrent fetches for the same id may race to
// write the entry; the race is harmless because the same id always maps to
// the same payload, but the maps are still mutex-guarded since callers run
// on arbitrary goroutines.
type Client struct {
	svc Service

	mu       sync.RWMutex
	cache    map[string]*Order
	lastList []ListEntry
}

// NewClient wraps svc with session-scoped caching.
func NewClient(svc Service) *Client {
	return &Client{
		svc:   svc,
		cache: make(map[string]*Order),
	}
}

// Order returns the cached order for id, fetching and memoizing it on a
// miss. The id must be non-empty.
func (c *Client) Order(ctx context.Context, id string) (*Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &ValidationError{Message: "order id is required"}
	}

	c.mu.RLock()
	cached, ok := c.cache[id]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	order, err := c.svc.Order(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[id] = order
	c.mu.Unlock()
	return order, nil
}

// List always hits the backend so the result reflects its current state.
// A successful fetch replaces the last-list snapshot.
func (c *Client) List(ctx context.Context) ([]ListEntry, error) {
	entries, err := c.svc.List(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.lastList = entries
	c.mu.Unlock()
	return entries, nil
}

// LastList returns a copy of the most recent successful list snapshot.
func (c *Client) LastList() []ListEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.lastList) == 0 {
		return nil
	}
	out := make([]ListEntry, len(c.lastList))
	copy(out, c.lastList)
	return out
}

// Pick returns a random catalog entry. It reuses the last-list snapshot
// when one exists (possibly stale, see DESIGN.md) and otherwise attempts a
// single list fetch, degrading silently to "nothing to pick" on failure.
func (c *Client) Pick(ctx context.Context) (ListEntry, error) {
	entries := c.LastList()
	if len(entries) == 0 {
		fetched, err := c.List(ctx)
		if err == nil {
			entries = fetched
		}
	}
	if len(entries) == 0 {
		return ListEntry{}, ErrNoOrders
	}
	return entries[rand.IntN(len(entries))], nil
}
