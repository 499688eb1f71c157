package cache

import (
	"container/list"
	"context"
	"database/sql"
	"sync"
	"time"
)

// PrepareFunc prepares a statement on a pool.
type PrepareFunc func(ctx context.Context, query string) (*sql.Stmt, error)

// StmtCache is a bounded LRU of prepared statements keyed by SQL text.
// Evicted and expired statements are closed.
type StmtCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
	maxSize int
	ttl     time.Duration

	hits   int64
	misses int64
}

type cachedStmt struct {
	query    string
	stmt     *sql.Stmt
	lastUsed time.Time
}

func NewStmtCache(maxSize int, ttl time.Duration) *StmtCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &StmtCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// DefaultStmtCache holds up to 100 statements for 5 minutes.
func DefaultStmtCache() *StmtCache {
	return NewStmtCache(100, 5*time.Minute)
}

// GetOrPrepare returns the cached statement for query, preparing it on a miss.
func (c *StmtCache) GetOrPrepare(ctx context.Context, query string, prepare PrepareFunc) (*sql.Stmt, error) {
	c.mu.Lock()
	if el, ok := c.entries[query]; ok {
		entry := el.Value.(*cachedStmt)
		if c.ttl <= 0 || time.Since(entry.lastUsed) <= c.ttl {
			entry.lastUsed = time.Now()
			c.order.MoveToFront(el)
			c.hits++
			c.mu.Unlock()
			return entry.stmt, nil
		}
		c.removeElement(el)
	}
	c.misses++
	c.mu.Unlock()

	stmt, err := prepare(ctx, query)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have prepared the same query meanwhile.
	if el, ok := c.entries[query]; ok {
		_ = stmt.Close()
		return el.Value.(*cachedStmt).stmt, nil
	}
	for c.order.Len() >= c.maxSize {
		c.removeElement(c.order.Back())
	}
	c.entries[query] = c.order.PushFront(&cachedStmt{query: query, stmt: stmt, lastUsed: time.Now()})
	return stmt, nil
}

func (c *StmtCache) removeElement(el *list.Element) {
	entry := el.Value.(*cachedStmt)
	c.order.Remove(el)
	delete(c.entries, entry.query)
	_ = entry.stmt.Close()
}

// Cleanup closes statements unused for longer than the TTL.
func (c *StmtCache) Cleanup() {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.Sub(el.Value.(*cachedStmt).lastUsed) > c.ttl {
			c.removeElement(el)
		}
		el = prev
	}
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (c *StmtCache) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Cleanup()
			}
		}
	}()
}

// Close closes every cached statement.
func (c *StmtCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.order.Len() > 0 {
		c.removeElement(c.order.Back())
	}
}

// Stats returns the cache size and hit/miss counters.
func (c *StmtCache) Stats() (size int, hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len(), c.hits, c.misses
}
