// internal/render/cache.go
package render

import (
	"sync"

	"github.com/driftedit/drift/internal/event"
	"github.com/driftedit/drift/internal/logger"
)

// LayoutCache memoizes line layouts by line number. An edit on line N
// invalidates every cached line at or after N: later lines may have shifted
// index even when their text is unchanged, so the suffix is dropped
// wholesale rather than tracked.
type LayoutCache struct {
	mu      sync.Mutex
	layouts map[int]LineLayout
}

// NewLayoutCache creates an empty cache.
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{
		layouts: make(map[int]LineLayout),
	}
}

// Get returns the layout for a line, computing and caching it on miss. The
// caller supplies the line's current text; a stale entry for that line must
// have been invalidated by the edit that changed it.
func (c *LayoutCache) Get(line int, lineText string) LineLayout {
	c.mu.Lock()
	defer c.mu.Unlock()

	if layout, ok := c.layouts[line]; ok {
		return layout
	}
	layout := LayoutLine(lineText)
	c.layouts[line] = layout
	return layout
}

// InvalidateFrom drops cached layouts for fromLine and everything after it.
func (c *LayoutCache) InvalidateFrom(fromLine int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for line := range c.layouts {
		if line >= fromLine {
			delete(c.layouts, line)
		}
	}
}

// InvalidateAll drops the entire cache. Used when the buffer is replaced.
func (c *LayoutCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layouts = make(map[int]LineLayout)
}

// Len reports how many lines are cached.
func (c *LayoutCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.layouts)
}

// Attach subscribes the cache to buffer events so invalidation follows
// edits automatically.
func (c *LayoutCache) Attach(mgr *event.Manager) {
	mgr.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		data, ok := e.Data.(event.BufferModifiedData)
		if !ok {
			logger.Warnf("render: unexpected payload on buffer-modified event: %T", e.Data)
			c.InvalidateAll()
			return false
		}
		c.InvalidateFrom(data.Edit.FromLine)
		return false
	})
	mgr.Subscribe(event.TypeBufferLoaded, func(e event.Event) bool {
		c.InvalidateAll()
		return false
	})
}
