package dom

import (
	"container/list"
	"sync"

	"github.com/andybalholm/cascadia"
)

// selectorCacheSize bounds the compiled selectors kept across documents.
const selectorCacheSize = 128

// compiled is a selector compilation outcome. Invalid selectors are cached too.
type compiled struct {
	key string
	sel cascadia.Selector
	err error
}

// selectorCache is a thread-safe LRU of compiled selectors.
// Front of order is the most recently used entry.
type selectorCache struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
}

func newSelectorCache(capacity int) *selectorCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &selectorCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

var selectors = newSelectorCache(selectorCacheSize)

// compile returns the compiled form of selector, compiling it at most once
// while it stays in the cache.
func (c *selectorCache) compile(selector string) (cascadia.Selector, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[selector]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*compiled)
		return entry.sel, entry.err
	}

	sel, err := cascadia.Compile(selector)

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*compiled).key)
		}
	}
	c.items[selector] = c.order.PushFront(&compiled{key: selector, sel: sel, err: err})
	return sel, err
}

func (c *selectorCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
