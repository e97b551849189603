package scan

import (
	"container/list"
	"fmt"
	"os"
	"sync"

	"github.com/byRen2002/tlsh-go/pkg/tlsh"
)

// hashCache is a thread-safe LRU cache mapping a file's identity (path,
// size and modification time) to its already-computed fuzzy hash, so a
// re-scan of an unmodified tree never recomputes a hash it already has.
type hashCache struct {
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	mutex    sync.RWMutex
}

type cacheEntry struct {
	key   string
	value tlsh.FuzzyHash
}

// newHashCache creates a cache holding at most capacity entries.
func newHashCache(capacity int) *hashCache {
	return &hashCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
	}
}

// cacheKey identifies a file by path plus the size/mtime pair that
// changes whenever its content does, without hashing the content
// itself.
func cacheKey(path string, info os.FileInfo) string {
	return fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano())
}

func (c *hashCache) Get(key string) (tlsh.FuzzyHash, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.items[key]
	if !exists {
		return tlsh.FuzzyHash{}, false
	}
	c.queue.MoveToFront(element)
	return element.Value.(*cacheEntry).value, true
}

func (c *hashCache) Set(key string, value tlsh.FuzzyHash) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*cacheEntry).value = value
		return
	}

	element := c.queue.PushFront(&cacheEntry{key: key, value: value})
	c.items[key] = element

	if c.queue.Len() > c.capacity {
		oldest := c.queue.Back()
		if oldest != nil {
			c.queue.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

func (c *hashCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}
