package texture

import (
	"image"
	"sync"
)

// Cache memoizes decoded texture images by path so that re-registering a
// file or inspecting it from a tool does not decode it twice.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
}

// NewCache returns an empty decode cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*image.NRGBA)}
}

// Decode returns the decoded image for path, loading and caching it on
// first use. Failed decodes are not cached.
func (c *Cache) Decode(path string) (*image.NRGBA, error) {
	c.mu.RLock()
	if img, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Decode(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if cached, ok := c.items[path]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.items[path] = img
	c.mu.Unlock()

	return img, nil
}
