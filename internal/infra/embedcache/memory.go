package embedcache

import (
	"context"
	"sync"

	"github.com/hananasr/faqchat/internal/domain/faq"
)

// MemoryCache keeps embeddings in process memory. Vectors survive reloads
// within one process but not restarts.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string][]float32
}

// NewMemoryCache constructs an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string][]float32)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]float32, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vector, ok := c.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]float32(nil), vector...), true, nil
}

func (c *MemoryCache) Put(_ context.Context, key string, vector []float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = append([]float32(nil), vector...)
	return nil
}

var _ faq.VectorCache = (*MemoryCache)(nil)
