package embedcache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/hananasr/faqchat/internal/domain/faq"
)

// ValkeyCache persists embeddings in a Valkey-compatible database so the
// corpus does not have to be re-embedded on every restart.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs a cache backed by Valkey.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "faqchat:embed"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

func (c *ValkeyCache) Get(ctx context.Context, key string) ([]float32, bool, error) {
	cmd := c.client.B().Get().Key(c.vectorKey(key)).Build()
	payload, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var vector []float32
	if err := json.Unmarshal([]byte(payload), &vector); err != nil {
		return nil, false, err
	}
	return vector, true, nil
}

func (c *ValkeyCache) Put(ctx context.Context, key string, vector []float32) error {
	payload, err := json.Marshal(vector)
	if err != nil {
		return err
	}
	cmd := c.client.B().Set().Key(c.vectorKey(key)).Value(string(payload)).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) vectorKey(key string) string {
	return fmt.Sprintf("%s:%s", c.prefix, key)
}

var _ faq.VectorCache = (*ValkeyCache)(nil)
