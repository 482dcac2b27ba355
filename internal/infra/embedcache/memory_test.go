package embedcache

import (
	"context"
	"testing"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("get missing: ok=%v err=%v", ok, err)
	}

	if err := c.Put(ctx, "k", []float32{1, 2, 3}); err != nil {
		t.Fatalf("put: %v", err)
	}
	vector, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(vector) != 3 || vector[2] != 3 {
		t.Fatalf("unexpected vector: %v", vector)
	}
}

func TestMemoryCacheCopiesVectors(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	original := []float32{1, 2}
	if err := c.Put(ctx, "k", original); err != nil {
		t.Fatalf("put: %v", err)
	}
	original[0] = 99

	vector, _, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if vector[0] != 1 {
		t.Fatalf("cache shares caller memory: %v", vector)
	}
}
