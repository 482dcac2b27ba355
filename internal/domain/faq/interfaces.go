package faq

import "context"

// Source produces the ordered FAQ entries from the configured data file.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

// Embedder produces embeddings for free form text. Query and corpus vectors
// must come from the same embedder, otherwise similarity scores are
// meaningless.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Index answers nearest-neighbour lookups over the corpus vectors.
type Index interface {
	Rebuild(ctx context.Context, entries []Entry, vectors [][]float32) error
	Nearest(ctx context.Context, vector []float32) (Match, bool, error)
}

// VectorCache stores computed question embeddings across restarts.
type VectorCache interface {
	Get(ctx context.Context, key string) ([]float32, bool, error)
	Put(ctx context.Context, key string, vector []float32) error
}
