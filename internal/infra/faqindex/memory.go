package faqindex

import (
	"context"
	"math"
	"sync"

	"github.com/hananasr/faqchat/internal/domain/faq"
)

// MemoryIndex holds question vectors in process memory and scans them all
// on every lookup. Fine for corpora in the hundreds of entries.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries []faq.Entry
	vectors [][]float32
}

// NewMemoryIndex constructs an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

// Rebuild replaces the index contents.
func (idx *MemoryIndex) Rebuild(_ context.Context, entries []faq.Entry, vectors [][]float32) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = append([]faq.Entry(nil), entries...)
	idx.vectors = make([][]float32, len(vectors))
	for i, v := range vectors {
		idx.vectors[i] = append([]float32(nil), v...)
	}
	return nil
}

// Nearest returns the entry whose vector has the highest cosine similarity
// to the query. Ties go to the earliest entry.
func (idx *MemoryIndex) Nearest(_ context.Context, vector []float32) (faq.Match, bool, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.entries) == 0 {
		return faq.Match{}, false, nil
	}

	best := 0
	bestScore := cosineSimilarity(vector, idx.vectors[0])
	for i := 1; i < len(idx.vectors); i++ {
		if score := cosineSimilarity(vector, idx.vectors[i]); score > bestScore {
			best = i
			bestScore = score
		}
	}
	return faq.Match{
		Position: best,
		Entry:    idx.entries[best],
		Score:    bestScore,
	}, true, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := 0; i < len(a); i++ {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	den := math.Sqrt(magA) * math.Sqrt(magB)
	if den == 0 {
		return 0
	}
	return dot / den
}

var _ faq.Index = (*MemoryIndex)(nil)
