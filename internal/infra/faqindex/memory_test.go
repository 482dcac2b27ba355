package faqindex

import (
	"context"
	"testing"

	"github.com/hananasr/faqchat/internal/domain/faq"
)

func TestMemoryIndexNearestPicksHighestSimilarity(t *testing.T) {
	idx := NewMemoryIndex()
	entries := []faq.Entry{
		{Question: "hours", Answer: "9-5"},
		{Question: "location", Answer: "downtown"},
	}
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
	}
	if err := idx.Rebuild(context.Background(), entries, vectors); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	match, found, err := idx.Nearest(context.Background(), []float32{0.1, 0.9, 0})
	if err != nil {
		t.Fatalf("nearest: %v", err)
	}
	if !found {
		t.Fatal("expected a match")
	}
	if match.Position != 1 || match.Entry.Answer != "downtown" {
		t.Fatalf("unexpected match: %+v", match)
	}
}

func TestMemoryIndexExactMatchScoresNearOne(t *testing.T) {
	idx := NewMemoryIndex()
	vec := []float32{0.3, 0.5, 0.8}
	if err := idx.Rebuild(context.Background(), []faq.Entry{{Question: "q", Answer: "a"}}, [][]float32{vec}); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	match, found, err := idx.Nearest(context.Background(), vec)
	if err != nil || !found {
		t.Fatalf("nearest: found=%v err=%v", found, err)
	}
	if match.Score < 0.999 {
		t.Fatalf("identical vector scored %f", match.Score)
	}
}

func TestMemoryIndexTieBreaksOnEarliestEntry(t *testing.T) {
	idx := NewMemoryIndex()
	entries := []faq.Entry{
		{Question: "first", Answer: "one"},
		{Question: "second", Answer: "two"},
	}
	// Same vector twice, the first position must win.
	vectors := [][]float32{
		{1, 0},
		{1, 0},
	}
	if err := idx.Rebuild(context.Background(), entries, vectors); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	match, _, err := idx.Nearest(context.Background(), []float32{1, 0})
	if err != nil {
		t.Fatalf("nearest: %v", err)
	}
	if match.Position != 0 {
		t.Fatalf("expected position 0, got %d", match.Position)
	}
}

func TestMemoryIndexEmptyReportsNotFound(t *testing.T) {
	idx := NewMemoryIndex()
	_, found, err := idx.Nearest(context.Background(), []float32{1, 0})
	if err != nil {
		t.Fatalf("nearest: %v", err)
	}
	if found {
		t.Fatal("found a match in an empty index")
	}
}

func TestMemoryIndexRebuildReplacesContents(t *testing.T) {
	idx := NewMemoryIndex()
	if err := idx.Rebuild(context.Background(), []faq.Entry{{Question: "old", Answer: "old"}}, [][]float32{{1, 0}}); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if err := idx.Rebuild(context.Background(), []faq.Entry{{Question: "new", Answer: "new"}}, [][]float32{{0, 1}}); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	match, found, err := idx.Nearest(context.Background(), []float32{0, 1})
	if err != nil || !found {
		t.Fatalf("nearest: found=%v err=%v", found, err)
	}
	if match.Entry.Question != "new" {
		t.Fatalf("old contents survived rebuild: %+v", match)
	}
}
