package embedder

import (
	"context"
	"testing"
)

func TestDeterministicEmbedderIsStable(t *testing.T) {
	e := NewDeterministicEmbedder(16)

	first, err := e.Embed(context.Background(), []string{"what are your hours?"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	second, err := e.Embed(context.Background(), []string{"what are your hours?"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}

	if len(first) != 1 || len(first[0]) != 16 {
		t.Fatalf("unexpected vector shape: %d x %d", len(first), len(first[0]))
	}
	for i := range first[0] {
		if first[0][i] != second[0][i] {
			t.Fatalf("vectors differ at %d: %f vs %f", i, first[0][i], second[0][i])
		}
	}
}

func TestDeterministicEmbedderSeparatesTexts(t *testing.T) {
	e := NewDeterministicEmbedder(16)

	vectors, err := e.Embed(context.Background(), []string{"hello", "goodbye"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	same := true
	for i := range vectors[0] {
		if vectors[0][i] != vectors[1][i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("distinct texts produced identical vectors")
	}
}

func TestDeterministicEmbedderDefaultsDimension(t *testing.T) {
	e := NewDeterministicEmbedder(0)
	vectors, err := e.Embed(context.Background(), []string{"x"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if len(vectors[0]) != 32 {
		t.Fatalf("expected default dimension 32, got %d", len(vectors[0]))
	}
}
