package faq

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	apperrors "github.com/hananasr/faqchat/pkg/errors"
)

// Service owns the FAQ corpus lifecycle and similarity search.
type Service interface {
	// Load reads the data source and embeds every question. It runs at most
	// once per process; concurrent callers block until the first load
	// finishes and then reuse its result.
	Load(ctx context.Context) error
	// Reload discards the corpus and loads it again.
	Reload(ctx context.Context) error
	// Search returns the nearest entry to the query. It lazily triggers Load.
	Search(ctx context.Context, query string) (QueryResult, error)
	// Entries returns the loaded corpus in index order.
	Entries(ctx context.Context) ([]Entry, error)
}

type service struct {
	cfg      Config
	source   Source
	embedder Embedder
	index    Index
	cache    VectorCache
	logger   *slog.Logger

	mu      sync.Mutex
	loaded  bool
	entries []Entry
}

// NewService wires up the FAQ corpus domain. cache may be nil.
func NewService(cfg Config, source Source, embedder Embedder, index Index, cache VectorCache, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		source:   source,
		embedder: embedder,
		index:    index,
		cache:    cache,
		logger:   logger.With("component", "faq.service"),
	}
}

func (s *service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, false)
}

func (s *service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, true)
}

func (s *service) loadLocked(ctx context.Context, force bool) error {
	if s.loaded && !force {
		return nil
	}

	entries, err := s.source.Load(ctx)
	if err != nil {
		return apperrors.Wrap("corpus_error", "failed to load FAQ data", err)
	}
	if len(entries) == 0 {
		return apperrors.Wrap("corpus_error", "FAQ data source is empty", nil)
	}

	vectors, err := s.embedQuestions(ctx, entries)
	if err != nil {
		return err
	}
	if len(vectors) != len(entries) {
		return apperrors.Wrap("corpus_error",
			fmt.Sprintf("embedding count mismatch: %d entries, %d vectors", len(entries), len(vectors)), nil)
	}

	if err := s.index.Rebuild(ctx, entries, vectors); err != nil {
		return apperrors.Wrap("corpus_error", "failed to rebuild similarity index", err)
	}

	s.entries = entries
	s.loaded = true
	s.logger.Info("faq corpus loaded", "entries", len(entries))
	return nil
}

// embedQuestions fills vectors from the cache where possible and embeds the
// rest in a single batch.
func (s *service) embedQuestions(ctx context.Context, entries []Entry) ([][]float32, error) {
	vectors := make([][]float32, len(entries))

	var missing []int
	for i, entry := range entries {
		if s.cache == nil {
			missing = append(missing, i)
			continue
		}
		vector, ok, err := s.cache.Get(ctx, s.cacheKey(entry.Question))
		if err != nil {
			s.logger.Warn("faq vector cache read failed", "error", err)
		}
		if ok && len(vector) > 0 {
			vectors[i] = vector
			continue
		}
		missing = append(missing, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	texts := make([]string, len(missing))
	for j, i := range missing {
		texts[j] = entries[i].Question
	}
	embedded, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, apperrors.Wrap("corpus_error", "failed to embed FAQ questions", err)
	}
	if len(embedded) != len(missing) {
		return nil, apperrors.Wrap("corpus_error",
			fmt.Sprintf("embedder returned %d vectors for %d questions", len(embedded), len(missing)), nil)
	}
	for j, i := range missing {
		if len(embedded[j]) == 0 {
			return nil, apperrors.Wrap("corpus_error", "embedder returned an empty vector", nil)
		}
		vectors[i] = embedded[j]
		if s.cache != nil {
			if err := s.cache.Put(ctx, s.cacheKey(entries[i].Question), embedded[j]); err != nil {
				s.logger.Warn("faq vector cache write failed", "error", err)
			}
		}
	}
	return vectors, nil
}

func (s *service) Search(ctx context.Context, query string) (QueryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return QueryResult{}, apperrors.Wrap("invalid_input", "query cannot be empty", nil)
	}

	if err := s.Load(ctx); err != nil {
		return QueryResult{}, err
	}

	embedded, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return QueryResult{}, apperrors.Wrap("search_error", "failed to embed query", err)
	}
	if len(embedded) == 0 || len(embedded[0]) == 0 {
		return QueryResult{}, apperrors.Wrap("search_error", "query embedding is empty", nil)
	}

	match, found, err := s.index.Nearest(ctx, embedded[0])
	if err != nil {
		return QueryResult{}, apperrors.Wrap("search_error", "similarity lookup failed", err)
	}
	if !found {
		return QueryResult{}, apperrors.Wrap("search_error", "FAQ corpus has no entries", nil)
	}

	return QueryResult{
		MatchedQuestion: match.Entry.Question,
		Answer:          match.Entry.Answer,
		Score:           match.Score,
	}, nil
}

func (s *service) Entries(ctx context.Context) ([]Entry, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *service) cacheKey(question string) string {
	sum := sha256.Sum256([]byte(s.cfg.CacheNamespace + "\x00" + question))
	return hex.EncodeToString(sum[:16])
}
