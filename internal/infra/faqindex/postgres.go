package faqindex

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/hananasr/faqchat/internal/domain/faq"
)

// PostgresIndex keeps question vectors in a pgvector-backed table so the
// corpus survives restarts and can be shared between replicas.
type PostgresIndex struct {
	pool *pgxpool.Pool
}

// NewPostgresIndex constructs the index. The faq_entries table must exist,
// see migrations/001_faq_entries.sql.
func NewPostgresIndex(pool *pgxpool.Pool) *PostgresIndex {
	return &PostgresIndex{pool: pool}
}

// Rebuild replaces the stored corpus inside a single transaction.
func (idx *PostgresIndex) Rebuild(ctx context.Context, entries []faq.Entry, vectors [][]float32) error {
	if len(entries) != len(vectors) {
		return fmt.Errorf("entries and vectors out of sync: %d vs %d", len(entries), len(vectors))
	}

	tx, err := idx.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE faq_entries`); err != nil {
		return fmt.Errorf("truncate faq_entries: %w", err)
	}

	batch := &pgx.Batch{}
	for i, entry := range entries {
		batch.Queue(`
			INSERT INTO faq_entries (position, question, answer, embedding)
			VALUES ($1, $2, $3, $4)
		`, i, entry.Question, entry.Answer, pgvector.NewVector(vectors[i]))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert faq_entries: %w", err)
	}
	return tx.Commit(ctx)
}

// Nearest returns the closest stored entry by cosine distance. Ties go to
// the earliest entry by position.
func (idx *PostgresIndex) Nearest(ctx context.Context, vector []float32) (faq.Match, bool, error) {
	row := idx.pool.QueryRow(ctx, `
		SELECT position, question, answer, 1 - (embedding <=> $1) AS score
		FROM faq_entries
		ORDER BY embedding <=> $1 ASC, position ASC
		LIMIT 1
	`, pgvector.NewVector(vector))

	var match faq.Match
	if err := row.Scan(&match.Position, &match.Entry.Question, &match.Entry.Answer, &match.Score); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return faq.Match{}, false, nil
		}
		return faq.Match{}, false, fmt.Errorf("query nearest entry: %w", err)
	}
	return match, true, nil
}

var _ faq.Index = (*PostgresIndex)(nil)
