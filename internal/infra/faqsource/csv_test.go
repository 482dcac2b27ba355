package faqsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSourceLoadsEntriesInOrder(t *testing.T) {
	path := writeTempCSV(t, "question,answer\nWhat are your hours?,9-5 Mon-Fri\nWhere are you located?,Downtown\n")

	entries, err := NewCSVSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "What are your hours?", entries[0].Question)
	require.Equal(t, "9-5 Mon-Fri", entries[0].Answer)
	require.Equal(t, "Where are you located?", entries[1].Question)
}

func TestCSVSourceAcceptsReorderedColumns(t *testing.T) {
	path := writeTempCSV(t, "answer,question\nBlue,What color is the sky?\n")

	entries, err := NewCSVSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "What color is the sky?", entries[0].Question)
	require.Equal(t, "Blue", entries[0].Answer)
}

func TestCSVSourceFailsOnMissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
	require.Error(t, err)
}

func TestCSVSourceFailsOnBadHeader(t *testing.T) {
	path := writeTempCSV(t, "q,a\nhello,world\n")

	_, err := NewCSVSource(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "header")
}

func TestCSVSourceFailsOnEmptyQuestion(t *testing.T) {
	path := writeTempCSV(t, "question,answer\n,orphaned answer\n")

	_, err := NewCSVSource(path).Load(context.Background())
	require.Error(t, err)
}

func TestCSVSourceHandlesUnicode(t *testing.T) {
	path := writeTempCSV(t, "question,answer\nما هي ساعات العمل؟,من 9 إلى 5\n")

	entries, err := NewCSVSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ما هي ساعات العمل؟", entries[0].Question)
}
