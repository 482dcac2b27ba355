package unit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hananasr/faqchat/internal/domain/chat"
	"github.com/hananasr/faqchat/internal/domain/faq"
	"github.com/hananasr/faqchat/internal/infra/embedcache"
	"github.com/hananasr/faqchat/internal/infra/embedder"
	"github.com/hananasr/faqchat/internal/infra/faqindex"
	"github.com/hananasr/faqchat/internal/infra/faqsource"
	"github.com/hananasr/faqchat/internal/infra/langid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mappingTranslator translates by lookup so tests stay offline.
type mappingTranslator struct {
	mapping map[string]string
	calls   int
}

func (t *mappingTranslator) Translate(_ context.Context, text, source, target string) (string, error) {
	t.calls++
	if out, ok := t.mapping[text]; ok {
		return out, nil
	}
	return "", fmt.Errorf("no translation for %q (%s -> %s)", text, source, target)
}

func newCorpusService(t *testing.T) faq.Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqs.csv")
	data := "question,answer\n" +
		"What are your hours?,We are open from 9am to 5pm Monday through Friday.\n" +
		"Where are you located?,Our office is at 12 Main Street downtown.\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return faq.NewService(
		faq.Config{CacheNamespace: "test"},
		faqsource.NewCSVSource(path),
		embedder.NewDeterministicEmbedder(32),
		faqindex.NewMemoryIndex(),
		embedcache.NewMemoryCache(),
		newTestLogger(),
	)
}

func TestPipelineAnswersVerbatimQuestion(t *testing.T) {
	corpus := newCorpusService(t)
	translator := &mappingTranslator{}
	svc := chat.NewService(chat.Config{PivotLanguage: "en"}, langid.New(), translator, corpus, newTestLogger())

	resp, err := svc.Answer(context.Background(), chat.Request{Question: "What are your hours?"})
	require.NoError(t, err)
	require.Equal(t, "We are open from 9am to 5pm Monday through Friday.", resp.Answer)
	require.Equal(t, "What are your hours?", resp.MatchedQuestion)
	require.GreaterOrEqual(t, resp.Score, 0.999)
	require.False(t, resp.Translated)
	require.Zero(t, translator.calls)
}

func TestPipelineTranslatesForeignQuestion(t *testing.T) {
	corpus := newCorpusService(t)
	translator := &mappingTranslator{mapping: map[string]string{
		"ما هي ساعات العمل في المكتب؟":                       "What are your hours?",
		"We are open from 9am to 5pm Monday through Friday.": "نحن نفتح من التاسعة صباحا حتى الخامسة مساء.",
	}}
	svc := chat.NewService(chat.Config{PivotLanguage: "en"}, langid.New(), translator, corpus, newTestLogger())

	resp, err := svc.Answer(context.Background(), chat.Request{Question: "ما هي ساعات العمل في المكتب؟"})
	require.NoError(t, err)
	require.Equal(t, "ar", resp.Language)
	require.True(t, resp.Translated)
	require.Equal(t, 2, translator.calls)
	require.Equal(t, "نحن نفتح من التاسعة صباحا حتى الخامسة مساء.", resp.Answer)
	require.Equal(t, "What are your hours?", resp.MatchedQuestion)
}

func TestPipelineGreetingSkipsTranslation(t *testing.T) {
	corpus := newCorpusService(t)
	translator := &mappingTranslator{}
	svc := chat.NewService(chat.Config{PivotLanguage: "en"}, langid.New(), translator, corpus, newTestLogger())

	resp, err := svc.Answer(context.Background(), chat.Request{Question: "hello"})
	require.NoError(t, err)
	require.Equal(t, "en", resp.Language)
	require.False(t, resp.Translated)
	require.Zero(t, translator.calls)
}

func TestPipelineAnswerTextContainsFailures(t *testing.T) {
	broken := faq.NewService(
		faq.Config{},
		faqsource.NewCSVSource(filepath.Join(t.TempDir(), "missing.csv")),
		embedder.NewDeterministicEmbedder(32),
		faqindex.NewMemoryIndex(),
		nil,
		newTestLogger(),
	)
	svc := chat.NewService(chat.Config{PivotLanguage: "en"}, langid.New(), &mappingTranslator{}, broken, newTestLogger())

	out := svc.AnswerText(context.Background(), "What are your hours?")
	require.Contains(t, out, "An error occurred: ")
}
