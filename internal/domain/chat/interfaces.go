package chat

import (
	"context"

	"github.com/hananasr/faqchat/internal/domain/faq"
)

// Detector classifies the language of a text. It returns an ISO-639-1 style
// code, or LanguageUnknown when classification fails; it never errors.
type Detector interface {
	Detect(text string) string
}

// Translator maps text between two language codes.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Searcher finds the nearest FAQ entry for a pivot-language query.
type Searcher interface {
	Search(ctx context.Context, query string) (faq.QueryResult, error)
}
