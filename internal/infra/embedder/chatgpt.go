package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/hananasr/faqchat/internal/domain/faq"
	"github.com/hananasr/faqchat/internal/infra/llm/chatgpt"
)

// ChatGPTEmbedder calls an OpenAI-compatible embeddings API.
type ChatGPTEmbedder struct {
	client  *chatgpt.Client
	model   string
	encoder *tiktoken.Tiktoken
	logger  *slog.Logger
}

// NewChatGPTEmbedder constructs an embedder backed by the ChatGPT client.
func NewChatGPTEmbedder(client *chatgpt.Client, model string, logger *slog.Logger) *ChatGPTEmbedder {
	if logger == nil {
		logger = slog.Default()
	}
	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		// Unknown models still embed fine, fall back to the base encoding.
		encoder, _ = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	}
	return &ChatGPTEmbedder{
		client:  client,
		model:   strings.TrimSpace(model),
		encoder: encoder,
		logger:  logger.With("component", "embedder.chatgpt"),
	}
}

// Embed requests embeddings for the given texts, batching to stay under
// the provider token cap.
func (e *ChatGPTEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	var (
		out            [][]float32
		batch          []string
		batchTokens    int
		maxBatchTokens = 200_000 // stay well below provider's 300k cap
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		req := chatgpt.EmbeddingRequest{
			Model: e.model,
			Input: batch,
		}
		resp, err := e.client.CreateEmbedding(ctx, req)
		if err != nil {
			return fmt.Errorf("create embedding: %w", err)
		}
		if len(resp.Data) != len(batch) {
			return fmt.Errorf("embedding result count mismatch: expected=%d got=%d", len(batch), len(resp.Data))
		}
		for _, item := range resp.Data {
			vec := make([]float32, len(item.Embedding))
			copy(vec, item.Embedding)
			out = append(out, vec)
		}
		batch = batch[:0]
		batchTokens = 0
		return nil
	}

	for _, text := range texts {
		tokens := e.countTokens(text)
		if tokens > maxBatchTokens {
			return nil, fmt.Errorf("text too large for embedding request: tokens=%d", tokens)
		}
		if batchTokens+tokens > maxBatchTokens && len(batch) > 0 {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		batch = append(batch, text)
		batchTokens += tokens
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *ChatGPTEmbedder) countTokens(text string) int {
	if text == "" {
		return 0
	}
	if e.encoder != nil {
		return len(e.encoder.Encode(text, nil, nil))
	}
	// Upper-biased fallback, roughly one token per two runes.
	return (utf8.RuneCountInString(text) + 1) / 2
}

var _ faq.Embedder = (*ChatGPTEmbedder)(nil)
