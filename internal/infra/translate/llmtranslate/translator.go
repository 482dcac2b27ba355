package llmtranslate

import (
	"context"
	"fmt"
	"strings"

	"github.com/hananasr/faqchat/internal/domain/chat"
	"github.com/hananasr/faqchat/internal/infra/llm/chatgpt"
	apperrors "github.com/hananasr/faqchat/pkg/errors"
)

// ChatClient is the subset of the chatgpt client the translator needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Translator performs translation through a chat completion model. It is
// the fallback when no LibreTranslate endpoint is configured.
type Translator struct {
	client ChatClient
	model  string
}

func New(client ChatClient, model string) *Translator {
	return &Translator{client: client, model: model}
}

const systemPrompt = "You are a translation engine. Translate the user's text " +
	"from the source language to the target language. Reply with the " +
	"translation only, no explanations and no quotes."

// Translate implements chat.Translator.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperrors.Wrap("invalid_input", "cannot translate empty text", nil)
	}

	resp, err := t.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: t.model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Source language: %s\nTarget language: %s\nText: %s", source, target, text)},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("translation completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("translation returned no choices")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("translation returned empty content")
	}
	return out, nil
}

var _ chat.Translator = (*Translator)(nil)
