package llmtranslate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hananasr/faqchat/internal/infra/llm/chatgpt"
)

type stubChatClient struct {
	lastReq chatgpt.ChatCompletionRequest
	reply   string
	err     error
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return chatgpt.ChatCompletionResponse{}, s.err
	}
	var resp chatgpt.ChatCompletionResponse
	resp.Choices = append(resp.Choices, struct {
		Message chatgpt.Message `json:"message"`
	}{Message: chatgpt.Message{Role: "assistant", Content: s.reply}})
	return resp, nil
}

func TestTranslatePassesLanguagesInPrompt(t *testing.T) {
	client := &stubChatClient{reply: "  hello  "}
	tr := New(client, "gpt-4o-mini")

	out, err := tr.Translate(context.Background(), "مرحبا", "ar", "en")
	require.NoError(t, err)
	require.Equal(t, "hello", out)

	require.Len(t, client.lastReq.Messages, 2)
	user := client.lastReq.Messages[1].Content
	require.True(t, strings.Contains(user, "Source language: ar"))
	require.True(t, strings.Contains(user, "Target language: en"))
	require.True(t, strings.Contains(user, "مرحبا"))
}

func TestTranslatePropagatesClientError(t *testing.T) {
	client := &stubChatClient{err: errors.New("boom")}
	tr := New(client, "gpt-4o-mini")

	_, err := tr.Translate(context.Background(), "hola", "es", "en")
	require.Error(t, err)
}

func TestTranslateRejectsEmptyText(t *testing.T) {
	tr := New(&stubChatClient{}, "gpt-4o-mini")
	_, err := tr.Translate(context.Background(), "", "es", "en")
	require.Error(t, err)
}
