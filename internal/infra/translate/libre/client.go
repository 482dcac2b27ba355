package libre

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hananasr/faqchat/internal/domain/chat"
)

const defaultBaseURL = "https://libretranslate.com"

// Client translates text through a LibreTranslate-compatible HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client. apiKey may be empty for self-hosted
// instances.
func NewClient(baseURL, apiKey string) *Client {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(url, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// Translate implements chat.Translator.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("cannot translate empty text")
	}

	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("encode translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read translate response: %w", err)
	}

	var decoded translateResponse
	if resp.StatusCode >= 300 {
		if json.Unmarshal(body, &decoded) == nil && decoded.Error != "" {
			return "", fmt.Errorf("translate error (%s -> %s): %s", source, target, decoded.Error)
		}
		return "", fmt.Errorf("translate request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if decoded.TranslatedText == "" {
		return "", errors.New("translate response empty")
	}
	return decoded.TranslatedText, nil
}

var _ chat.Translator = (*Client)(nil)
