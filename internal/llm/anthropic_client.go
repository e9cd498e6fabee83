package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// AnthropicClient calls the Messages API directly over HTTPS.
type AnthropicClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewAnthropicClient uses http.DefaultClient when httpClient is nil. No timeout
// is added; the Lambda deadline on ctx bounds the call.
func NewAnthropicClient(httpClient *http.Client, baseURL string) *AnthropicClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &AnthropicClient{httpClient: httpClient, baseURL: baseURL}
}

func (c *AnthropicClient) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	payload, err := json.Marshal(NewMessagesRequest(prompt))
	if err != nil {
		return "", fmt.Errorf("marshal messages request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build messages request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", APIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    ErrorMessage(body),
			Body:       body,
		}
	}
	if readErr != nil {
		return "", fmt.Errorf("read anthropic response: %w", readErr)
	}

	return FirstText(body)
}
