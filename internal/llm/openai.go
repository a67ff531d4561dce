package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OpenAICompleter implements Completer against the OpenAI chat-completions
// API, or any endpoint speaking the same protocol.
type OpenAICompleter struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOpenAICompleter creates an OpenAICompleter.
func NewOpenAICompleter(baseURL, apiKey, model string) *OpenAICompleter {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAICompleter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete implements Completer.
func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxOutputTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: calling OpenAI: %v", ErrCompletion, err)
	}
	defer resp.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: decoding response (status %d): %v", ErrCompletion, resp.StatusCode, err)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("%w: OpenAI API error (%s): %s", ErrCompletion, completion.Error.Type, completion.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: OpenAI returned status %d", ErrCompletion, resp.StatusCode)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: OpenAI returned no choices", ErrCompletion)
	}

	return completion.Choices[0].Message.Content, nil
}
