package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiCompleter implements Completer using the Gemini API.
type GeminiCompleter struct {
	client    *genai.Client
	modelName string
}

// NewGeminiCompleter creates a GeminiCompleter with the given API key.
func NewGeminiCompleter(ctx context.Context, apiKey, modelName string) (*GeminiCompleter, error) {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiCompleter{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete implements Completer.
func (g *GeminiCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	temp := float32(temperature)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temp,
		MaxOutputTokens:   int32(maxOutputTokens),
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userPrompt, genai.RoleUser),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: Gemini generate content: %v", ErrCompletion, err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("%w: Gemini returned empty text", ErrCompletion)
	}

	return text, nil
}
