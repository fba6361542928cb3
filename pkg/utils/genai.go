package utils

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIClient implements GenerativeClient on the unified google.golang.org/genai SDK.
type GenAIClient struct {
	client *genai.Client
	model  string
}

func NewGenAIClient(ctx context.Context, apiKey, model string) (GenerativeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai: api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{client: client, model: model}, nil
}

func (c *GenAIClient) Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		cfg.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.TopP > 0 {
		cfg.TopP = genai.Ptr(opts.TopP)
	}
	if opts.TopK > 0 {
		cfg.TopK = genai.Ptr(float32(opts.TopK))
	}
	if opts.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = opts.MaxOutputTokens
	}
	if opts.JSON {
		cfg.ResponseMIMEType = "application/json"
	}
	if opts.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(opts.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("genai: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no content generated by GenAI", ErrUnexpectedBehaviorOfAI)
	}
	return text, nil
}

// Close is a no-op; the genai client holds no releasable resources.
func (c *GenAIClient) Close() error {
	return nil
}
