package utils

import (
	"context"
	"fmt"
)

// GenerationOptions tunes a single completion call. Zero values leave the
// provider defaults in place.
type GenerationOptions struct {
	System          string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
	JSON            bool
}

// PersonaOptions is the sampling profile of the "Aura" check-in persona.
func PersonaOptions(system string) GenerationOptions {
	return GenerationOptions{
		System:          system,
		Temperature:     1,
		TopP:            0.95,
		TopK:            40,
		MaxOutputTokens: 8192,
	}
}

// GenerativeClient is a text completion backend.
type GenerativeClient interface {
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
	Close() error
}

type unavailableClient struct {
	reason string
}

// NewUnavailableClient returns a client whose every call fails with
// ErrAIUnavailable, so callers take their fallback path.
func NewUnavailableClient(reason string) GenerativeClient {
	return unavailableClient{reason: reason}
}

func (u unavailableClient) Generate(context.Context, string, GenerationOptions) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrAIUnavailable, u.reason)
}

func (unavailableClient) Close() error { return nil }
