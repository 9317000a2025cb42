// Package llm wraps the supported text-generation backends behind a single
// Generate capability. Each client sends one user message carrying the full
// composed prompt and returns the model's text.
package llm

import (
	"context"

	"github.com/termacli/terma/config"
	"github.com/termacli/terma/errors"
)

// MaxOutputTokens bounds the response length for every provider. A shell
// command suggestion never needs more.
const MaxOutputTokens = 100

// Client is the interface for a configured text-generation backend.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New constructs the client for the named provider. An unknown provider
// fails with ErrInvalidProvider before any SDK client is built; no network
// call is made on that path.
func New(ctx context.Context, provider, model, apiKey string) (Client, error) {
	switch provider {
	case config.ProviderOpenAI:
		return newOpenAIClient(model, apiKey), nil
	case config.ProviderAnthropic:
		return newAnthropicClient(model, apiKey), nil
	case config.ProviderGoogle:
		return newGeminiClient(ctx, model, apiKey)
	default:
		return nil, errors.InvalidProvider(errors.New("unknown provider %q", provider))
	}
}
