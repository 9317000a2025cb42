package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/termacli/terma/errors"
)

// anthropicClient is a client for the Anthropic Messages API.
type anthropicClient struct {
	client *anthropic.Client
	model  string
}

func newAnthropicClient(model, apiKey string) *anthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &anthropicClient{client: &client, model: model}
}

// Generate sends the composed prompt and concatenates the text blocks of
// the response.
func (a *anthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: MaxOutputTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", errors.Authentication(errors.Wrapf(err, "anthropic message failed"))
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(tb.Text)
		}
	}
	if text.Len() == 0 {
		return "", errors.Authentication(errors.New("anthropic returned no text content"))
	}
	return strings.TrimSpace(text.String()), nil
}
