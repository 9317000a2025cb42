package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/termacli/terma/errors"
)

// openaiClient is a client for the OpenAI Chat Completions API.
type openaiClient struct {
	client *openai.Client
	model  string
}

func newOpenAIClient(model, apiKey string) *openaiClient {
	// The v2 SDK returns a value; keep a pointer to it.
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &openaiClient{client: &c, model: model}
}

// Generate sends the composed prompt as a single user message and returns
// the completion text. Any SDK failure is surfaced as an authentication
// error with the cause preserved on the chain.
func (o *openaiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(MaxOutputTokens),
	})
	if err != nil {
		return "", errors.Authentication(errors.Wrapf(err, "openai completion failed"))
	}
	if len(resp.Choices) == 0 {
		return "", errors.Authentication(errors.New("openai returned no choices"))
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
