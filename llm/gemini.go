package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/termacli/terma/errors"
	"google.golang.org/api/option"
)

// geminiClient is a client for the Google Gemini API.
type geminiClient struct {
	model *genai.GenerativeModel
}

func newGeminiClient(ctx context.Context, modelName, apiKey string) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		// Constructing the genai client does not hit the network; a failure
		// here is a configuration problem, not an auth one.
		return nil, errors.Wrapf(err, "failed to create genai client")
	}
	model := client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(MaxOutputTokens)
	return &geminiClient{model: model}, nil
}

// Generate sends the composed prompt and concatenates the text parts of the
// first candidate.
func (g *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Authentication(errors.Wrapf(err, "gemini generation failed"))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.Authentication(errors.New("gemini returned an empty response"))
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		return "", errors.Authentication(errors.New("gemini returned no text parts"))
	}
	return strings.TrimSpace(text.String()), nil
}
