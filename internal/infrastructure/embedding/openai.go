package embedding

import (
	"context"
	"fmt"
	"strings"

	"freelance-desk/internal/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultModel = "text-embedding-3-small"

// Client embeds text through the OpenAI embeddings API. The model itself is
// an opaque collaborator; callers only see embed(text) -> vector.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient returns nil when no API key is configured; callers treat a nil
// client as no scorer at all.
func NewClient(cfg config.MatchingConfig) *Client {
	apiKey := strings.TrimSpace(cfg.OpenAIAPIKey)
	if apiKey == "" {
		return nil
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := strings.TrimSpace(cfg.OpenAIBaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	model := strings.TrimSpace(cfg.EmbeddingModel)
	if model == "" {
		model = defaultModel
	}

	return &Client{client: openai.NewClient(opts...), model: model}
}

func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	res, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.F[openai.EmbeddingNewParamsInputUnion](
			openai.EmbeddingNewParamsInputArrayOfStrings([]string{text}),
		),
		Model: openai.F(openai.EmbeddingModel(c.model)),
	})
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("embed text: empty response")
	}
	return res.Data[0].Embedding, nil
}
