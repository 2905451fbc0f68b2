package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/fleveque/research-service/internal/config"
)

// AnthropicClient implements Client using Claude's Messages API.
type AnthropicClient struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicClient creates a Claude-backed client. The SDK retries failed
// requests by default; that is switched off so one request means one call.
func NewAnthropicClient(cfg config.AnthropicConfig, maxTokens int) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)
	if maxTokens <= 0 {
		maxTokens = 8192
	}
	return &AnthropicClient{
		client:    &client,
		model:     cfg.Model,
		maxTokens: int64(maxTokens),
	}
}

func (a *AnthropicClient) ProviderName() string { return "anthropic" }
func (a *AnthropicClient) ModelName() string    { return a.model }

func (a *AnthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		text, ok := block.AsAny().(anthropic.TextBlock)
		if !ok {
			continue
		}
		sb.WriteString(text.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("anthropic returned no text (stop reason: %s)", message.StopReason)
	}

	return sb.String(), nil
}
