// Package llm provides a provider-agnostic interface for sending a research
// prompt to a generative language model and getting its text back.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleveque/research-service/internal/config"
)

// Client is the single capability the research pipeline needs from a model:
// prompt in, text out. Gemini, Anthropic and OpenAI all implement it, and
// tests substitute a stub.
//
// Go interface design tip: keep interfaces small. The bigger the interface,
// the harder it is to implement and mock.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ProviderName() string
	ModelName() string
}

// New builds the client for the configured provider. Constructors never fail
// on a missing API key; that surfaces as an error on the first Generate call.
func New(cfg config.LLMConfig) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "google", "":
		return NewGeminiClient(cfg.Gemini, cfg.MaxTokens), nil
	case "anthropic":
		return NewAnthropicClient(cfg.Anthropic, cfg.MaxTokens), nil
	case "openai":
		return NewOpenAIClient(cfg.OpenAI), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
