package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/fleveque/research-service/internal/config"
)

// GeminiClient implements Client with Google's Gemini API.
type GeminiClient struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int32

	// The SDK client is created on first use. genai.NewClient rejects an
	// empty key, and a missing key must fail the call, not the process.
	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiClient creates a Gemini-backed client. maxTokens <= 0 leaves the
// model default in place.
func NewGeminiClient(cfg config.GeminiConfig, maxTokens int) *GeminiClient {
	return &GeminiClient{
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		model:     cfg.Model,
		maxTokens: int32(maxTokens),
	}
}

func (g *GeminiClient) ProviderName() string { return "gemini" }
func (g *GeminiClient) ModelName() string    { return g.model }

// Generate sends prompt as a single user turn and returns the concatenated
// text parts of the first candidate.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := g.sdk(ctx)
	if err != nil {
		return "", err
	}

	var genCfg *genai.GenerateContentConfig
	if g.maxTokens > 0 {
		genCfg = &genai.GenerateContentConfig{MaxOutputTokens: g.maxTokens}
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini API call: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned an empty response (finish reason: %s)", resp.Candidates[0].FinishReason)
	}

	return sb.String(), nil
}

func (g *GeminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      g.apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
		})
		if g.initErr != nil {
			g.initErr = fmt.Errorf("creating gemini client: %w", g.initErr)
		}
	})
	return g.client, g.initErr
}
