// Package research runs one research request end to end: render the prompt,
// call the model, apply the failure policy.
package research

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fleveque/research-service/internal/llm"
	"github.com/fleveque/research-service/internal/model"
	"github.com/fleveque/research-service/internal/prompt"
)

// ErrorPrefix starts the research text returned in place of a model answer
// when the call fails on a degrading path.
const ErrorPrefix = "Error conducting research: "

// Service holds no per-request state, so one instance serves all requests.
type Service struct {
	client              llm.Client
	degradePersonErrors bool
	logger              *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDegradedPersonErrors makes person research follow the company/market
// policy: model failures are returned as research text instead of an error.
func WithDegradedPersonErrors(enabled bool) Option {
	return func(s *Service) {
		s.degradePersonErrors = enabled
	}
}

// NewService creates a Service backed by client.
func NewService(client llm.Client, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		client: client,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Research renders the prompt for req and returns the model's text.
//
// Company and market failures never return an error: the result is
// ErrorPrefix followed by the failure message. Person failures are returned
// as errors unless WithDegradedPersonErrors is set.
func (s *Service) Research(ctx context.Context, req model.Request) (string, error) {
	p, err := prompt.Render(req)
	if err != nil {
		return "", err
	}

	text, err := s.client.Generate(ctx, p)
	if err == nil {
		return text, nil
	}

	s.logger.Warn("model call failed",
		zap.String("kind", string(req.Kind())),
		zap.String("provider", s.client.ProviderName()),
		zap.String("model", s.client.ModelName()),
		zap.Error(err),
	)

	if s.degrades(req.Kind()) {
		return ErrorPrefix + err.Error(), nil
	}
	return "", fmt.Errorf("%s research: %w", req.Kind(), err)
}

func (s *Service) degrades(kind model.Kind) bool {
	switch kind {
	case model.KindCompany, model.KindMarket:
		return true
	case model.KindPerson:
		return s.degradePersonErrors
	default:
		return false
	}
}
