package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/internhunt/internal/apperr"
	"go.uber.org/zap"
)

var ErrEmptyCompletion = errors.New("model returned no text")

// Model is one generation backend bound to a single model identifier.
type Model interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModelBuilder wraps a Model with cross-cutting behaviour.
type ModelBuilder interface {
	Next(next Model) Model
}

type modelFunc struct {
	name string
	fn   func(ctx context.Context, prompt string) (string, error)
}

func (m modelFunc) Name() string { return m.name }

func (m modelFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return m.fn(ctx, prompt)
}

// Chain applies builders so that the first builder is the outermost.
func Chain(m Model, builders ...ModelBuilder) Model {
	for i := len(builders) - 1; i >= 0; i-- {
		m = builders[i].Next(m)
	}
	return m
}

// LLMService tries each model in order and returns the first non-empty
// completion. Errors, rate limits and empty text all move on to the next
// model without delay.
type LLMService struct {
	models []Model
	logger *zap.Logger
}

func NewLLMService(models []Model, logger *zap.Logger) *LLMService {
	return &LLMService{models: models, logger: logger}
}

func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if len(s.models) == 0 {
		return "", apperr.Config("Missing GEMINI_API_KEY in environment variables.")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", apperr.InvalidInput("Missing prompt.", nil)
	}

	var lastErr error
	for _, m := range s.models {
		if err := ctx.Err(); err != nil {
			return "", apperr.Upstream("generation cancelled", err)
		}

		text, err := m.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) == "" {
			err = fmt.Errorf("%s: %w", m.Name(), ErrEmptyCompletion)
		}
		if err != nil {
			lastErr = err
			s.logger.Warn("model failed, falling back",
				zap.String("model", m.Name()),
				zap.Error(err))
			continue
		}
		return text, nil
	}

	return "", apperr.Upstream("generation failed", lastErr).WithDetails(lastErr.Error())
}
