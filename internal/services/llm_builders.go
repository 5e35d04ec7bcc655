package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/justsurfingit/internhunt/internal/metrics"
	"go.uber.org/zap"
)

type LogBuilder struct {
	logger *zap.Logger
}

var _ ModelBuilder = &LogBuilder{}

func NewLogBuilder(logger *zap.Logger) *LogBuilder {
	return &LogBuilder{logger: logger}
}

func (b *LogBuilder) Next(next Model) Model {
	return modelFunc{name: next.Name(), fn: func(ctx context.Context, prompt string) (string, error) {
		logger := b.logger.With(zap.String("model", next.Name()))
		logger.Debug("generate", zap.Int("prompt_len", len(prompt)))

		text, err := next.Generate(ctx, prompt)
		if err != nil {
			logger.Error("generate failed", zap.Error(err))
			return text, err
		}
		logger.Debug("generate ok", zap.Int("text_len", len(text)))
		return text, nil
	}}
}

type MetricsBuilder struct{}

var _ ModelBuilder = MetricsBuilder{}

func (MetricsBuilder) Next(next Model) Model {
	return modelFunc{name: next.Name(), fn: func(ctx context.Context, prompt string) (string, error) {
		start := time.Now()
		text, err := next.Generate(ctx, prompt)
		if errors.Is(err, context.Canceled) {
			return text, err
		}

		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
		} else if strings.TrimSpace(text) == "" {
			outcome = metrics.OutcomeEmpty
		}
		metrics.ObserveGeneration(next.Name(), outcome, time.Since(start))
		return text, err
	}}
}
