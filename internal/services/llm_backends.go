package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/justsurfingit/internhunt/internal/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

const (
	DriverGenAI     = "genai"
	DriverLangChain = "langchain"
)

type genaiModel struct {
	client *genai.Client
	name   string
}

func (m *genaiModel) Name() string { return m.name }

func (m *genaiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.name, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", m.name, err)
	}
	return resp.Text(), nil
}

type langchainModel struct {
	llm  llms.Model
	name string
}

func (m *langchainModel) Name() string { return m.name }

func (m *langchainModel) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, m.llm, prompt, llms.WithModel(m.name))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%s: status %d: %w", m.name, apiErr.Code, err)
		}
		return "", fmt.Errorf("%s: %w", m.name, err)
	}
	return text, nil
}

// NewGenerationModels builds one Model per configured identifier, in
// fallback order. Without an API key it returns no models and generation
// fails with a config error on use.
func NewGenerationModels(ctx context.Context, cfg *config.Config, httpClient *http.Client, logger *zap.Logger, builders ...ModelBuilder) ([]Model, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, generation endpoints disabled")
		return nil, nil
	}

	var models []Model
	switch cfg.GeminiDriver {
	case DriverLangChain:
		for _, name := range cfg.GeminiModels {
			llm, err := googleai.New(ctx,
				googleai.WithAPIKey(cfg.GeminiAPIKey),
				googleai.WithDefaultModel(name),
				googleai.WithHTTPClient(httpClient),
			)
			if err != nil {
				return nil, fmt.Errorf("create langchain model %s: %w", name, err)
			}
			models = append(models, Chain(&langchainModel{llm: llm, name: name}, builders...))
		}
	case DriverGenAI, "":
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      cfg.GeminiAPIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  httpClient,
			HTTPOptions: genai.HTTPOptions{BaseURL: cfg.GeminiBaseURL},
		})
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		for _, name := range cfg.GeminiModels {
			models = append(models, Chain(&genaiModel{client: client, name: name}, builders...))
		}
	default:
		return nil, fmt.Errorf("unknown GEMINI_DRIVER %q", cfg.GeminiDriver)
	}

	logger.Info("generation models ready",
		zap.String("driver", cfg.GeminiDriver),
		zap.Strings("models", cfg.GeminiModels))
	return models, nil
}
