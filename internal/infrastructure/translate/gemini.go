package translate

import (
	"context"
	"fmt"

	"github.com/citypulse-backend/internal/config"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiClient - completion backend using the Gemini API
func NewGeminiClient(ctx context.Context, cfg *config.TranslatorConfig, logger *zap.Logger) (repository.CompletionRepository, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  cfg.GeminiModel,
		logger: logger,
	}, nil
}

func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.logger.Error("Gemini request failed", zap.Error(err))
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	c.logger.Debug("Gemini completion received",
		zap.String("model", c.model),
		zap.Int("length", len(text)))

	return text, nil
}
