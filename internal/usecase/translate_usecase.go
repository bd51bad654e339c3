package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

// translatePrompt instructs the model to answer with a bare JSON object.
// The field set is the contract parseFilter decodes.
const translatePrompt = `Analyze the user's natural language search query and extract parameters for filtering posts.

Query: %s

Output ONLY the JSON object, nothing else:
{
  "post_types": ["job", "internship", "event", "news"],
  "keywords": [],
  "categories": [],
  "time_filter": null,
  "location_type": null
}`

// TranslateUseCase - turns free-text queries into structured post filters
type TranslateUseCase struct {
	completion repository.CompletionRepository
	logger     *zap.Logger
	timeout    time.Duration
}

func NewTranslateUseCase(
	completion repository.CompletionRepository,
	logger *zap.Logger,
	timeout time.Duration,
) *TranslateUseCase {
	return &TranslateUseCase{
		completion: completion,
		logger:     logger,
		timeout:    timeout,
	}
}

// Translate asks the completion backend to extract search parameters.
// Any backend or parsing failure maps to ErrTranslationFailed so callers
// can degrade to plain keyword search.
func (uc *TranslateUseCase) Translate(ctx context.Context, query string) (*domain.StructuredFilter, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.completion.Complete(ctx, fmt.Sprintf(translatePrompt, query))
	if err != nil {
		uc.logger.Warn("Query translation backend failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, errors.ErrTranslationFailed
	}

	filter, err := parseFilter(raw)
	if err != nil {
		uc.logger.Warn("Query translation returned unparsable output",
			zap.String("query", query),
			zap.String("raw", raw),
			zap.Error(err))
		return nil, errors.ErrTranslationFailed
	}

	uc.logger.Debug("Query translated",
		zap.String("query", query),
		zap.Strings("post_types", filter.PostTypes),
		zap.Strings("keywords", filter.Keywords),
		zap.String("time_filter", filter.TimeFilter),
		zap.String("location_type", filter.LocationType))

	return filter, nil
}

// parseFilter extracts the first {...} block from a completion and
// decodes it. Models tend to wrap the object in prose or code fences.
func parseFilter(raw string) (*domain.StructuredFilter, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in completion")
	}

	var filter domain.StructuredFilter
	if err := json.Unmarshal([]byte(raw[start:end+1]), &filter); err != nil {
		return nil, fmt.Errorf("failed to decode filter: %w", err)
	}

	return &filter, nil
}
