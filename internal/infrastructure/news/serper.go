package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/citypulse-backend/internal/config"
	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"go.uber.org/zap"
)

const serperURL = "https://google.serper.dev/news"

type serperClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	country    string
	logger     *zap.Logger
}

type serperRequest struct {
	Query    string `json:"q"`
	Language string `json:"hl"`
	Country  string `json:"gl"`
	Num      int    `json:"num"`
}

type serperResponse struct {
	News []struct {
		Link        string `json:"link"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Source      string `json:"source"`
		Thumbnail   string `json:"thumbnail"`
		Date        string `json:"date"`
	} `json:"news"`
}

// NewSerperClient - client for the Serper news endpoint
func NewSerperClient(cfg *config.NewsConfig, logger *zap.Logger) repository.NewsProvider {
	return &serperClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:  serperURL,
		apiKey:   cfg.SerperKey,
		language: cfg.Language,
		country:  cfg.Country,
		logger:   logger,
	}
}

func (c *serperClient) Name() string {
	return domain.ProviderSerper
}

func (c *serperClient) Configured() bool {
	return c.apiKey != ""
}

func (c *serperClient) Fetch(ctx context.Context, q domain.NewsQuery) ([]domain.NewsItem, error) {
	payload, err := json.Marshal(serperRequest{
		Query:    q.Query,
		Language: c.language,
		Country:  c.country,
		Num:      q.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Serper request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Serper returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("serper error: status %d", resp.StatusCode)
	}

	var data serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Error("Failed to decode Serper response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]domain.NewsItem, 0, len(data.News))
	for _, n := range data.News {
		items = append(items, normalizeItem(domain.NewsItem{
			ID:          n.Link,
			Title:       n.Title,
			Description: n.Description,
			URL:         n.Link,
			Source:      n.Source,
			ImageURL:    n.Thumbnail,
			PublishedAt: n.Date,
			Provider:    domain.ProviderSerper,
		}, "Serper"))
	}

	c.logger.Debug("Serper fetch completed",
		zap.String("query", q.Query),
		zap.Int("items", len(items)))

	return items, nil
}
