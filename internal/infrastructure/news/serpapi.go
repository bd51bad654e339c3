package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/citypulse-backend/internal/config"
	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"go.uber.org/zap"
)

const serpAPIURL = "https://serpapi.com/search.json"

type serpAPIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	country    string
	logger     *zap.Logger
}

type serpAPIResponse struct {
	NewsResults []struct {
		Link      string `json:"link"`
		Title     string `json:"title"`
		Snippet   string `json:"snippet"`
		Source    string `json:"source"`
		Thumbnail string `json:"thumbnail"`
		Date      string `json:"date"`
	} `json:"news_results"`
}

// NewSerpAPIClient - client for the SerpAPI google_news engine
func NewSerpAPIClient(cfg *config.NewsConfig, logger *zap.Logger) repository.NewsProvider {
	return &serpAPIClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:  serpAPIURL,
		apiKey:   cfg.SerpAPIKey,
		language: cfg.Language,
		country:  cfg.Country,
		logger:   logger,
	}
}

func (c *serpAPIClient) Name() string {
	return domain.ProviderSerpAPI
}

func (c *serpAPIClient) Configured() bool {
	return c.apiKey != ""
}

func (c *serpAPIClient) Fetch(ctx context.Context, q domain.NewsQuery) ([]domain.NewsItem, error) {
	params := url.Values{}
	params.Set("engine", "google_news")
	params.Set("q", q.Query)
	params.Set("api_key", c.apiKey)
	params.Set("hl", c.language)
	params.Set("gl", c.country)
	params.Set("num", strconv.Itoa(q.PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("SerpAPI request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("SerpAPI returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("serpapi error: status %d", resp.StatusCode)
	}

	var data serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Error("Failed to decode SerpAPI response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]domain.NewsItem, 0, len(data.NewsResults))
	for _, n := range data.NewsResults {
		items = append(items, normalizeItem(domain.NewsItem{
			ID:          n.Link,
			Title:       n.Title,
			Description: n.Snippet,
			URL:         n.Link,
			Source:      n.Source,
			ImageURL:    n.Thumbnail,
			PublishedAt: n.Date,
			Provider:    domain.ProviderSerpAPI,
		}, "SerpAPI"))
	}

	c.logger.Debug("SerpAPI fetch completed",
		zap.String("query", q.Query),
		zap.Int("items", len(items)))

	return items, nil
}
