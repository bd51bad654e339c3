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

const newsAPIURL = "https://newsapi.org/v2/top-headlines"

type newsAPIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	country    string
	logger     *zap.Logger
}

type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// NewNewsAPIClient - client for newsapi.org top headlines
func NewNewsAPIClient(cfg *config.NewsConfig, logger *zap.Logger) repository.NewsProvider {
	return &newsAPIClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:  newsAPIURL,
		apiKey:   cfg.NewsAPIKey,
		language: cfg.Language,
		country:  cfg.Country,
		logger:   logger,
	}
}

func (c *newsAPIClient) Name() string {
	return domain.ProviderNewsAPI
}

func (c *newsAPIClient) Configured() bool {
	return c.apiKey != ""
}

func (c *newsAPIClient) Fetch(ctx context.Context, q domain.NewsQuery) ([]domain.NewsItem, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	params.Set("language", c.language)
	params.Set("country", c.country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("NewsAPI request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("NewsAPI returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("newsapi error: status %d", resp.StatusCode)
	}

	var data newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Error("Failed to decode NewsAPI response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]domain.NewsItem, 0, len(data.Articles))
	for _, a := range data.Articles {
		items = append(items, normalizeItem(domain.NewsItem{
			ID:          a.URL,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
			Provider:    domain.ProviderNewsAPI,
		}, "NewsAPI"))
	}

	c.logger.Debug("NewsAPI fetch completed",
		zap.String("query", q.Query),
		zap.Int("items", len(items)))

	return items, nil
}
