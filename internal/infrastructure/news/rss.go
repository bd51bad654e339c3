package news

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/citypulse-backend/internal/config"
	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

type rssClient struct {
	parser *gofeed.Parser
	feeds  []string
	logger *zap.Logger
}

// NewRSSClient - client reading the configured RSS/Atom feeds
func NewRSSClient(cfg *config.NewsConfig, logger *zap.Logger) repository.NewsProvider {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{
		Timeout: cfg.RequestTimeout,
	}
	return &rssClient{
		parser: parser,
		feeds:  cfg.RSSFeeds,
		logger: logger,
	}
}

func (c *rssClient) Name() string {
	return domain.ProviderRSS
}

func (c *rssClient) Configured() bool {
	return len(c.feeds) > 0
}

func (c *rssClient) Fetch(ctx context.Context, q domain.NewsQuery) ([]domain.NewsItem, error) {
	var items []domain.NewsItem
	parsed := 0

	for _, feedURL := range c.feeds {
		feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			c.logger.Warn("Failed to parse RSS feed",
				zap.String("feed", feedURL),
				zap.Error(err))
			continue
		}
		parsed++

		entries := feed.Items
		if q.PageSize > 0 && len(entries) > q.PageSize {
			entries = entries[:q.PageSize]
		}
		for _, entry := range entries {
			items = append(items, normalizeItem(domain.NewsItem{
				ID:          entry.Link,
				Title:       entry.Title,
				Description: strings.TrimSpace(entry.Description),
				URL:         entry.Link,
				Source:      feed.Title,
				ImageURL:    entryImage(entry),
				PublishedAt: entryPublished(entry),
				Provider:    domain.ProviderRSS,
			}, "RSS"))
		}
	}

	c.logger.Debug("RSS fetch completed",
		zap.Int("feeds_ok", parsed),
		zap.Int("feeds_total", len(c.feeds)),
		zap.Int("items", len(items)))

	return items, nil
}

func entryImage(entry *gofeed.Item) string {
	for _, enc := range entry.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	if entry.Image != nil {
		return entry.Image.URL
	}
	return ""
}

func entryPublished(entry *gofeed.Item) string {
	if entry.Published != "" {
		return entry.Published
	}
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed.UTC().Format(time.RFC3339)
	}
	return ""
}
