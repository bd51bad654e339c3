package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/citypulse-backend/internal/config"
	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// maxArticleChars caps extracted text at whole paragraphs.
const maxArticleChars = 4000

var contentSelectors = []string{
	"article p",
	".article-body p",
	".article-content p",
	".post-content p",
	".entry-content p",
	"main p",
	"#content p",
	"p",
}

var titleSelectors = []string{
	"h1",
	".article-title",
	".headline",
	".entry-title",
	"title",
}

type articleClient struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewArticleClient - readable-text extractor for news article pages
func NewArticleClient(cfg *config.NewsConfig, logger *zap.Logger) repository.ArticleRepository {
	return &articleClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (c *articleClient) Extract(ctx context.Context, pageURL string) (*domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; citypulse/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Article request failed",
			zap.String("url", pageURL),
			zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Article page returned error",
			zap.String("url", pageURL),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("article fetch error: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, footer, aside").Remove()

	text := extractParagraphs(doc)
	if text == "" {
		return nil, fmt.Errorf("no readable content found")
	}

	article := &domain.Article{
		URL:   pageURL,
		Title: extractTitle(doc),
		Text:  text,
	}

	c.logger.Debug("Article extracted",
		zap.String("url", pageURL),
		zap.Int("chars", len(article.Text)))

	return article, nil
}

func extractParagraphs(doc *goquery.Document) string {
	var best []string

	for _, selector := range contentSelectors {
		var paragraphs []string
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 {
			best = paragraphs
			break
		}
		if len(paragraphs) > len(best) {
			best = paragraphs
		}
	}

	var out []string
	total := 0
	for _, p := range best {
		if total+len(p) > maxArticleChars && len(out) > 0 {
			break
		}
		out = append(out, p)
		total += len(p) + 2
	}

	return strings.Join(out, "\n\n")
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if title != "" {
			return title
		}
	}
	return ""
}
