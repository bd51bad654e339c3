package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/pkg/errors"
	"github.com/citypulse-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	defaultNewsPage     = 1
	defaultNewsPageSize = 20
	defaultNewsLimit    = 50
)

// publishedAtLayouts covers the timestamp formats the providers emit.
// Relative dates ("2 hours ago") stay unparsed and sort last.
var publishedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006, 03:04 PM, -0700 MST",
}

// NewsUseCase - stored news CRUD plus aggregated web search
type NewsUseCase struct {
	docRepo      repository.DocumentRepository
	cacheRepo    repository.CacheRepository
	articleRepo  repository.ArticleRepository
	providers    []repository.NewsProvider
	logger       *zap.Logger
	cacheTTL     time.Duration
	defaultQuery string
}

func NewNewsUseCase(
	docRepo repository.DocumentRepository,
	cacheRepo repository.CacheRepository,
	articleRepo repository.ArticleRepository,
	providers []repository.NewsProvider,
	logger *zap.Logger,
	cacheTTL time.Duration,
	defaultQuery string,
) *NewsUseCase {
	return &NewsUseCase{
		docRepo:      docRepo,
		cacheRepo:    cacheRepo,
		articleRepo:  articleRepo,
		providers:    providers,
		logger:       logger,
		cacheTTL:     cacheTTL,
		defaultQuery: defaultQuery,
	}
}

func (uc *NewsUseCase) Create(ctx context.Context, req dto.CreateNewsRequest) (*domain.News, error) {
	now := time.Now().UTC().Truncate(time.Second)

	entry := domain.News{
		Headline:        req.Headline,
		Summary:         req.Summary,
		Source:          req.Source,
		Tags:            req.Tags,
		Topic:           req.Topic,
		Location:        req.Location,
		ShowFullArticle: req.ShowFullArticle,
		Timestamp:       now,
		CreatedAt:       now,
	}
	if !req.Timestamp.IsZero() {
		entry.Timestamp = req.Timestamp.UTC().Truncate(time.Second)
	}
	if req.ArticleURL != "" {
		entry.ArticleURL = &req.ArticleURL
	}

	attrs, err := domain.ToAttrs(&entry)
	if err != nil {
		uc.logger.Error("Failed to encode news entry", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	id, err := uc.docRepo.Create(ctx, domain.CollectionNews, "", attrs)
	if err != nil {
		uc.logger.Error("Failed to create news entry", zap.Error(err))
		return nil, err
	}
	entry.ID = id

	return &entry, nil
}

func (uc *NewsUseCase) Get(ctx context.Context, id string) (*domain.News, error) {
	doc, err := uc.docRepo.Get(ctx, domain.CollectionNews, id)
	if err != nil {
		return nil, err
	}

	var entry domain.News
	if err := doc.Decode(&entry); err != nil {
		uc.logger.Error("Failed to decode news entry", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	entry.ID = doc.ID

	return &entry, nil
}

func (uc *NewsUseCase) List(ctx context.Context, limit int) (*dto.NewsListResponse, error) {
	if limit == 0 {
		limit = defaultNewsLimit
	}

	docs, err := uc.docRepo.Query(ctx, domain.CollectionNews, domain.DocumentQuery{
		OrderBy:    "created_at",
		Descending: true,
		Limit:      limit,
	})
	if err != nil {
		uc.logger.Error("Failed to list news entries", zap.Error(err))
		return nil, err
	}

	entries := make([]domain.News, 0, len(docs))
	for _, doc := range docs {
		var entry domain.News
		if err := doc.Decode(&entry); err != nil {
			uc.logger.Warn("Skipping undecodable news entry",
				zap.String("id", doc.ID),
				zap.Error(err))
			continue
		}
		entry.ID = doc.ID
		entries = append(entries, entry)
	}

	return &dto.NewsListResponse{
		News:  entries,
		Total: len(entries),
	}, nil
}

func (uc *NewsUseCase) Update(ctx context.Context, id string, req dto.UpdateNewsRequest) (*domain.News, error) {
	attrs := req.Attrs()
	if len(attrs) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "no fields to update",
		})
	}

	if err := uc.docRepo.Update(ctx, domain.CollectionNews, id, attrs); err != nil {
		if !errors.Is(err, errors.ErrDocumentNotFound) {
			uc.logger.Error("Failed to update news entry", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	return uc.Get(ctx, id)
}

func (uc *NewsUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.docRepo.Delete(ctx, domain.CollectionNews, id); err != nil {
		uc.logger.Error("Failed to delete news entry", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Search fans the query out to the configured providers, merges their
// results and serves the requested page of the aggregate. A provider
// failure never fails the search, it just contributes nothing.
func (uc *NewsUseCase) Search(ctx context.Context, req dto.SearchNewsRequest) (*dto.SearchNewsResponse, error) {
	if req.Query == "" {
		req.Query = uc.defaultQuery
	}
	if req.Page == 0 {
		req.Page = defaultNewsPage
	}
	if req.PageSize == 0 {
		req.PageSize = defaultNewsPageSize
	}

	providers, err := uc.resolveProviders(req.Provider)
	if err != nil {
		return nil, err
	}

	providerKey := req.Provider
	if providerKey == "" {
		providerKey = "all"
	}
	cacheKey := fmt.Sprintf("news:search:%s:%s:%d:%d", providerKey, req.Query, req.Page, req.PageSize)

	if cached, err := uc.cacheRepo.GetNewsSearch(ctx, cacheKey); err != nil {
		uc.logger.Warn("News cache lookup failed", zap.String("key", cacheKey), zap.Error(err))
	} else if cached != nil {
		uc.logger.Debug("News search served from cache", zap.String("key", cacheKey))
		return &dto.SearchNewsResponse{
			Items:    paginate(cached, req.Page, req.PageSize),
			Total:    len(cached),
			Page:     req.Page,
			PageSize: req.PageSize,
		}, nil
	}

	merged := uc.fetchAll(ctx, providers, domain.NewsQuery{
		Query:    req.Query,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	sort.SliceStable(merged, func(i, j int) bool {
		return parsePublishedAt(merged[i].PublishedAt).After(parsePublishedAt(merged[j].PublishedAt))
	})

	if err := uc.cacheRepo.SetNewsSearch(ctx, cacheKey, merged, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache news search", zap.String("key", cacheKey), zap.Error(err))
	}

	return &dto.SearchNewsResponse{
		Items:    paginate(merged, req.Page, req.PageSize),
		Total:    len(merged),
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// Article extracts the readable text of a news page.
func (uc *NewsUseCase) Article(ctx context.Context, url string) (*domain.Article, error) {
	article, err := uc.articleRepo.Extract(ctx, url)
	if err != nil {
		uc.logger.Warn("Article extraction failed", zap.String("url", url), zap.Error(err))
		return nil, errors.ErrArticleFetchFailed.WithDetails(map[string]interface{}{
			"url": url,
		})
	}
	return article, nil
}

// resolveProviders picks the providers taking part in a search. An
// unknown name is a client error; a known but unconfigured provider
// yields an empty set so the search returns no results without failing.
func (uc *NewsUseCase) resolveProviders(name string) ([]repository.NewsProvider, error) {
	if name == "" {
		var configured []repository.NewsProvider
		for _, p := range uc.providers {
			if p.Configured() {
				configured = append(configured, p)
			}
		}
		return configured, nil
	}

	for _, p := range uc.providers {
		if p.Name() == name {
			if !p.Configured() {
				uc.logger.Debug("Provider requested but not configured", zap.String("provider", name))
				return nil, nil
			}
			return []repository.NewsProvider{p}, nil
		}
	}

	return nil, errors.ErrInvalidProvider.WithDetails(map[string]interface{}{
		"provider": name,
	})
}

// fetchAll queries the providers concurrently and merges their items in
// provider registration order, dropping duplicates (first provider wins).
func (uc *NewsUseCase) fetchAll(ctx context.Context, providers []repository.NewsProvider, q domain.NewsQuery) []domain.NewsItem {
	type providerResult struct {
		name  string
		items []domain.NewsItem
	}

	resultChan := make(chan providerResult, len(providers))

	var wg sync.WaitGroup
	for _, p := range providers {
		wg.Add(1)
		go func(p repository.NewsProvider) {
			defer wg.Done()

			items, err := p.Fetch(ctx, q)
			if err != nil {
				uc.logger.Warn("News provider fetch failed",
					zap.String("provider", p.Name()),
					zap.Error(err))
				resultChan <- providerResult{name: p.Name()}
				return
			}
			resultChan <- providerResult{name: p.Name(), items: items}
		}(p)
	}

	wg.Wait()
	close(resultChan)

	byProvider := make(map[string][]domain.NewsItem, len(providers))
	for res := range resultChan {
		byProvider[res.name] = res.items
	}

	seen := make(map[string]struct{})
	var merged []domain.NewsItem
	for _, p := range providers {
		for _, item := range byProvider[p.Name()] {
			key := item.Identity()
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, item)
		}
	}

	uc.logger.Debug("News fetch merged",
		zap.Int("providers", len(providers)),
		zap.Int("items", len(merged)))

	return merged
}

func parsePublishedAt(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func paginate(items []domain.NewsItem, page, size int) []domain.NewsItem {
	start := (page - 1) * size
	if start >= len(items) {
		return []domain.NewsItem{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
