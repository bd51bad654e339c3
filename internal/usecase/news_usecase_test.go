package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/pkg/errors"
	"github.com/citypulse-backend/internal/usecase"
	"github.com/citypulse-backend/internal/usecase/dto"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetNewsSearch(ctx context.Context, key string) ([]domain.NewsItem, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

func (m *MockCacheRepository) SetNewsSearch(ctx context.Context, key string, items []domain.NewsItem, ttl time.Duration) error {
	args := m.Called(ctx, key, items, ttl)
	return args.Error(0)
}

// MockArticleRepository is a mock of ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Extract(ctx context.Context, url string) (*domain.Article, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

// fakeProvider is a canned NewsProvider; fetches is read with atomic
// because the use case fans out in goroutines.
type fakeProvider struct {
	name       string
	configured bool
	items      []domain.NewsItem
	err        error
	fetches    int32
}

func (p *fakeProvider) Name() string     { return p.name }
func (p *fakeProvider) Configured() bool { return p.configured }

func (p *fakeProvider) Fetch(ctx context.Context, q domain.NewsQuery) ([]domain.NewsItem, error) {
	atomic.AddInt32(&p.fetches, 1)
	if p.err != nil {
		return nil, p.err
	}
	return p.items, nil
}

func (p *fakeProvider) fetchCount() int {
	return int(atomic.LoadInt32(&p.fetches))
}

func newNewsUseCase(
	docRepo *MockDocumentRepository,
	cacheRepo *MockCacheRepository,
	articleRepo *MockArticleRepository,
	providers ...repository.NewsProvider,
) *usecase.NewsUseCase {
	return usecase.NewNewsUseCase(
		docRepo,
		cacheRepo,
		articleRepo,
		providers,
		zap.NewNop(),
		15*time.Minute,
		"Cameroon",
	)
}

func TestNewsUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("merges providers, dedupes by URL and sorts newest first", func(t *testing.T) {
		newsapi := &fakeProvider{
			name:       domain.ProviderNewsAPI,
			configured: true,
			items: []domain.NewsItem{
				{Title: "A", URL: "https://example.com/a", PublishedAt: "2024-05-02T10:00:00Z", Provider: domain.ProviderNewsAPI},
				{Title: "Shared", URL: "https://example.com/shared", PublishedAt: "2024-05-01T10:00:00Z", Provider: domain.ProviderNewsAPI},
			},
		}
		serper := &fakeProvider{
			name:       domain.ProviderSerper,
			configured: true,
			items: []domain.NewsItem{
				{Title: "Shared again", URL: "https://example.com/shared", PublishedAt: "2024-05-03T10:00:00Z", Provider: domain.ProviderSerper},
				{Title: "B", URL: "https://example.com/b", PublishedAt: "2 hours ago", Provider: domain.ProviderSerper},
				{Title: "C", URL: "https://example.com/c", PublishedAt: "2024-05-03T10:00:00Z", Provider: domain.ProviderSerper},
			},
		}

		mockCache := &MockCacheRepository{}
		cacheKey := "news:search:all:mining:1:20"
		mockCache.On("GetNewsSearch", ctx, cacheKey).Return(nil, nil)
		mockCache.On("SetNewsSearch", ctx, cacheKey, mock.MatchedBy(func(items []domain.NewsItem) bool {
			return len(items) == 4 && items[0].Title == "C"
		}), 15*time.Minute).Return(nil)

		uc := newNewsUseCase(&MockDocumentRepository{}, mockCache, &MockArticleRepository{}, newsapi, serper)

		resp, err := uc.Search(ctx, dto.SearchNewsRequest{Query: "mining"})

		assert.NoError(t, err)
		assert.Equal(t, 4, resp.Total)
		assert.Len(t, resp.Items, 4)
		assert.Equal(t, "C", resp.Items[0].Title)
		assert.Equal(t, "A", resp.Items[1].Title)
		// The duplicate URL keeps the first registered provider's item
		// even though the other copy is newer.
		assert.Equal(t, "Shared", resp.Items[2].Title)
		assert.Equal(t, domain.ProviderNewsAPI, resp.Items[2].Provider)
		// Unparsable dates sort last.
		assert.Equal(t, "B", resp.Items[3].Title)
		assert.Equal(t, 1, newsapi.fetchCount())
		assert.Equal(t, 1, serper.fetchCount())
		mockCache.AssertExpectations(t)
	})

	t.Run("paginates the merged set", func(t *testing.T) {
		provider := &fakeProvider{
			name:       domain.ProviderNewsAPI,
			configured: true,
			items: []domain.NewsItem{
				{Title: "Newest", URL: "https://example.com/1", PublishedAt: "2024-05-03T10:00:00Z"},
				{Title: "Middle", URL: "https://example.com/2", PublishedAt: "2024-05-02T10:00:00Z"},
				{Title: "Oldest", URL: "https://example.com/3", PublishedAt: "2024-05-01T10:00:00Z"},
			},
		}

		mockCache := &MockCacheRepository{}
		mockCache.On("GetNewsSearch", ctx, "news:search:all:mining:2:2").Return(nil, nil)
		mockCache.On("SetNewsSearch", ctx, "news:search:all:mining:2:2", mock.Anything, mock.Anything).Return(nil)

		uc := newNewsUseCase(&MockDocumentRepository{}, mockCache, &MockArticleRepository{}, provider)

		resp, err := uc.Search(ctx, dto.SearchNewsRequest{Query: "mining", Page: 2, PageSize: 2})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, "Oldest", resp.Items[0].Title)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 2, resp.PageSize)
	})

	t.Run("empty query falls back to the default", func(t *testing.T) {
		provider := &fakeProvider{name: domain.ProviderNewsAPI, configured: true}

		mockCache := &MockCacheRepository{}
		mockCache.On("GetNewsSearch", ctx, "news:search:all:Cameroon:1:20").Return(nil, nil)
		mockCache.On("SetNewsSearch", ctx, "news:search:all:Cameroon:1:20", mock.Anything, mock.Anything).Return(nil)

		uc := newNewsUseCase(&MockDocumentRepository{}, mockCache, &MockArticleRepository{}, provider)

		resp, err := uc.Search(ctx, dto.SearchNewsRequest{})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		mockCache.AssertExpectations(t)
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		provider := &fakeProvider{name: domain.ProviderNewsAPI, configured: true}
		mockCache := &MockCacheRepository{}

		uc := newNewsUseCase(&MockDocumentRepository{}, mockCache, &MockArticleRepository{}, provider)

		resp, err := uc.Search(ctx, dto.SearchNewsRequest{Query: "mining", Provider: "bbc"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrInvalidProvider)
		assert.Equal(t, 0, provider.fetchCount())
		mockCache.AssertNotCalled(t, "GetNewsSearch", mock.Anything, mock.Anything)
	})

	t.Run("known but unconfigured provider returns nothing", func(t *testing.T) {
		provider := &fakeProvider{name: domain.ProviderSerpAPI, configured: false}

		mockCache := &MockCacheRepository{}
		mockCache.On("GetNewsSearch", ctx, "news:search:serpapi:mining:1:20").Return(nil, nil)
		mockCache.On("SetNewsSearch", ctx, "news:search:serpapi:mining:1:20", mock.Anything, mock.Anything).Return(nil)

		uc := newNewsUseCase(&MockDocumentRepository{}, mockCache, &MockArticleRepository{}, provider)

		resp, err := uc.Search(ctx, dto.SearchNewsRequest{Query: "mining", Provider: domain.ProviderSerpAPI})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Items)
		assert.Equal(t, 0, provider.fetchCount())
	})

	t.Run("provider failure contributes nothing", func(t *testing.T) {
		broken := &fakeProvider{name: domain.ProviderNewsAPI, configured: true, err: assert.AnError}
		healthy := &fakeProvider{
			name:       domain.ProviderSerper,
			configured: true,
			items: []domain.NewsItem{
				{Title: "Survivor", URL: "https://example.com/s", PublishedAt: "2024-05-01T10:00:00Z"},
			},
		}

		mockCache := &MockCacheRepository{}
		mockCache.On("GetNewsSearch", ctx, mock.Anything).Return(nil, nil)
		mockCache.On("SetNewsSearch", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := newNewsUseCase(&MockDocumentRepository{}, mockCache, &MockArticleRepository{}, broken, healthy)

		resp, err := uc.Search(ctx, dto.SearchNewsRequest{Query: "mining"})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "Survivor", resp.Items[0].Title)
		assert.Equal(t, 1, broken.fetchCount())
		assert.Equal(t, 1, healthy.fetchCount())
	})

	t.Run("cache hit skips the providers", func(t *testing.T) {
		provider := &fakeProvider{name: domain.ProviderNewsAPI, configured: true}

		cached := []domain.NewsItem{
			{Title: "One", URL: "https://example.com/1"},
			{Title: "Two", URL: "https://example.com/2"},
			{Title: "Three", URL: "https://example.com/3"},
		}
		mockCache := &MockCacheRepository{}
		mockCache.On("GetNewsSearch", ctx, "news:search:all:mining:1:2").Return(cached, nil)

		uc := newNewsUseCase(&MockDocumentRepository{}, mockCache, &MockArticleRepository{}, provider)

		resp, err := uc.Search(ctx, dto.SearchNewsRequest{Query: "mining", PageSize: 2})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, "One", resp.Items[0].Title)
		assert.Equal(t, 0, provider.fetchCount())
		mockCache.AssertNotCalled(t, "SetNewsSearch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache failure falls through to the providers", func(t *testing.T) {
		provider := &fakeProvider{
			name:       domain.ProviderNewsAPI,
			configured: true,
			items: []domain.NewsItem{
				{Title: "Fresh", URL: "https://example.com/f", PublishedAt: "2024-05-01T10:00:00Z"},
			},
		}

		mockCache := &MockCacheRepository{}
		mockCache.On("GetNewsSearch", ctx, mock.Anything).Return(nil, assert.AnError)
		mockCache.On("SetNewsSearch", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := newNewsUseCase(&MockDocumentRepository{}, mockCache, &MockArticleRepository{}, provider)

		resp, err := uc.Search(ctx, dto.SearchNewsRequest{Query: "mining"})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, 1, provider.fetchCount())
	})
}

func TestNewsUseCase_Article(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the extracted article", func(t *testing.T) {
		mockArticle := &MockArticleRepository{}
		mockArticle.On("Extract", ctx, "https://example.com/story").
			Return(&domain.Article{URL: "https://example.com/story", Title: "Story", Text: "Body text"}, nil)

		uc := newNewsUseCase(&MockDocumentRepository{}, &MockCacheRepository{}, mockArticle)

		article, err := uc.Article(ctx, "https://example.com/story")

		assert.NoError(t, err)
		assert.Equal(t, "Story", article.Title)
		mockArticle.AssertExpectations(t)
	})

	t.Run("extraction failure", func(t *testing.T) {
		mockArticle := &MockArticleRepository{}
		mockArticle.On("Extract", ctx, "https://example.com/broken").
			Return(nil, assert.AnError)

		uc := newNewsUseCase(&MockDocumentRepository{}, &MockCacheRepository{}, mockArticle)

		article, err := uc.Article(ctx, "https://example.com/broken")

		assert.Nil(t, article)
		assert.ErrorIs(t, err, errors.ErrArticleFetchFailed)
	})
}

func TestNewsUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a curated entry", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		mockDoc.On("Create", ctx, domain.CollectionNews, "", mock.MatchedBy(func(attrs map[string]interface{}) bool {
			return attrs["headline"] == "Port expansion approved" &&
				attrs["article_url"] == "https://example.com/port"
		})).Return("news-1", nil)

		uc := newNewsUseCase(mockDoc, &MockCacheRepository{}, &MockArticleRepository{})

		entry, err := uc.Create(ctx, dto.CreateNewsRequest{
			Headline:   "Port expansion approved",
			Summary:    "The council signed off on phase two.",
			Source:     "City Desk",
			Topic:      "infrastructure",
			ArticleURL: "https://example.com/port",
		})

		assert.NoError(t, err)
		assert.Equal(t, "news-1", entry.ID)
		assert.False(t, entry.Timestamp.IsZero())
		mockDoc.AssertExpectations(t)
	})

	t.Run("explicit timestamp is normalized to UTC seconds", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		mockDoc.On("Create", ctx, domain.CollectionNews, "", mock.Anything).Return("news-2", nil)

		uc := newNewsUseCase(mockDoc, &MockCacheRepository{}, &MockArticleRepository{})

		loc := time.FixedZone("WAT", 3600)
		entry, err := uc.Create(ctx, dto.CreateNewsRequest{
			Headline:  "Festival dates announced",
			Timestamp: time.Date(2024, 5, 1, 12, 30, 45, 999999999, loc),
		})

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 11, 30, 45, 0, time.UTC), entry.Timestamp)
	})
}

func TestNewsUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty update is rejected", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		uc := newNewsUseCase(mockDoc, &MockCacheRepository{}, &MockArticleRepository{})

		entry, err := uc.Update(ctx, "news-1", dto.UpdateNewsRequest{})

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		mockDoc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
