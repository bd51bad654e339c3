package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/citypulse-backend/internal/config"
	"github.com/citypulse-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newsTestConfig() *config.NewsConfig {
	return &config.NewsConfig{
		NewsAPIKey:     "test_key",
		SerpAPIKey:     "test_key",
		SerperKey:      "test_key",
		Language:       "en",
		Country:        "cm",
		RequestTimeout: 10 * time.Second,
	}
}

func TestNewsAPIClient_Fetch(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		var gotAuth string
		var gotQuery string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.Query().Get("q")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": "ok",
				"articles": [
					{
						"title": "Road repairs begin in Douala",
						"description": "Major arteries closed this week",
						"url": "https://example.com/a1",
						"source": {"name": "Cameroon Tribune"},
						"urlToImage": "https://example.com/a1.jpg",
						"publishedAt": "2025-07-01T08:00:00Z"
					},
					{
						"title": "",
						"description": "no title on this one",
						"url": "https://example.com/a2",
						"source": {"name": ""},
						"urlToImage": "",
						"publishedAt": ""
					}
				]
			}`))
		}))
		defer server.Close()

		client := NewNewsAPIClient(newsTestConfig(), logger).(*newsAPIClient)
		client.baseURL = server.URL

		items, err := client.Fetch(context.Background(), domain.NewsQuery{
			Query:    "Douala",
			Page:     1,
			PageSize: 20,
		})
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "test_key", gotAuth)
		assert.Equal(t, "Douala", gotQuery)

		assert.Equal(t, "Road repairs begin in Douala", items[0].Title)
		assert.Equal(t, "https://example.com/a1", items[0].URL)
		assert.Equal(t, "Cameroon Tribune", items[0].Source)
		assert.Equal(t, "https://example.com/a1.jpg", items[0].ImageURL)
		assert.Equal(t, "2025-07-01T08:00:00Z", items[0].PublishedAt)
		assert.Equal(t, domain.ProviderNewsAPI, items[0].Provider)

		// Missing fields get provider defaults
		assert.Equal(t, "(untitled)", items[1].Title)
		assert.Equal(t, "NewsAPI", items[1].Source)
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
		}))
		defer server.Close()

		client := NewNewsAPIClient(newsTestConfig(), logger).(*newsAPIClient)
		client.baseURL = server.URL

		items, err := client.Fetch(context.Background(), domain.NewsQuery{Query: "x", Page: 1, PageSize: 20})
		assert.Error(t, err)
		assert.Nil(t, items)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("not configured without key", func(t *testing.T) {
		cfg := newsTestConfig()
		cfg.NewsAPIKey = ""
		client := NewNewsAPIClient(cfg, logger)
		assert.False(t, client.Configured())
		assert.Equal(t, domain.ProviderNewsAPI, client.Name())
	})
}

func TestSerpAPIClient_Fetch(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		var gotEngine, gotKey string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotEngine = r.URL.Query().Get("engine")
			gotKey = r.URL.Query().Get("api_key")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"news_results": [
					{
						"link": "https://example.com/s1",
						"title": "Market reopens after fire",
						"snippet": "Traders return to the central market",
						"source": "CRTV",
						"thumbnail": "https://example.com/s1.jpg",
						"date": "07/02/2025, 09:00 AM, +0000 UTC"
					}
				]
			}`))
		}))
		defer server.Close()

		client := NewSerpAPIClient(newsTestConfig(), logger).(*serpAPIClient)
		client.baseURL = server.URL

		items, err := client.Fetch(context.Background(), domain.NewsQuery{Query: "market", Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, items, 1)

		assert.Equal(t, "google_news", gotEngine)
		assert.Equal(t, "test_key", gotKey)
		assert.Equal(t, "Market reopens after fire", items[0].Title)
		assert.Equal(t, "Traders return to the central market", items[0].Description)
		assert.Equal(t, "CRTV", items[0].Source)
		assert.Equal(t, domain.ProviderSerpAPI, items[0].Provider)
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Missing query"}`))
		}))
		defer server.Close()

		client := NewSerpAPIClient(newsTestConfig(), logger).(*serpAPIClient)
		client.baseURL = server.URL

		items, err := client.Fetch(context.Background(), domain.NewsQuery{Query: "", Page: 1, PageSize: 10})
		assert.Error(t, err)
		assert.Nil(t, items)
	})
}

func TestSerperClient_Fetch(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		var gotAPIKey, gotContentType string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAPIKey = r.Header.Get("X-API-KEY")
			gotContentType = r.Header.Get("Content-Type")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"news": [
					{
						"link": "https://example.com/n1",
						"title": "New bus line announced",
						"description": "Route connects Bonaberi and Akwa",
						"source": "Journal du Cameroun",
						"thumbnail": "https://example.com/n1.jpg",
						"date": "2 hours ago"
					}
				]
			}`))
		}))
		defer server.Close()

		client := NewSerperClient(newsTestConfig(), logger).(*serperClient)
		client.baseURL = server.URL

		items, err := client.Fetch(context.Background(), domain.NewsQuery{Query: "transport", Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, items, 1)

		assert.Equal(t, "test_key", gotAPIKey)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "New bus line announced", items[0].Title)
		assert.Equal(t, "https://example.com/n1", items[0].URL)
		assert.Equal(t, domain.ProviderSerper, items[0].Provider)
	})

	t.Run("not configured without key", func(t *testing.T) {
		cfg := newsTestConfig()
		cfg.SerperKey = ""
		client := NewSerperClient(cfg, logger)
		assert.False(t, client.Configured())
	})
}

func TestRSSClient_Configured(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	cfg := newsTestConfig()
	client := NewRSSClient(cfg, logger)
	assert.False(t, client.Configured())

	cfg.RSSFeeds = []string{"https://example.com/feed.xml"}
	client = NewRSSClient(cfg, logger)
	assert.True(t, client.Configured())
	assert.Equal(t, domain.ProviderRSS, client.Name())
}

func TestRSSClient_Fetch(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>City Desk</title>
    <item>
      <title>Water cuts scheduled in Akwa</title>
      <link>https://example.com/r1</link>
      <description>Maintenance on the main line</description>
      <pubDate>Tue, 01 Jul 2025 08:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Second story</title>
      <link>https://example.com/r2</link>
    </item>
  </channel>
</rss>`))
	}))
	defer server.Close()

	t.Run("parses feed and caps items at page size", func(t *testing.T) {
		cfg := newsTestConfig()
		cfg.RSSFeeds = []string{server.URL}

		client := NewRSSClient(cfg, logger)
		items, err := client.Fetch(context.Background(), domain.NewsQuery{Query: "x", Page: 1, PageSize: 1})
		require.NoError(t, err)
		require.Len(t, items, 1)

		assert.Equal(t, "Water cuts scheduled in Akwa", items[0].Title)
		assert.Equal(t, "https://example.com/r1", items[0].URL)
		assert.Equal(t, "City Desk", items[0].Source)
		assert.Equal(t, "Tue, 01 Jul 2025 08:00:00 +0000", items[0].PublishedAt)
		assert.Equal(t, domain.ProviderRSS, items[0].Provider)
	})

	t.Run("broken feed does not fail the others", func(t *testing.T) {
		cfg := newsTestConfig()
		cfg.RSSFeeds = []string{"http://127.0.0.1:1/feed.xml", server.URL}

		client := NewRSSClient(cfg, logger)
		items, err := client.Fetch(context.Background(), domain.NewsQuery{Query: "x", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}

func TestNormalizeItem(t *testing.T) {
	item := normalizeItem(domain.NewsItem{URL: "https://example.com/x"}, "SomeProvider")
	assert.Equal(t, "(untitled)", item.Title)
	assert.Equal(t, "SomeProvider", item.Source)
	assert.Equal(t, "https://example.com/x", item.ID)

	item = normalizeItem(domain.NewsItem{ID: "id-1", Title: "t", Source: "s"}, "SomeProvider")
	assert.Equal(t, "t", item.Title)
	assert.Equal(t, "s", item.Source)
	assert.Equal(t, "id-1", item.ID)
}
