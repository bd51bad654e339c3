package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/citypulse-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scraperTestConfig() *config.NewsConfig {
	return &config.NewsConfig{RequestTimeout: 10 * time.Second}
}

func TestArticleClient_Extract(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("extracts title and paragraphs", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Page title tag</title></head>
<body>
  <nav><p>Home | News | Sports | Contact us for details</p></nav>
  <article>
    <h1>Flooding closes the Bonaberi road</h1>
    <p>Heavy overnight rain flooded the main access road on Tuesday morning.</p>
    <p>Authorities said pumping crews were deployed before dawn to clear the lanes.</p>
    <p>Traffic is being diverted through the industrial zone until further notice.</p>
  </article>
  <footer><p>All rights reserved. Privacy policy and terms.</p></footer>
  <script>console.log("tracking")</script>
</body>
</html>`))
		}))
		defer server.Close()

		client := NewArticleClient(scraperTestConfig(), logger)
		article, err := client.Extract(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Equal(t, server.URL, article.URL)
		assert.Equal(t, "Flooding closes the Bonaberi road", article.Title)
		assert.Contains(t, article.Text, "Heavy overnight rain")
		assert.Contains(t, article.Text, "diverted through the industrial zone")
		assert.NotContains(t, article.Text, "Home | News", "navigation must be stripped")
		assert.NotContains(t, article.Text, "All rights reserved", "footer must be stripped")
		assert.NotContains(t, article.Text, "tracking", "scripts must be stripped")
	})

	t.Run("error status fails extraction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewArticleClient(scraperTestConfig(), logger)
		article, err := client.Extract(context.Background(), server.URL)
		assert.Error(t, err)
		assert.Nil(t, article)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("page without readable content fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<html><body><div>ok</div></body></html>`))
		}))
		defer server.Close()

		client := NewArticleClient(scraperTestConfig(), logger)
		_, err := client.Extract(context.Background(), server.URL)
		assert.Error(t, err)
	})

	t.Run("long articles are capped at whole paragraphs", func(t *testing.T) {
		long := strings.Repeat("word ", 300)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<html><body><article>` +
				`<p>` + long + `</p><p>` + long + `</p><p>` + long + `</p><p>` + long + `</p>` +
				`</article></body></html>`))
		}))
		defer server.Close()

		client := NewArticleClient(scraperTestConfig(), logger)
		article, err := client.Extract(context.Background(), server.URL)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(article.Text), maxArticleChars+len(long))
	})
}
