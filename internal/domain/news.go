package domain

import "time"

// News - stored news entry curated for the city feed
type News struct {
	ID              string    `json:"id,omitempty"`
	Headline        string    `json:"headline"`
	Summary         string    `json:"summary"`
	Source          string    `json:"source"`
	Tags            []string  `json:"tags,omitempty"`
	Topic           string    `json:"topic"`
	Location        *GeoPoint `json:"location,omitempty"`
	ShowFullArticle bool      `json:"show_full_article"`
	ArticleURL      *string   `json:"article_url,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewsItem - normalized article coming from an external provider.
// PublishedAt keeps the provider's raw timestamp string; formats differ
// between providers and unparsable values only affect ordering.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Source      string `json:"source"`
	ImageURL    string `json:"image_url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	Provider    string `json:"provider"`
}

// Identity - canonical dedupe key: URL when present, title otherwise
func (n *NewsItem) Identity() string {
	if n.URL != "" {
		return n.URL
	}
	return n.Title
}

// Known news provider names
const (
	ProviderNewsAPI = "newsapi"
	ProviderSerpAPI = "serpapi"
	ProviderSerper  = "serper"
	ProviderRSS     = "rss"
)

// NewsQuery - parameters passed to every news provider
type NewsQuery struct {
	Query    string
	Page     int
	PageSize int
}

// Article - readable text extracted from a news page
type Article struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}
