package news

import "github.com/citypulse-backend/internal/domain"

// normalizeItem fills gaps a provider may leave so downstream code can
// rely on every item having a title and a source.
func normalizeItem(item domain.NewsItem, displayName string) domain.NewsItem {
	if item.Title == "" {
		item.Title = "(untitled)"
	}
	if item.Source == "" {
		item.Source = displayName
	}
	if item.ID == "" {
		item.ID = item.URL
	}
	return item
}
