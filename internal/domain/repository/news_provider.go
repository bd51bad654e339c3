package repository

import (
	"context"

	"github.com/citypulse-backend/internal/domain"
)

// NewsProvider defines one external news source. Providers normalize
// their responses into domain.NewsItem; an unconfigured provider reports
// Configured() == false and is skipped without error.
type NewsProvider interface {
	// Name returns the provider identifier used in API filters
	Name() string

	// Configured reports whether the provider has the credentials or
	// sources it needs to serve requests
	Configured() bool

	// Fetch returns normalized items for a query. A configured provider
	// with nothing to return yields an empty slice, not an error.
	Fetch(ctx context.Context, q domain.NewsQuery) ([]domain.NewsItem, error)
}
