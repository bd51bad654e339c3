package repository

import (
	"context"

	"github.com/citypulse-backend/internal/domain"
)

// ArticleRepository defines readable-article extraction from a web page
type ArticleRepository interface {
	Extract(ctx context.Context, url string) (*domain.Article, error)
}
