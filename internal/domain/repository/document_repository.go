package repository

import (
	"context"

	"github.com/citypulse-backend/internal/domain"
)

// DocumentRepository defines the storage contract for collections of
// attribute-map documents. Implementations must support range scans over
// string attributes and the Firestore-style array/in filters used by
// post queries.
type DocumentRepository interface {
	// Get returns a document by ID, ErrDocumentNotFound when absent
	Get(ctx context.Context, collection, id string) (*domain.Document, error)

	// Create stores a new document. An empty id requests a generated one;
	// an explicit id that already exists fails with ErrDocumentExists.
	// Returns the effective document ID.
	Create(ctx context.Context, collection, id string, attrs map[string]interface{}) (string, error)

	// Update merges top-level attributes into an existing document
	Update(ctx context.Context, collection, id string, attrs map[string]interface{}) error

	// Delete removes a document; deleting an absent document is a no-op
	Delete(ctx context.Context, collection, id string) error

	// Query returns documents matching all filters, optionally ordered
	// and limited
	Query(ctx context.Context, collection string, query domain.DocumentQuery) ([]*domain.Document, error)
}
