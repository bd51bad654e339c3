package testhelpers

import (
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/repository/docstore"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewDBForTest creates a docstore.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *docstore.DB {
	return docstore.NewDBForTest(db, logger)
}

// NewDocumentRepositoryForTest creates a document repository with test database and logger
func NewDocumentRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DocumentRepository {
	return docstore.NewDocumentRepository(NewDBForTest(db, logger))
}
