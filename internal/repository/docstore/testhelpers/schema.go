package testhelpers

import (
	"database/sql"
	"fmt"
)

// Mirrors scripts/schema.sql. Kept inline so the suite needs nothing but
// a reachable database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL,
		id         TEXT NOT NULL,
		attrs      JSONB NOT NULL DEFAULT '{}'::jsonb,
		PRIMARY KEY (collection, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_attrs
		ON documents USING GIN (attrs)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_geohash
		ON documents (collection, (attrs->>'geohash'))`,
	`CREATE INDEX IF NOT EXISTS idx_documents_created_at
		ON documents (collection, (attrs->>'created_at'))`,
}

// EnsureSchema creates the documents table and its indexes if absent
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
