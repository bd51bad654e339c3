package testhelpers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// InsertDocument writes a document straight into the table, bypassing the
// repository, so tests can stage data independently of the code under test
func InsertDocument(db *sql.DB, collection, id string, attrs map[string]interface{}) error {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("marshal fixture attrs: %w", err)
	}

	_, err = db.ExecContext(context.Background(),
		"INSERT INTO documents (collection, id, attrs) VALUES ($1, $2, $3)",
		collection, id, raw)
	if err != nil {
		return fmt.Errorf("insert fixture %s/%s: %w", collection, id, err)
	}
	return nil
}

// GetAttrs reads raw document attributes for assertions
func GetAttrs(db *sql.DB, collection, id string) (map[string]interface{}, error) {
	var raw []byte
	err := db.QueryRowContext(context.Background(),
		"SELECT attrs FROM documents WHERE collection = $1 AND id = $2",
		collection, id).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("get fixture %s/%s: %w", collection, id, err)
	}

	attrs := make(map[string]interface{})
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, fmt.Errorf("unmarshal fixture attrs: %w", err)
	}
	return attrs, nil
}

// CountDocuments returns how many documents a collection holds
func CountDocuments(db *sql.DB, collection string) (int, error) {
	var count int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM documents WHERE collection = $1",
		collection).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count documents in %s: %w", collection, err)
	}
	return count, nil
}
