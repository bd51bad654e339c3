package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// attribute names come from internal callers, never from request input
var validField = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type documentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewDocumentRepository - JSONB-backed document store over a single
// documents table keyed by (collection, id)
func NewDocumentRepository(db *DB) repository.DocumentRepository {
	return &documentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *documentRepository) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	query := `SELECT attrs FROM documents WHERE collection = $1 AND id = $2`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, collection, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, errors.ErrDocumentNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get document",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	attrs := make(map[string]interface{})
	if err := json.Unmarshal(raw, &attrs); err != nil {
		r.logger.Error("Failed to unmarshal document attrs",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	return &domain.Document{ID: id, Attrs: attrs}, nil
}

func (r *documentRepository) Create(ctx context.Context, collection, id string, attrs map[string]interface{}) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}

	raw, err := json.Marshal(attrs)
	if err != nil {
		return "", errors.ErrStoreUnavailable
	}

	query := `
		INSERT INTO documents (collection, id, attrs)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, collection, id, raw)
	if err != nil {
		r.logger.Error("Failed to create document",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return "", errors.ErrStoreUnavailable
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return "", errors.ErrStoreUnavailable
	}
	if rows == 0 {
		return "", errors.ErrDocumentExists
	}

	return id, nil
}

func (r *documentRepository) Update(ctx context.Context, collection, id string, attrs map[string]interface{}) error {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return errors.ErrStoreUnavailable
	}

	// || merges top-level keys, matching document store update semantics
	query := `UPDATE documents SET attrs = attrs || $3 WHERE collection = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, collection, id, raw)
	if err != nil {
		r.logger.Error("Failed to update document",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return errors.ErrStoreUnavailable
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.ErrStoreUnavailable
	}
	if rows == 0 {
		return errors.ErrDocumentNotFound
	}

	return nil
}

func (r *documentRepository) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	if _, err := r.db.ExecContext(ctx, query, collection, id); err != nil {
		r.logger.Error("Failed to delete document",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return errors.ErrStoreUnavailable
	}

	return nil
}

func (r *documentRepository) Query(ctx context.Context, collection string, q domain.DocumentQuery) ([]*domain.Document, error) {
	query, args, err := buildQuery(collection, q)
	if err != nil {
		r.logger.Error("Failed to build document query",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query documents",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			r.logger.Warn("Failed to scan document row", zap.Error(err))
			continue
		}

		attrs := make(map[string]interface{})
		if err := json.Unmarshal(raw, &attrs); err != nil {
			r.logger.Warn("Failed to unmarshal document attrs",
				zap.String("id", id),
				zap.Error(err))
			continue
		}

		docs = append(docs, &domain.Document{ID: id, Attrs: attrs})
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Document query iteration failed",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	return docs, nil
}

// buildQuery assembles the SELECT for a document query. Parameter $1 is
// always the collection; filters take the following positions.
func buildQuery(collection string, q domain.DocumentQuery) (string, []interface{}, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, attrs FROM documents WHERE collection = $1`)

	args := []interface{}{collection}
	argIdx := 2

	for _, f := range q.Filters {
		clause, arg, err := buildFilterClause(f, argIdx)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" AND ")
		sb.WriteString(clause)
		args = append(args, arg)
		argIdx++
	}

	if q.OrderBy != "" {
		if !validField.MatchString(q.OrderBy) {
			return "", nil, fmt.Errorf("invalid order field: %q", q.OrderBy)
		}
		sb.WriteString(fmt.Sprintf(" ORDER BY attrs->>'%s'", q.OrderBy))
		if q.Descending {
			sb.WriteString(" DESC")
		}
	}

	if q.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argIdx))
		args = append(args, q.Limit)
	}

	return sb.String(), args, nil
}

// buildFilterClause maps one filter to a JSONB predicate:
//
//	==                 attrs @> {"field": value}
//	>= / <=            attrs->>'field' compared as text
//	in                 attrs->>'field' = ANY(values)
//	array_contains     attrs->'field' ? value
//	array_contains_any attrs->'field' ?| values
//
// Range comparisons rely on values being stored in lexicographically
// ordered form (geohashes, RFC3339 UTC timestamps).
func buildFilterClause(f domain.DocumentFilter, argIdx int) (string, interface{}, error) {
	if !validField.MatchString(f.Field) {
		return "", nil, fmt.Errorf("invalid filter field: %q", f.Field)
	}

	switch f.Op {
	case domain.OpEqual:
		raw, err := json.Marshal(map[string]interface{}{f.Field: f.Value})
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("attrs @> $%d", argIdx), raw, nil

	case domain.OpGreaterOrEqual:
		return fmt.Sprintf("attrs->>'%s' >= $%d", f.Field, argIdx), comparableValue(f.Value), nil

	case domain.OpLessOrEqual:
		return fmt.Sprintf("attrs->>'%s' <= $%d", f.Field, argIdx), comparableValue(f.Value), nil

	case domain.OpIn:
		values, err := stringValues(f.Value)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("attrs->>'%s' = ANY($%d)", f.Field, argIdx), pq.Array(values), nil

	case domain.OpArrayContains:
		value, ok := f.Value.(string)
		if !ok {
			return "", nil, fmt.Errorf("array_contains needs a string value, got %T", f.Value)
		}
		return fmt.Sprintf("attrs->'%s' ? $%d", f.Field, argIdx), value, nil

	case domain.OpArrayContainsAny:
		values, err := stringValues(f.Value)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("attrs->'%s' ?| $%d", f.Field, argIdx), pq.Array(values), nil
	}

	return "", nil, fmt.Errorf("unsupported filter op: %q", f.Op)
}

// comparableValue renders range filter values the same way they are
// stored: timestamps as RFC3339 UTC text, everything else as-is.
func comparableValue(v interface{}) interface{} {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return v
}

func stringValues(v interface{}) ([]string, error) {
	switch values := v.(type) {
	case []string:
		return values, nil
	case []interface{}:
		result := make([]string, 0, len(values))
		for _, item := range values {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("filter values must be strings, got %T", item)
			}
			result = append(result, s)
		}
		return result, nil
	}
	return nil, fmt.Errorf("filter values must be a string slice, got %T", v)
}
