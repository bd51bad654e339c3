package docstore

import (
	"testing"
	"time"

	"github.com/citypulse-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilterClause(t *testing.T) {
	tests := []struct {
		name    string
		filter  domain.DocumentFilter
		clause  string
		wantErr bool
	}{
		{
			name:   "equality uses containment",
			filter: domain.DocumentFilter{Field: "visibility", Op: domain.OpEqual, Value: "public"},
			clause: "attrs @> $3",
		},
		{
			name:   "range lower bound",
			filter: domain.DocumentFilter{Field: "geohash", Op: domain.OpGreaterOrEqual, Value: "s0z0000"},
			clause: "attrs->>'geohash' >= $3",
		},
		{
			name:   "range upper bound",
			filter: domain.DocumentFilter{Field: "geohash", Op: domain.OpLessOrEqual, Value: "s0z9zzz"},
			clause: "attrs->>'geohash' <= $3",
		},
		{
			name:   "in over scalar field",
			filter: domain.DocumentFilter{Field: "type_of_post", Op: domain.OpIn, Value: []string{"job", "event"}},
			clause: "attrs->>'type_of_post' = ANY($3)",
		},
		{
			name:   "array contains single value",
			filter: domain.DocumentFilter{Field: "categories", Op: domain.OpArrayContains, Value: "transport"},
			clause: "attrs->'categories' ? $3",
		},
		{
			name:   "array contains any",
			filter: domain.DocumentFilter{Field: "categories", Op: domain.OpArrayContainsAny, Value: []string{"health", "jobs"}},
			clause: "attrs->'categories' ?| $3",
		},
		{
			name:    "rejects unsafe field names",
			filter:  domain.DocumentFilter{Field: "geohash'; DROP TABLE documents; --", Op: domain.OpEqual, Value: "x"},
			wantErr: true,
		},
		{
			name:    "rejects unknown op",
			filter:  domain.DocumentFilter{Field: "geohash", Op: domain.FilterOp("!="), Value: "x"},
			wantErr: true,
		},
		{
			name:    "array_contains needs string value",
			filter:  domain.DocumentFilter{Field: "categories", Op: domain.OpArrayContains, Value: 42},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, _, err := buildFilterClause(tt.filter, 3)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.clause, clause)
		})
	}
}

func TestBuildQuery(t *testing.T) {
	t.Run("geohash range scan", func(t *testing.T) {
		q := domain.DocumentQuery{
			Filters: []domain.DocumentFilter{
				{Field: "geohash", Op: domain.OpGreaterOrEqual, Value: "s0z0000"},
				{Field: "geohash", Op: domain.OpLessOrEqual, Value: "s0z9zzz"},
			},
		}

		query, args, err := buildQuery("institution_posts", q)

		require.NoError(t, err)
		assert.Equal(t,
			"SELECT id, attrs FROM documents WHERE collection = $1"+
				" AND attrs->>'geohash' >= $2 AND attrs->>'geohash' <= $3",
			query)
		assert.Equal(t, []interface{}{"institution_posts", "s0z0000", "s0z9zzz"}, args)
	})

	t.Run("order by and limit", func(t *testing.T) {
		q := domain.DocumentQuery{
			OrderBy:    "created_at",
			Descending: true,
			Limit:      50,
		}

		query, args, err := buildQuery("institution_posts", q)

		require.NoError(t, err)
		assert.Equal(t,
			"SELECT id, attrs FROM documents WHERE collection = $1"+
				" ORDER BY attrs->>'created_at' DESC LIMIT $2",
			query)
		assert.Equal(t, []interface{}{"institution_posts", 50}, args)
	})

	t.Run("rejects unsafe order field", func(t *testing.T) {
		q := domain.DocumentQuery{OrderBy: "created_at; --"}

		_, _, err := buildQuery("documents", q)

		assert.Error(t, err)
	})

	t.Run("time values rendered as RFC3339 UTC", func(t *testing.T) {
		loc := time.FixedZone("WAT", 3600)
		q := domain.DocumentQuery{
			Filters: []domain.DocumentFilter{
				{
					Field: "created_at",
					Op:    domain.OpGreaterOrEqual,
					Value: time.Date(2026, 8, 25, 1, 0, 0, 0, loc),
				},
			},
		}

		_, args, err := buildQuery("institution_posts", q)

		require.NoError(t, err)
		assert.Equal(t, "2026-08-25T00:00:00Z", args[1])
	})
}
