package domain

import "encoding/json"

// Collection names
const (
	CollectionUsers            = "users"
	CollectionPOIs             = "pois"
	CollectionInstitutions     = "institutions"
	CollectionInstitutionPosts = "institution_posts"
	CollectionNews             = "news"
)

// Document - schemaless record stored in a named collection
type Document struct {
	ID    string                 `json:"id"`
	Attrs map[string]interface{} `json:"attrs"`
}

// Decode unmarshals the document attributes into a typed model.
// The document ID is not part of Attrs and must be set by the caller.
func (d *Document) Decode(v interface{}) error {
	raw, err := json.Marshal(d.Attrs)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// ToAttrs converts a typed model into a document attribute map.
// Any "id" key is stripped: the ID lives on the document, not inside it.
func ToAttrs(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	attrs := make(map[string]interface{})
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, err
	}
	delete(attrs, "id")

	return attrs, nil
}

// FilterOp - comparison operator supported by document queries
type FilterOp string

const (
	OpEqual            FilterOp = "=="
	OpGreaterOrEqual   FilterOp = ">="
	OpLessOrEqual      FilterOp = "<="
	OpIn               FilterOp = "in"
	OpArrayContains    FilterOp = "array_contains"
	OpArrayContainsAny FilterOp = "array_contains_any"
)

// DocumentFilter - single field predicate applied by the store
type DocumentFilter struct {
	Field string
	Op    FilterOp
	Value interface{}
}

// DocumentQuery - filters plus optional ordering and limit
type DocumentQuery struct {
	Filters    []DocumentFilter
	OrderBy    string
	Descending bool
	Limit      int
}
