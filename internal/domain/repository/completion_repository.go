package repository

import "context"

// CompletionRepository defines a text-completion backend used for query
// translation. Implementations return the raw completion text; parsing
// is the caller's concern.
type CompletionRepository interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
