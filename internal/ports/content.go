package ports

import (
	"context"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
)

// ContentLoader materialises a landing page from an external source.
//
// Error mapping expectations:
//   - missing files → page.ErrCodeNotFound
//   - YAML syntax or schema failures → page.ErrCodeValidation
//   - context cancellation → page.ErrCodeCancelled
//   - anything else → page.ErrCodeInternal with the cause wrapped
type ContentLoader interface {
	// Load reads and validates the page at path. An empty path selects the
	// built-in default page.
	Load(ctx context.Context, path string) (*page.Page, error)

	// Validate checks a document without returning it.
	Validate(ctx context.Context, path string) error
}
