package lint

import (
	"context"

	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

// Parser parses Python source into a FileSnapshot.
//
// The lint package defines this interface in the consumer package.
// Implementations (e.g., parser/treesitter) provide the concrete parsing logic.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw Python source into a FileSnapshot.
	//
	// Parameters:
	//   - ctx: context for cancellation and timeout propagation.
	//   - path: logical file path (for diagnostics; must not be used for I/O).
	//   - content: raw source bytes (must not be mutated by the implementation).
	//
	// Returns:
	//   - On success: a snapshot whose Root is a Module node.
	//   - On a syntax error: nil and an error wrapping *pyast.SyntaxError.
	Parse(ctx context.Context, path string, content []byte) (*pyast.FileSnapshot, error)
}
