// Package treesitter provides a Parser implementation backed by tree-sitter's
// Python grammar.
package treesitter

import (
	"context"
	"fmt"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

// Parser implements lint.Parser using tree-sitter.
// It holds no tree-sitter state, so a single Parser is safe for concurrent use.
type Parser struct{}

// New creates a new tree-sitter based parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts Python source into a FileSnapshot with a mapped syntax tree.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a FileSnapshot shell with path, content, and lines.
//  3. Parses content with a fresh tree-sitter parser.
//  4. Rejects trees that contain ERROR or MISSING nodes with a *pyast.SyntaxError.
//  5. Rejects constructs the grammar recovers from but Python 3 refuses.
//  6. Maps the concrete tree onto the pyast node kinds.
//
// Returns nil and an error if parsing fails or context is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*pyast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := pyast.NewFileSnapshot(path, copyContent(content))

	// tree-sitter parsers are not goroutine-safe; one per call.
	tsParser := sitter.NewParser()
	defer tsParser.Close()
	tsParser.SetLanguage(python.GetLanguage())

	tree, err := tsParser.ParseCtx(ctx, nil, snapshot.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxErrorAt(root, snapshot.Content)
	}
	if syntaxErr := validate(root); syntaxErr != nil {
		return nil, syntaxErr
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot.Root = newMapper(snapshot.Content).mapModule(root)

	return snapshot, nil
}

// syntaxErrorAt locates the first ERROR or MISSING node in document order.
func syntaxErrorAt(root *sitter.Node, src []byte) *pyast.SyntaxError {
	bad := firstErrorNode(root)
	if bad == nil {
		return &pyast.SyntaxError{Msg: "invalid syntax"}
	}

	line, col := position(bad.StartPoint())
	msg := "invalid syntax"
	if bad.IsMissing() {
		msg = fmt.Sprintf("expected %q", bad.Type())
	} else if text := firstLine(bad.Content(src)); text != "" {
		msg = fmt.Sprintf("invalid syntax near %q", text)
	}

	return &pyast.SyntaxError{Line: line, Column: col, Msg: msg}
}

func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if found := firstErrorNode(child); found != nil {
			return found
		}
	}
	return nil
}

// position converts a 0-based tree-sitter point into a 1-based line and column.
func position(pt sitter.Point) (int, int) {
	row, err := safecast.Conv[int](pt.Row)
	if err != nil {
		panic(fmt.Errorf("row overflow: %w", err))
	}
	col, err := safecast.Conv[int](pt.Column)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return row + 1, col + 1
}

func firstLine(s string) string {
	for i := range len(s) {
		if s[i] == '\n' || s[i] == '\r' {
			return s[:i]
		}
	}
	return s
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
