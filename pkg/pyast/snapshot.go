// Package pyast provides the source model pystylecheck analyses:
//   - FileSnapshot: the complete file representation
//   - SourceLine: each physical line, terminator included
//   - Node: a small closed syntax tree carrying only what the checks need
package pyast

// FileSnapshot is an immutable view of a Python file at a specific time.
type FileSnapshot struct {
	// Path is the file path as displayed in diagnostics (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains every physical line of the file, in order.
	Lines []SourceLine

	// Root is the syntax tree root (a Module node). Nil when the snapshot was built without parsing.
	Root *Node
}

// NewFileSnapshot creates a FileSnapshot from content.
// It splits the lines but does not parse; that requires a parser.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   SplitLines(content),
	}
}
