package pyast

// NodeKind classifies the type of a syntax node.
type NodeKind uint8

// Node kinds. The set is closed: every construct of the parsed language maps
// onto exactly one of them.
const (
	// NodeModule is the root of a file.
	NodeModule NodeKind = iota

	// NodeFunctionDef is a def or async def statement.
	NodeFunctionDef

	// NodeClassDef is a class statement.
	NodeClassDef

	// NodeName is an identifier reference or binding.
	NodeName

	// NodeLiteral is a constant: number, string, bytes, True, False, None or Ellipsis.
	NodeLiteral

	// NodeCall is a call expression.
	NodeCall

	// NodeContainer is a list, tuple, dict or set display or a comprehension.
	NodeContainer

	// NodeOther covers every remaining construct. Its children are still walked.
	NodeOther
)

// nodeKindNames is indexed by NodeKind.
//
//nolint:gochecknoglobals // Read-only lookup table.
var nodeKindNames = [...]string{
	NodeModule:      "Module",
	NodeFunctionDef: "FunctionDef",
	NodeClassDef:    "ClassDef",
	NodeName:        "Name",
	NodeLiteral:     "Literal",
	NodeCall:        "Call",
	NodeContainer:   "Container",
	NodeOther:       "Other",
}

// String returns the kind name, e.g. "FunctionDef".
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// Node represents a single node in the syntax tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Line is the 1-based line on which the node starts.
	Line int

	// Column is the 1-based byte column on which the node starts.
	Column int

	// Name is the declared name of a FunctionDef or ClassDef, or the identifier of a Name.
	Name string

	// Store is set on Name nodes that are simple binding targets.
	Store bool

	// Params holds the positional parameters of a FunctionDef.
	Params []Param
}

// Param is a positional parameter of a function definition.
type Param struct {
	// Name is the parameter identifier.
	Name string

	// Line is the 1-based line of the parameter.
	Line int

	// Default is the default value expression, or nil when there is none.
	Default *Node
}

// HasDefault reports whether the parameter declares a default value.
func (p Param) HasDefault() bool {
	return p.Default != nil
}

// IsBinding returns true for a Name node in store context.
func (n *Node) IsBinding() bool {
	return n.Kind == NodeName && n.Store
}
