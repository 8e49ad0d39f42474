package pyast

// NewNode creates a node of the given kind at a 1-based position.
func NewNode(kind NodeKind, line, column int) *Node {
	return &Node{
		Kind:   kind,
		Line:   line,
		Column: column,
	}
}

// NewModule creates an empty Module root.
func NewModule() *Node {
	return NewNode(NodeModule, 1, 1)
}

// NewName creates a Name node. Store marks it as a binding target.
func NewName(name string, store bool, line, column int) *Node {
	n := NewNode(NodeName, line, column)
	n.Name = name
	n.Store = store
	return n
}

// NewFunctionDef creates a FunctionDef node with its positional parameters.
// Default expressions are attached as children so walks reach them.
func NewFunctionDef(name string, params []Param, line, column int) *Node {
	n := NewNode(NodeFunctionDef, line, column)
	n.Name = name
	n.Params = params
	for _, p := range params {
		if p.Default != nil {
			AppendChild(n, p.Default)
		}
	}
	return n
}

// NewClassDef creates a ClassDef node.
func NewClassDef(name string, line, column int) *Node {
	n := NewNode(NodeClassDef, line, column)
	n.Name = name
	return n
}

// AppendChild adds child as the last child of parent.
// A nil child is ignored.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	child.Parent = parent
	child.Next = nil
	child.Prev = parent.LastChild

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}
