package treesitter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

// mapper converts a tree-sitter Python tree into a pyast.Node tree.
type mapper struct {
	src []byte
}

// newMapper creates a new mapper for the given content.
func newMapper(src []byte) *mapper {
	return &mapper{src: src}
}

// mapModule converts the tree-sitter "module" node.
func (m *mapper) mapModule(root *sitter.Node) *pyast.Node {
	mod := pyast.NewModule()
	m.mapChildren(root, mod)
	return mod
}

// mapChildren maps every named child of tsNode onto parent, in source order.
func (m *mapper) mapChildren(tsNode *sitter.Node, parent *pyast.Node) {
	for i := range int(tsNode.NamedChildCount()) {
		pyast.AppendChild(parent, m.mapNode(tsNode.NamedChild(i)))
	}
}

// mapNode converts a single expression or statement in load context.
// Comments map to nil and are dropped.
func (m *mapper) mapNode(n *sitter.Node) *pyast.Node {
	if n == nil {
		return nil
	}

	line, col := position(n.StartPoint())

	switch n.Type() {
	case "comment":
		return nil

	case "function_definition":
		return m.mapFunction(n)

	case "class_definition":
		return m.mapClass(n)

	case "identifier":
		return pyast.NewName(n.Content(m.src), false, line, col)

	case "parenthesized_expression":
		if inner := soleNamedChild(n); inner != nil {
			return m.mapNode(inner)
		}

	case "call":
		node := pyast.NewNode(pyast.NodeCall, line, col)
		m.mapChildren(n, node)
		return node

	case "list", "tuple", "dictionary", "set",
		"list_comprehension", "dictionary_comprehension", "set_comprehension",
		"generator_expression":
		node := pyast.NewNode(pyast.NodeContainer, line, col)
		m.mapChildren(n, node)
		return node

	case "assignment", "augmented_assignment":
		return m.mapBinding(n, line, col, "left")

	case "for_statement", "for_in_clause":
		return m.mapBinding(n, line, col, "left")

	case "named_expression":
		return m.mapBinding(n, line, col, "name")

	case "with_item":
		return m.mapWithItem(n, line, col)
	}

	if m.isConstant(n) {
		return pyast.NewNode(pyast.NodeLiteral, line, col)
	}

	node := pyast.NewNode(pyast.NodeOther, line, col)
	m.mapChildren(n, node)
	return node
}

// mapBinding maps a node whose targetField child is a binding target.
// The target comes first, followed by the remaining children in source order.
func (m *mapper) mapBinding(n *sitter.Node, line, col int, targetField string) *pyast.Node {
	node := pyast.NewNode(pyast.NodeOther, line, col)
	target := n.ChildByFieldName(targetField)
	pyast.AppendChild(node, m.mapTarget(target))

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if target != nil && sameNode(child, target) {
			continue
		}
		pyast.AppendChild(node, m.mapNode(child))
	}
	return node
}

// mapWithItem handles "with expr as target". Grammar versions differ: the alias
// is either a field of with_item or nested in an as_pattern value.
func (m *mapper) mapWithItem(n *sitter.Node, line, col int) *pyast.Node {
	node := pyast.NewNode(pyast.NodeOther, line, col)

	value := n.ChildByFieldName("value")
	alias := n.ChildByFieldName("alias")

	if value != nil && value.Type() == "as_pattern" {
		pyast.AppendChild(node, m.mapNode(value.NamedChild(0)))
		alias = value.ChildByFieldName("alias")
		if alias == nil && value.NamedChildCount() > 1 {
			alias = value.NamedChild(int(value.NamedChildCount()) - 1)
		}
	} else {
		pyast.AppendChild(node, m.mapNode(value))
	}

	if alias != nil {
		pyast.AppendChild(node, m.mapTarget(alias))
	}
	return node
}

// mapTarget converts an assignment target. Plain names become binding Name
// nodes; sequences and starred targets are unpacked; attribute and subscript
// targets are mapped as ordinary expressions.
func (m *mapper) mapTarget(n *sitter.Node) *pyast.Node {
	if n == nil {
		return nil
	}

	line, col := position(n.StartPoint())

	switch n.Type() {
	case "identifier":
		return pyast.NewName(n.Content(m.src), true, line, col)

	case "as_pattern_target", "parenthesized_expression":
		if inner := soleNamedChild(n); inner != nil {
			return m.mapTarget(inner)
		}
		return nil

	case "pattern_list", "tuple_pattern", "list_pattern", "tuple", "list", "expression_list":
		node := pyast.NewNode(pyast.NodeContainer, line, col)
		for i := range int(n.NamedChildCount()) {
			pyast.AppendChild(node, m.mapTarget(n.NamedChild(i)))
		}
		return node

	case "list_splat_pattern", "list_splat":
		node := pyast.NewNode(pyast.NodeOther, line, col)
		if inner := soleNamedChild(n); inner != nil {
			pyast.AppendChild(node, m.mapTarget(inner))
		}
		return node
	}

	return m.mapNode(n)
}

// mapFunction converts a def or async def. Positional parameter defaults come
// first among the children, then keyword-only defaults, then the body.
func (m *mapper) mapFunction(n *sitter.Node) *pyast.Node {
	line, col := position(n.StartPoint())

	name := ""
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(m.src)
	}

	params, kwDefaults := m.mapParameters(n.ChildByFieldName("parameters"))
	fn := pyast.NewFunctionDef(name, params, line, col)

	for _, d := range kwDefaults {
		pyast.AppendChild(fn, d)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		m.mapChildren(body, fn)
	}
	return fn
}

// mapParameters splits a parameter list into the positional parameters
// (positional-only and regular, up to the first "*", "*args" or "**kwargs")
// and the mapped default values of the keyword-only parameters after them.
func (m *mapper) mapParameters(list *sitter.Node) ([]pyast.Param, []*pyast.Node) {
	if list == nil {
		return nil, nil
	}

	var params []pyast.Param
	var kwDefaults []*pyast.Node
	positional := true

	for i := range int(list.NamedChildCount()) {
		p := list.NamedChild(i)
		line, _ := position(p.StartPoint())

		switch p.Type() {
		case "identifier":
			if positional {
				params = append(params, pyast.Param{Name: p.Content(m.src), Line: line})
			}

		case "typed_parameter":
			first := p.NamedChild(0)
			if first == nil || first.Type() != "identifier" {
				positional = false
				continue
			}
			if positional {
				params = append(params, pyast.Param{Name: first.Content(m.src), Line: line})
			}

		case "default_parameter", "typed_default_parameter":
			value := m.mapNode(p.ChildByFieldName("value"))
			if !positional {
				if value != nil {
					kwDefaults = append(kwDefaults, value)
				}
				continue
			}
			nameNode := p.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			params = append(params, pyast.Param{Name: nameNode.Content(m.src), Line: line, Default: value})

		case "list_splat_pattern", "dictionary_splat_pattern", "keyword_separator":
			positional = false
		}
	}

	return params, kwDefaults
}

// mapClass converts a class definition, keeping base expressions and body.
func (m *mapper) mapClass(n *sitter.Node) *pyast.Node {
	line, col := position(n.StartPoint())

	name := ""
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(m.src)
	}

	cls := pyast.NewClassDef(name, line, col)
	if bases := n.ChildByFieldName("superclasses"); bases != nil {
		m.mapChildren(bases, cls)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		m.mapChildren(body, cls)
	}
	return cls
}

// isConstant reports whether n is a literal constant: a number, a string or
// bytes literal without interpolation, an implicit concatenation of such
// strings, True, False, None or Ellipsis. A signed number such as -1 is a
// unary operation and so is not constant.
func (m *mapper) isConstant(n *sitter.Node) bool {
	switch n.Type() {
	case "integer", "float", "true", "false", "none", "ellipsis":
		return true

	case "string":
		return m.isPlainString(n)

	case "concatenated_string":
		for i := range int(n.NamedChildCount()) {
			part := n.NamedChild(i)
			if part.Type() == "comment" {
				continue
			}
			if !m.isPlainString(part) {
				return false
			}
		}
		return true
	}
	return false
}

// isPlainString reports whether a string node is neither an f-string nor
// contains interpolations.
func (m *mapper) isPlainString(n *sitter.Node) bool {
	if n.Type() != "string" {
		return false
	}
	text := n.Content(m.src)
	prefix := text
	if idx := strings.IndexAny(text, `'"`); idx >= 0 {
		prefix = text[:idx]
	}
	if strings.ContainsAny(prefix, "fF") {
		return false
	}
	for i := range int(n.NamedChildCount()) {
		if n.NamedChild(i).Type() == "interpolation" {
			return false
		}
	}
	return true
}

// soleNamedChild returns the only non-comment named child, or nil.
func soleNamedChild(n *sitter.Node) *sitter.Node {
	var found *sitter.Node
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		if found != nil {
			return nil
		}
		found = child
	}
	return found
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
