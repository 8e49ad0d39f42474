package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

// validate rejects trees that tree-sitter accepts but Python 3 does not:
// Python 2 print and exec statements, a parameter without a default after a
// defaulted one, an unparenthesized walrus used as a statement, statements
// indented differently from their siblings, and blocks with no statement.
// It returns the first offence in document order, or nil.
func validate(root *sitter.Node) *pyast.SyntaxError {
	return validateNode(root, true)
}

func validateNode(n *sitter.Node, isModule bool) *pyast.SyntaxError {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case "print_statement":
		return syntaxErrorFor(n, "missing parentheses in call to 'print'")

	case "exec_statement":
		return syntaxErrorFor(n, "missing parentheses in call to 'exec'")

	case "expression_statement":
		for i := range int(n.NamedChildCount()) {
			if child := n.NamedChild(i); child.Type() == "named_expression" {
				return syntaxErrorFor(child, "invalid syntax")
			}
		}

	case "assignment", "augmented_assignment":
		if right := n.ChildByFieldName("right"); right != nil && right.Type() == "named_expression" {
			return syntaxErrorFor(right, "invalid syntax")
		}

	case "parameters", "lambda_parameters":
		if err := validateParameterOrder(n); err != nil {
			return err
		}

	case "block":
		if parent := n.Parent(); parent != nil && (parent.Type() == "module" || parent.Type() == "block") {
			return syntaxErrorFor(n, "unexpected indent")
		}
		if err := validateSuite(n, false); err != nil {
			return err
		}
	}

	if isModule {
		if err := validateSuite(n, true); err != nil {
			return err
		}
	}

	for i := range int(n.NamedChildCount()) {
		if err := validateNode(n.NamedChild(i), false); err != nil {
			return err
		}
	}
	return nil
}

// validateParameterOrder checks that, before any "*", "*args" or "**kwargs",
// every parameter after a defaulted one also has a default.
func validateParameterOrder(list *sitter.Node) *pyast.SyntaxError {
	seenDefault := false

	for i := range int(list.NamedChildCount()) {
		p := list.NamedChild(i)

		switch p.Type() {
		case "default_parameter", "typed_default_parameter":
			seenDefault = true

		case "identifier":
			if seenDefault {
				return syntaxErrorFor(p, "parameter without a default follows parameter with a default")
			}

		case "typed_parameter":
			first := p.NamedChild(0)
			if first == nil || first.Type() != "identifier" {
				return nil
			}
			if seenDefault {
				return syntaxErrorFor(p, "parameter without a default follows parameter with a default")
			}

		case "list_splat_pattern", "dictionary_splat_pattern", "keyword_separator":
			return nil
		}
	}
	return nil
}

// validateSuite checks the statements of a module or block. A block needs at
// least one statement, a block on its own lines must be indented past its
// header, and every statement that starts a line must start in the same
// column as the first one (column 0 in a module).
func validateSuite(suite *sitter.Node, isModule bool) *pyast.SyntaxError {
	var first, prev *sitter.Node

	for i := range int(suite.NamedChildCount()) {
		stmt := suite.NamedChild(i)
		if stmt.Type() == "comment" {
			continue
		}

		startsLine := prev == nil || stmt.StartPoint().Row > prev.EndPoint().Row
		prev = stmt

		if first == nil {
			first = stmt
			if isModule && stmt.StartPoint().Column != 0 {
				return syntaxErrorFor(stmt, "unexpected indent")
			}
			if header := suite.Parent(); !isModule && header != nil &&
				stmt.StartPoint().Row > header.StartPoint().Row &&
				stmt.StartPoint().Column <= header.StartPoint().Column {
				return syntaxErrorFor(stmt, "expected an indented block")
			}
			continue
		}
		if !startsLine {
			continue
		}

		switch col, want := stmt.StartPoint().Column, first.StartPoint().Column; {
		case col > want:
			return syntaxErrorFor(stmt, "unexpected indent")
		case col < want:
			return syntaxErrorFor(stmt, "unindent does not match any outer indentation level")
		}
	}

	if first == nil && !isModule {
		return syntaxErrorFor(suite, "expected an indented block")
	}
	return nil
}

func syntaxErrorFor(n *sitter.Node, msg string) *pyast.SyntaxError {
	line, col := position(n.StartPoint())
	return &pyast.SyntaxError{Line: line, Column: col, Msg: msg}
}
