package lint

import "github.com/yaklabco/pystylecheck/pkg/pyast"

// LineFact holds the syntactic facts recorded for a single line.
type LineFact struct {
	// Params are the positional parameter names of a definition on this line, in order.
	Params []string

	// DefaultIsMutable has one entry per defaulted parameter, in order.
	// The defaulted parameters are always the trailing ones.
	DefaultIsMutable []bool

	// Assigned are the simple names bound on this line, in walk order.
	Assigned []string
}

// LineFacts maps 1-based line numbers to their facts.
type LineFacts map[int]LineFact

// At returns the facts for line, or the zero LineFact when none were recorded.
func (f LineFacts) At(line int) LineFact {
	return f[line]
}

// ExtractFacts walks the tree once and records, per line, the positional
// parameters and default mutability of each definition and the names bound.
// A nil root yields an empty table.
func ExtractFacts(root *pyast.Node) LineFacts {
	facts := make(LineFacts)

	recorded := func(n *pyast.Node) bool {
		return n.Kind == pyast.NodeFunctionDef || n.IsBinding()
	}

	for _, n := range pyast.FindAll(root, recorded) {
		fact := facts[n.Line]
		if n.Kind == pyast.NodeFunctionDef {
			for _, p := range n.Params {
				fact.Params = append(fact.Params, p.Name)
				if p.HasDefault() {
					fact.DefaultIsMutable = append(fact.DefaultIsMutable, IsMutableDefault(p.Default))
				}
			}
		} else {
			fact.Assigned = append(fact.Assigned, n.Name)
		}
		facts[n.Line] = fact
	}

	return facts
}

// IsMutableDefault reports whether a default value expression is non-constant.
func IsMutableDefault(n *pyast.Node) bool {
	if n == nil {
		return false
	}

	switch n.Kind {
	case pyast.NodeLiteral:
		return false
	case pyast.NodeModule, pyast.NodeFunctionDef, pyast.NodeClassDef, pyast.NodeName,
		pyast.NodeCall, pyast.NodeContainer, pyast.NodeOther:
		return true
	default:
		return true
	}
}
