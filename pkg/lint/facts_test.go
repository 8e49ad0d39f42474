package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/pystylecheck/pkg/lint"
	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

func TestExtractFacts_Nil(t *testing.T) {
	t.Parallel()

	facts := lint.ExtractFacts(nil)
	assert.Empty(t, facts)
	assert.Equal(t, lint.LineFact{}, facts.At(1))
}

func TestExtractFacts_FunctionDef(t *testing.T) {
	t.Parallel()

	root := pyast.NewModule()
	fn := pyast.NewFunctionDef("myFunc", []pyast.Param{
		{Name: "a", Line: 1},
		{Name: "b", Line: 1, Default: pyast.NewNode(pyast.NodeContainer, 1, 15)},
		{Name: "c", Line: 1, Default: pyast.NewNode(pyast.NodeLiteral, 1, 20)},
	}, 1, 1)
	pyast.AppendChild(root, fn)
	pyast.AppendChild(fn, pyast.NewName("result", true, 2, 5))

	facts := lint.ExtractFacts(root)

	assert.Equal(t, []string{"a", "b", "c"}, facts.At(1).Params)
	assert.Equal(t, []bool{true, false}, facts.At(1).DefaultIsMutable)
	assert.Empty(t, facts.At(1).Assigned)
	assert.Equal(t, []string{"result"}, facts.At(2).Assigned)
}

func TestExtractFacts_AssignedInWalkOrder(t *testing.T) {
	t.Parallel()

	root := pyast.NewModule()
	stmt := pyast.NewNode(pyast.NodeOther, 3, 1)
	pyast.AppendChild(root, stmt)

	tuple := pyast.NewNode(pyast.NodeContainer, 3, 1)
	pyast.AppendChild(tuple, pyast.NewName("first", true, 3, 1))
	pyast.AppendChild(tuple, pyast.NewName("Second", true, 3, 8))
	pyast.AppendChild(stmt, tuple)
	pyast.AppendChild(stmt, pyast.NewName("source", false, 3, 17))

	facts := lint.ExtractFacts(root)
	assert.Equal(t, []string{"first", "Second"}, facts.At(3).Assigned)
}

func TestIsMutableDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind pyast.NodeKind
		want bool
	}{
		{pyast.NodeLiteral, false},
		{pyast.NodeContainer, true},
		{pyast.NodeCall, true},
		{pyast.NodeName, true},
		{pyast.NodeOther, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lint.IsMutableDefault(pyast.NewNode(tt.kind, 1, 1)))
		})
	}

	assert.False(t, lint.IsMutableDefault(nil))
}
