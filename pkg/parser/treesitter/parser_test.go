package treesitter

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

func parse(t *testing.T, src string) *pyast.FileSnapshot {
	t.Helper()

	snapshot, err := New().Parse(context.Background(), "test.py", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if snapshot.Root == nil || snapshot.Root.Kind != pyast.NodeModule {
		t.Fatal("expected Module root")
	}
	return snapshot
}

// bindings returns "line:name" for every binding Name, in walk order.
func bindings(root *pyast.Node) []string {
	var out []string
	for _, n := range pyast.FindAll(root, (*pyast.Node).IsBinding) {
		out = append(out, strconv.Itoa(n.Line)+":"+n.Name)
	}
	return out
}

func firstFunction(root *pyast.Node) *pyast.Node {
	fns := pyast.FindAll(root, func(n *pyast.Node) bool { return n.Kind == pyast.NodeFunctionDef })
	if len(fns) == 0 {
		return nil
	}
	return fns[0]
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParser_Parse_Basic(t *testing.T) {
	content := []byte("x = 1\n")
	snapshot, err := New().Parse(context.Background(), "test.py", content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if snapshot.Path != "test.py" {
		t.Errorf("Path = %q, want %q", snapshot.Path, "test.py")
	}
	if string(snapshot.Content) != string(content) {
		t.Errorf("Content mismatch")
	}
	if len(content) > 0 && &snapshot.Content[0] == &content[0] {
		t.Error("Content should be a copy")
	}
	if len(snapshot.Lines) != 1 {
		t.Errorf("got %d lines, want 1", len(snapshot.Lines))
	}
}

func TestParser_Parse_Empty(t *testing.T) {
	snapshot := parse(t, "")
	if snapshot.Root.FirstChild != nil {
		t.Error("empty module should have no children")
	}
	if len(snapshot.Lines) != 0 {
		t.Errorf("got %d lines, want 0", len(snapshot.Lines))
	}
}

func TestParser_Parse_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Parse(ctx, "test.py", []byte("x = 1\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestParser_Parse_SyntaxError(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		minLine int
	}{
		{"unclosed paren", "x = 1\ny = (2,\n", 2},
		{"bad def", "x = 1\ndef (:\n    pass\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse(context.Background(), "bad.py", []byte(tt.src))
			if err == nil {
				t.Fatal("expected syntax error")
			}

			var syntaxErr *pyast.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("error = %T, want *pyast.SyntaxError", err)
			}
			if syntaxErr.Line < tt.minLine {
				t.Errorf("Line = %d, want >= %d", syntaxErr.Line, tt.minLine)
			}
		})
	}
}

func TestParser_Parse_RejectsRecoveredSyntax(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		minLine int
	}{
		{"python 2 print", "print \"hello\"\n", 1},
		{"python 2 exec", "exec \"code\"\n", 1},
		{"non-default after default", "def f(a=1, b):\n    pass\n", 1},
		{"lambda non-default after default", "g = lambda a=1, b: a\n", 1},
		{"bare walrus statement", "X := 1\n", 1},
		{"walrus as assignment value", "y = x := 1\n", 1},
		{"unexpected indent", "x = 1\n  y = 2\n", 2},
		{"indented first statement", "  x = 1\n", 1},
		{"missing block", "def f():\nreturn 1\n", 1},
		{"unexpected indent in block", "def f():\n    a = 1\n        b = 2\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse(context.Background(), "bad.py", []byte(tt.src))

			var syntaxErr *pyast.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("error = %v, want *pyast.SyntaxError", err)
			}
			if syntaxErr.Line < tt.minLine {
				t.Errorf("Line = %d, want >= %d", syntaxErr.Line, tt.minLine)
			}
		})
	}
}

func TestParser_Parse_AcceptsValidLayouts(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"nested blocks", "class A:\n    def m(self):\n        if self:\n            return 1\n        return 2\n"},
		{"one-line bodies", "def f(): pass\nclass B: x = 1; y = 2\n"},
		{"comments between statements", "def f():\n    # note\n    return 1\n# end\n"},
		{"decorated", "@wrap\ndef f():\n    pass\n"},
		{"keyword-only after default", "def f(a=1, *, b):\n    pass\n"},
		{"keyword-only after star args", "def f(a=1, *args, b, **kw):\n    pass\n"},
		{"parenthesized walrus", "(y := 1)\nif (n := 2) > 1:\n    pass\n"},
		{"print call", "print(\"hello\")\n"},
		{"continuation", "total = (1 +\n         2)\nvalue = 3\n"},
		{"else and except", "try:\n    x = 1\nexcept ValueError:\n    x = 2\nelse:\n    x = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse(t, tt.src)
		})
	}
}

func TestParser_Bindings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"simple", "x = 1\n", []string{"1:x"}},
		{"chained", "a = b = 1\n", []string{"1:a", "1:b"}},
		{"annotated", "count: int = 0\n", []string{"1:count"}},
		{"augmented", "x = 0\nx += 1\n", []string{"1:x", "2:x"}},
		{"tuple unpack", "a, b = 1, 2\n", []string{"1:a", "1:b"}},
		{"starred unpack", "first, *rest = items\n", []string{"1:first", "1:rest"}},
		{"parenthesised unpack", "(a, b) = pair\n", []string{"1:a", "1:b"}},
		{"attribute skipped", "self.value = 1\n", nil},
		{"subscript skipped", "data[0] = 1\n", nil},
		{"for target", "for i in range(3):\n    pass\n", []string{"1:i"}},
		{"comprehension target", "ys = [y for y in xs]\n", []string{"1:ys", "1:y"}},
		{"walrus", "if (n := 10) > 5:\n    pass\n", []string{"1:n"}},
		{"with target", "with open(p) as fh:\n    pass\n", []string{"1:fh"}},
		{"except name is not a binding", "try:\n    pass\nexcept ValueError as err:\n    pass\n", nil},
		{"function body", "def f():\n    Total = 1\n", []string{"2:Total"}},
		{"class body", "class A:\n    Field = 1\n", []string{"2:Field"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bindings(parse(t, tt.src).Root)
			if !equalStrings(got, tt.want) {
				t.Errorf("bindings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_FunctionParameters(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		params   []string
		defaults []bool
	}{
		{"plain", "def f(a, b):\n    pass\n", []string{"a", "b"}, []bool{false, false}},
		{"defaults", "def f(a, b=1):\n    pass\n", []string{"a", "b"}, []bool{false, true}},
		{"typed", "def f(a: int, b: str = 'x'):\n    pass\n", []string{"a", "b"}, []bool{false, true}},
		{"stops at star args", "def f(a, *args, b=[]):\n    pass\n", []string{"a"}, []bool{false}},
		{"stops at bare star", "def f(a, *, key=None):\n    pass\n", []string{"a"}, []bool{false}},
		{"positional only", "def f(a, /, b):\n    pass\n", []string{"a", "b"}, []bool{false, false}},
		{"kwargs", "def f(a, **kw):\n    pass\n", []string{"a"}, []bool{false}},
		{"async", "async def f(a):\n    pass\n", []string{"a"}, []bool{false}},
		{"method", "class A:\n    def m(self, x=1):\n        pass\n", []string{"self", "x"}, []bool{false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := firstFunction(parse(t, tt.src).Root)
			if fn == nil {
				t.Fatal("expected a FunctionDef")
			}

			if len(fn.Params) != len(tt.params) {
				t.Fatalf("got %d params, want %d", len(fn.Params), len(tt.params))
			}
			for i, p := range fn.Params {
				if p.Name != tt.params[i] {
					t.Errorf("param %d = %q, want %q", i, p.Name, tt.params[i])
				}
				if p.HasDefault() != tt.defaults[i] {
					t.Errorf("param %d default = %v, want %v", i, p.HasDefault(), tt.defaults[i])
				}
			}
		})
	}
}

func TestParser_DefaultKinds(t *testing.T) {
	tests := []struct {
		src  string
		want pyast.NodeKind
	}{
		{"def f(a=1): pass\n", pyast.NodeLiteral},
		{"def f(a=1.5): pass\n", pyast.NodeLiteral},
		{"def f(a=-1): pass\n", pyast.NodeOther},
		{"def f(a=+1.5): pass\n", pyast.NodeOther},
		{"def f(a='s'): pass\n", pyast.NodeLiteral},
		{"def f(a=b'raw'): pass\n", pyast.NodeLiteral},
		{"def f(a='x' 'y'): pass\n", pyast.NodeLiteral},
		{"def f(a=None): pass\n", pyast.NodeLiteral},
		{"def f(a=True): pass\n", pyast.NodeLiteral},
		{"def f(a=...): pass\n", pyast.NodeLiteral},
		{"def f(a=(1)): pass\n", pyast.NodeLiteral},
		{"def f(a=[]): pass\n", pyast.NodeContainer},
		{"def f(a={}): pass\n", pyast.NodeContainer},
		{"def f(a=(1, 2)): pass\n", pyast.NodeContainer},
		{"def f(a=dict()): pass\n", pyast.NodeCall},
		{"def f(a=f'{x}'): pass\n", pyast.NodeOther},
		{"def f(a=CONST): pass\n", pyast.NodeName},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			fn := firstFunction(parse(t, tt.src).Root)
			if fn == nil || len(fn.Params) != 1 || !fn.Params[0].HasDefault() {
				t.Fatal("expected one defaulted parameter")
			}
			if got := fn.Params[0].Default.Kind; got != tt.want {
				t.Errorf("default kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_DefinitionLines(t *testing.T) {
	src := "import os\n\n\n@decorator\ndef handler():\n    pass\n\n\nclass Widget:\n    pass\n"
	root := parse(t, src).Root

	defs := pyast.FindAll(root, func(n *pyast.Node) bool {
		return n.Kind == pyast.NodeFunctionDef || n.Kind == pyast.NodeClassDef
	})
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
	if defs[0].Name != "handler" || defs[0].Line != 5 {
		t.Errorf("def = %s@%d, want handler@5", defs[0].Name, defs[0].Line)
	}
	if defs[1].Name != "Widget" || defs[1].Line != 9 {
		t.Errorf("class = %s@%d, want Widget@9", defs[1].Name, defs[1].Line)
	}
}
