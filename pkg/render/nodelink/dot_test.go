package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/spdxgraph/pkg/layout"
)

func TestToDOT_Basic(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{Label: "npm: foo 1.0.0", Members: []string{"A"}},
			{Label: "bar 2.0", Members: []string{"C"}},
		},
		Edges: []layout.Edge{{Left: "npm: foo 1.0.0", Type: "DEPENDS_ON", Right: "bar 2.0"}},
	}

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `n0 [label="npm: foo 1.0.0"]`) {
		t.Error("ToDOT() output missing node n0")
	}
	if !strings.Contains(dot, `n1 [label="bar 2.0"]`) {
		t.Error("ToDOT() output missing node n1")
	}
	if !strings.Contains(dot, `n0 -> n1 [label="DEPENDS_ON"]`) {
		t.Error("ToDOT() output missing edge")
	}
}

func TestToDOT_MergedNode(t *testing.T) {
	g := Graph{Nodes: []Node{{Label: `a\nb`, Members: []string{"a", "b"}}}}

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `label="a\nb"`) {
		t.Errorf("ToDOT() must keep line breaks, got:\n%s", dot)
	}
	if !strings.Contains(dot, "peripheries=2") {
		t.Error("ToDOT() merged node missing double outline")
	}

	dot = ToDOT(g, Options{Detailed: true})
	if !strings.Contains(dot, `label="a\nb\n(2 packages)"`) {
		t.Errorf("ToDOT() detailed output missing member count, got:\n%s", dot)
	}
}

func TestToDOT_EdgeEndpointsWithoutNodes(t *testing.T) {
	g := Graph{Edges: []layout.Edge{{Left: "x", Type: "T", Right: "y"}}}

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `n0 [label="x"]`) || !strings.Contains(dot, `n1 [label="y"]`) {
		t.Errorf("ToDOT() must declare edge endpoints, got:\n%s", dot)
	}
	if !strings.Contains(dot, "n0 -> n1") {
		t.Error("ToDOT() output missing edge")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\nb`, `"a\nb"`},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() must leave svg without viewBox unchanged")
	}
}
