package callgraph

import (
	"testing"

	"github.com/reachlab/depscan"
)

func TestAddNodeIsIdempotent(t *testing.T) {
	g := New()
	n1 := g.AddNode(depscan.Node{ID: "a.go", File: "a.go"})
	n2 := g.AddNode(depscan.Node{ID: "a.go", File: "a.go", Symbol: "ignored-on-second-insert"})
	if n1 != n2 {
		t.Fatal("AddNode should return the same stored node on re-insert")
	}
	if n2.Symbol != "" {
		t.Errorf("second AddNode call should not overwrite the existing node, got Symbol=%q", n2.Symbol)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", g.NodeCount())
	}
}

func TestEdgeTraversal(t *testing.T) {
	g := New()
	g.AddNode(depscan.Node{ID: "a", File: "a"})
	g.AddNode(depscan.Node{ID: "b", File: "b"})
	g.AddEdge(depscan.Edge{From: "a", To: "b", CallType: depscan.CallDirect, Confidence: 1})

	out := g.Out("a")
	if len(out) != 1 || out[0].To != "b" {
		t.Fatalf("Out(a) = %+v", out)
	}
	in := g.In("b")
	if len(in) != 1 || in[0].From != "a" {
		t.Fatalf("In(b) = %+v", in)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}
