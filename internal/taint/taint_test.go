package taint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, rel), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEvaluateDetectsSourceReachingTarget(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "handler.go", `package main

func handler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	render(name)
}
`)

	g := callgraph.New()
	g.AddNode(depscan.Node{ID: "handler.go", File: "handler.go"})
	ext := depscan.Node{ID: "external:tmpl", File: "external:tmpl", IsExternal: true, Package: "tmpl"}
	g.AddNode(ext)

	finding := depscan.ReachabilityFinding{
		Dependency: depscan.Dependency{Name: "tmpl", Ecosystem: depscan.Go},
		Reachable:  true,
		Paths:      []depscan.Path{{Nodes: []depscan.NodeID{"handler.go", ext.ID}, Confidence: 0.8}},
	}

	verdict := Evaluate(g, root, finding)

	if !verdict.IsTainted {
		t.Fatalf("expected tainted verdict, got %+v", verdict)
	}
	if verdict.Confidence <= 0 {
		t.Errorf("expected positive confidence, got %v", verdict.Confidence)
	}
	if len(verdict.ObservedSources) == 0 {
		t.Error("expected at least one observed source category")
	}
}

func TestEvaluateSanitizerReducesConfidence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "handler.go", `package main

func handler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	safe := html.EscapeString(name)
	render(safe)
}
`)
	writeFile(t, root, "plain.go", `package main

func handler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	render(name)
}
`)

	g := callgraph.New()
	for _, f := range []string{"handler.go", "plain.go"} {
		g.AddNode(depscan.Node{ID: depscan.NodeID(f), File: f})
	}
	ext := depscan.Node{ID: "external:tmpl", File: "external:tmpl", IsExternal: true, Package: "tmpl"}
	g.AddNode(ext)

	dep := depscan.Dependency{Name: "tmpl", Ecosystem: depscan.Go}
	withSanitizer := depscan.ReachabilityFinding{
		Dependency: dep, Reachable: true,
		Paths: []depscan.Path{{Nodes: []depscan.NodeID{"handler.go", ext.ID}, Confidence: 0.8}},
	}
	withoutSanitizer := depscan.ReachabilityFinding{
		Dependency: dep, Reachable: true,
		Paths: []depscan.Path{{Nodes: []depscan.NodeID{"plain.go", ext.ID}, Confidence: 0.8}},
	}

	sanitized := Evaluate(g, root, withSanitizer)
	unsanitized := Evaluate(g, root, withoutSanitizer)

	if sanitized.Confidence >= unsanitized.Confidence {
		t.Errorf("expected a sanitizer call to lower confidence: sanitized=%v unsanitized=%v", sanitized.Confidence, unsanitized.Confidence)
	}
}

func TestEvaluateUnreachableFindingIsNeverTainted(t *testing.T) {
	g := callgraph.New()
	finding := depscan.ReachabilityFinding{Reachable: false}
	verdict := Evaluate(g, t.TempDir(), finding)
	if verdict.IsTainted {
		t.Error("an unreachable finding should never be reported tainted")
	}
}
