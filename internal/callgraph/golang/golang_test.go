package golang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reachlab/depscan/internal/callgraph"
)

func TestBuildEmitsImportAndCallEdges(t *testing.T) {
	root := t.TempDir()
	src := `package main

import (
	"fmt"
	"example.com/app/helper"
)

func main() {
	if os.Getenv("X") != "" {
		helper.Do()
	}
	fmt.Println(direct())
}

func direct() int { return 1 }
`
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	g := callgraph.New()
	importPath := map[string]string{"helper": "example.com/app/helper"}
	if err := Build(g, root, importPath); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if g.NodeCount() == 0 {
		t.Fatal("expected at least one node")
	}

	var sawExternalImport, sawDirectCall, sawExternalMethodTarget, sawBareMethodFallback bool
	for _, n := range g.Nodes() {
		if n.IsExternal && n.Package == "fmt" {
			sawExternalImport = true
		}
		if n.IsExternal && n.Package == "helper" && n.Symbol == "Do" {
			sawExternalMethodTarget = true
		}
		if n.IsExternal && n.Package == "" && n.Symbol == "Do" {
			sawBareMethodFallback = true
		}
	}
	for _, n := range g.Nodes() {
		for _, e := range g.Out(n.ID) {
			if e.CallType == "direct" {
				sawDirectCall = true
			}
		}
	}
	if !sawExternalImport {
		t.Error("expected an external node for the fmt import")
	}
	if !sawDirectCall {
		t.Error("expected at least one direct call edge")
	}
	if !sawExternalMethodTarget {
		t.Error("expected the helper.Do() call to produce an external node carrying its package and symbol")
	}
	if !sawBareMethodFallback {
		t.Error("expected a bare-symbol fallback node for the Do method, with no package, so a partial affected_functions match can still find it")
	}
}
