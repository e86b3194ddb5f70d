package entrypoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
)

func TestDetectMainFunction(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := callgraph.New()
	g.AddNode(depscan.Node{ID: "main.go", File: "main.go"})

	eps := Detect(g, root, nil, DefaultThreshold)
	if len(eps) != 1 {
		t.Fatalf("want 1 entry point, got %d: %+v", len(eps), eps)
	}
	found := false
	for _, s := range eps[0].Signals {
		if s.Kind == depscan.SignalMainFunction {
			found = true
		}
	}
	if !found {
		t.Error("expected a main_function signal")
	}
}

func TestDetectExcludesTestFiles(t *testing.T) {
	root := t.TempDir()
	content := "package main\n\nfunc main() {}\n"
	if err := os.WriteFile(filepath.Join(root, "main_test.go"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g := callgraph.New()
	g.AddNode(depscan.Node{ID: "main_test.go", File: "main_test.go"})

	eps := Detect(g, root, nil, DefaultThreshold)
	if len(eps) != 0 {
		t.Fatalf("test file should not qualify as an entry point, got %+v", eps)
	}
}

func TestAggregateBoostsMultipleStrongSignals(t *testing.T) {
	signals := []depscan.Signal{
		{Kind: depscan.SignalHTTPHandler, Confidence: weight[depscan.SignalHTTPHandler]},
		{Kind: depscan.SignalMainFunction, Confidence: weight[depscan.SignalMainFunction]},
	}
	single := aggregate(signals[:1])
	both := aggregate(signals)
	if both <= single {
		t.Errorf("two co-occurring strong signals (%v) should score higher than one alone (%v)", both, single)
	}
}
