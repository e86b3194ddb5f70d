package reachability

import (
	"strconv"
	"testing"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
)

func TestEvaluateExactFunctionMatchIsReachable(t *testing.T) {
	g := callgraph.New()
	g.AddNode(depscan.Node{ID: "main.go", File: "main.go"})
	g.AddNode(depscan.Node{ID: "main.go:main", File: "main.go", Symbol: "main"})
	ext := depscan.Node{ID: "external:lodash:merge", File: "external:lodash", IsExternal: true, Package: "lodash", Symbol: "merge"}
	g.AddNode(ext)
	g.AddEdge(depscan.Edge{From: "main.go", To: "main.go:main", CallType: depscan.CallImport, Confidence: 1})
	g.AddEdge(depscan.Edge{From: "main.go:main", To: ext.ID, CallType: depscan.CallDirectMethod, Confidence: 0.9})

	entryPoints := []depscan.EntryPoint{{Node: "main.go", Confidence: 0.9}}
	dep := depscan.Dependency{Name: "lodash", Ecosystem: depscan.Npm}
	vuln := depscan.Vulnerability{CanonicalID: "CVE-2021-0001", AffectedFunctions: []string{"lodash.merge"}}

	finding := Evaluate(g, entryPoints, dep, vuln, DefaultOptions())

	if !finding.Reachable {
		t.Fatalf("expected reachable finding, got %+v", finding)
	}
	if len(finding.Paths) == 0 {
		t.Fatal("expected at least one path")
	}
	if finding.Paths[0].Nodes[len(finding.Paths[0].Nodes)-1] != ext.ID {
		t.Errorf("expected path to end at the vulnerable symbol node, got %+v", finding.Paths[0])
	}
}

func TestEvaluateNoAffectedFunctionsFallsBackToImportHit(t *testing.T) {
	g := callgraph.New()
	g.AddNode(depscan.Node{ID: "main.go", File: "main.go"})
	ext := depscan.Node{ID: "external:requests", File: "external:requests", IsExternal: true, Package: "requests"}
	g.AddNode(ext)
	g.AddEdge(depscan.Edge{From: "main.go", To: ext.ID, CallType: depscan.CallImport, Confidence: 1})

	entryPoints := []depscan.EntryPoint{{Node: "main.go", Confidence: 0.8}}
	dep := depscan.Dependency{Name: "requests", Ecosystem: depscan.PyPI}
	vuln := depscan.Vulnerability{CanonicalID: "CVE-2022-0002"}

	finding := Evaluate(g, entryPoints, dep, vuln, DefaultOptions())

	if !finding.Reachable {
		t.Fatalf("expected import-only reachability hit, got %+v", finding)
	}
}

func TestEvaluateUnreachableWhenNoEntryPointConnects(t *testing.T) {
	g := callgraph.New()
	g.AddNode(depscan.Node{ID: "main.go", File: "main.go"})
	ext := depscan.Node{ID: "external:lodash", File: "external:lodash", IsExternal: true, Package: "lodash"}
	g.AddNode(ext)
	// No edge from main.go to ext: the dependency is declared but never imported.

	entryPoints := []depscan.EntryPoint{{Node: "main.go", Confidence: 0.9}}
	dep := depscan.Dependency{Name: "lodash", Ecosystem: depscan.Npm}
	vuln := depscan.Vulnerability{CanonicalID: "CVE-2021-0001"}

	finding := Evaluate(g, entryPoints, dep, vuln, DefaultOptions())

	if finding.Reachable {
		t.Fatalf("expected unreachable finding, got %+v", finding)
	}
	if len(finding.Paths) != 0 {
		t.Errorf("expected no paths, got %+v", finding.Paths)
	}
}

func TestEvaluateDepthCapBoundsTraversal(t *testing.T) {
	g := callgraph.New()
	prev := depscan.NodeID("n0")
	g.AddNode(depscan.Node{ID: prev, File: "n0"})
	for i := 1; i <= 20; i++ {
		id := depscan.NodeID("n" + strconv.Itoa(i))
		g.AddNode(depscan.Node{ID: id, File: string(id)})
		g.AddEdge(depscan.Edge{From: prev, To: id, CallType: depscan.CallDirect, Confidence: 1})
		prev = id
	}
	ext := depscan.Node{ID: "external:deep", File: "external:deep", IsExternal: true, Package: "deep"}
	g.AddNode(ext)
	g.AddEdge(depscan.Edge{From: prev, To: ext.ID, CallType: depscan.CallImport, Confidence: 1})

	entryPoints := []depscan.EntryPoint{{Node: "n0", Confidence: 1}}
	dep := depscan.Dependency{Name: "deep", Ecosystem: depscan.Npm}
	vuln := depscan.Vulnerability{CanonicalID: "CVE-2023-0003"}

	finding := Evaluate(g, entryPoints, dep, vuln, Options{MaxDepth: 5, PathsPerTarget: 3, MinConfidence: 0.5})

	if finding.Reachable || len(finding.Paths) != 0 {
		t.Fatalf("expected the depth cap to prevent reaching a target 21 hops away, got %+v", finding)
	}
}
