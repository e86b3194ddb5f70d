package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/vulnfeed"
)

// fixedFeed always reports the same vulnerabilities for a given dependency
// key, regardless of what it's asked to query -- good enough to drive
// scan.Run's merge/reachability/risk pipeline deterministically in a test.
type fixedFeed struct {
	name string
	byKey map[depscan.DependencyKey][]depscan.Vulnerability
}

func (f fixedFeed) Name() string { return f.name }

func (f fixedFeed) Query(_ context.Context, deps []depscan.Dependency) (map[depscan.DependencyKey][]depscan.Vulnerability, error) {
	out := make(map[depscan.DependencyKey][]depscan.Vulnerability)
	for _, d := range deps {
		if vs, ok := f.byKey[d.Key()]; ok {
			out[d.Key()] = vs
		}
	}
	return out, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRunFindsReachableImportedVulnerability(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), goModMust("github.com/example/vuln", "v1.0.0"))
	writeFile(t, filepath.Join(root, "main.go"), `package main

import "github.com/example/vuln"

func main() {
	vuln.Do()
}
`)

	dep := depscan.Dependency{Ecosystem: depscan.Go, Name: "github.com/example/vuln", Version: "v1.0.0"}
	feed := fixedFeed{
		name: "fixture",
		byKey: map[depscan.DependencyKey][]depscan.Vulnerability{
			dep.Key(): {{CanonicalID: "GHSA-reachable", Severity: depscan.Critical}},
		},
	}

	result, err := Run(context.Background(), Options{
		Root:  root,
		Feeds: []vulnfeed.Feed{feed},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Statistics.TotalFindings != 1 {
		t.Fatalf("expected 1 finding, got %d (%+v)", result.Statistics.TotalFindings, result.Statistics)
	}
	if result.Statistics.ReachableFindings != 1 {
		t.Fatalf("expected the finding to be reachable, got stats %+v", result.Statistics)
	}

	findings := result.Findings.All()
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding in the set, got %d", len(findings))
	}
	f := findings[0]
	if !f.Reachable {
		t.Error("expected finding.Reachable = true")
	}
	if len(f.Paths) == 0 {
		t.Error("expected at least one witness path for a reachable finding")
	}
	if f.Risk.Score <= 0 {
		t.Errorf("expected a positive default risk score, got %v", f.Risk)
	}
}

func TestRunReportsUnreachableForUnimportedVulnerability(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), goModMust("github.com/example/unused", "v2.0.0"))
	writeFile(t, filepath.Join(root, "main.go"), `package main

func main() {
	println("hello")
}
`)

	dep := depscan.Dependency{Ecosystem: depscan.Go, Name: "github.com/example/unused", Version: "v2.0.0"}
	feed := fixedFeed{
		name: "fixture",
		byKey: map[depscan.DependencyKey][]depscan.Vulnerability{
			dep.Key(): {{CanonicalID: "GHSA-unreachable", Severity: depscan.High}},
		},
	}

	result, err := Run(context.Background(), Options{
		Root:  root,
		Feeds: []vulnfeed.Feed{feed},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Statistics.TotalFindings != 1 {
		t.Fatalf("expected 1 finding, got %d", result.Statistics.TotalFindings)
	}
	if result.Statistics.ReachableFindings != 0 {
		t.Errorf("expected the finding to be unreachable (dependency never imported), got stats %+v", result.Statistics)
	}
}

func TestRunRecordsUnavailableFeeds(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), goModMust("github.com/example/vuln", "v1.0.0"))
	writeFile(t, filepath.Join(root, "main.go"), "package main\n\nfunc main() {}\n")

	result, err := Run(context.Background(), Options{
		Root:  root,
		Feeds: []vulnfeed.Feed{erroringFeed{}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Statistics.UnavailableFeeds) != 1 || result.Statistics.UnavailableFeeds[0] != "broken" {
		t.Errorf("expected UnavailableFeeds = [broken], got %v", result.Statistics.UnavailableFeeds)
	}
}

type erroringFeed struct{}

func (erroringFeed) Name() string { return "broken" }
func (erroringFeed) Query(context.Context, []depscan.Dependency) (map[depscan.DependencyKey][]depscan.Vulnerability, error) {
	return nil, errAlwaysFails
}

var errAlwaysFails = &depscan.Error{Kind: depscan.ErrFeedUnavailable, Message: "fixture always fails"}

func goModMust(module, version string) string {
	return "module example.com/widget\n\ngo 1.23\n\nrequire " + module + " " + version + "\n"
}
