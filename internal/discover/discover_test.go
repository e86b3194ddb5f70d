package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/reachlab/depscan"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverSingleWorkspace(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"name":"app","dependencies":{"left-pad":"1.3.0"}}`)
	writeFile(t, root, "package-lock.json", `{"lockfileVersion":3,"packages":{"":{"name":"app"}}}`)
	writeFile(t, root, "node_modules/left-pad/package.json", `{"name":"left-pad","dependencies":{}}`)

	d := New(Options{})
	res, err := d.Discover(context.Background(), root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(res.Workspaces) != 1 {
		t.Fatalf("want 1 workspace, got %d: %+v", len(res.Workspaces), res.Workspaces)
	}
	ws := res.Workspaces[0]
	if len(ws.Manifests) != 2 {
		t.Fatalf("want 2 manifests (node_modules excluded), got %d: %+v", len(ws.Manifests), ws.Manifests)
	}
	if ws.PrimaryManifest() == nil {
		t.Fatal("expected a primary manifest")
	}
}

func TestDiscoverFailedManifestRecorded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `not valid json`)

	d := New(Options{})
	res, err := d.Discover(context.Background(), root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(res.Workspaces) != 0 {
		t.Fatalf("want 0 workspaces for an all-invalid tree, got %d", len(res.Workspaces))
	}
	if len(res.FailedManifests) != 1 {
		t.Fatalf("want 1 failed manifest, got %d: %+v", len(res.FailedManifests), res.FailedManifests)
	}
	if res.FailedManifests[0].Ecosystem != depscan.Npm {
		t.Errorf("ecosystem = %v, want npm", res.FailedManifests[0].Ecosystem)
	}
}

func TestDiscoverMultipleWorkspacesGroupByNearestPrimaryAncestor(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/root\n\ngo 1.23\n")
	writeFile(t, root, "services/api/go.mod", "module example.com/api\n\ngo 1.23\n")
	writeFile(t, root, "services/api/go.sum", "")

	d := New(Options{})
	res, err := d.Discover(context.Background(), root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(res.Workspaces) != 2 {
		t.Fatalf("want 2 workspaces, got %d: %+v", len(res.Workspaces), res.Workspaces)
	}
}
