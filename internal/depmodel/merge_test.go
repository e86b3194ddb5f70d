package depmodel

import (
	"testing"

	"github.com/reachlab/depscan"
)

func TestMergeLockfileVersionWinsOverPrimary(t *testing.T) {
	manifests := []*depscan.Manifest{
		{AbsolutePath: "/p/package.json", Ecosystem: depscan.Npm, Kind: depscan.Primary},
		{AbsolutePath: "/p/package-lock.json", Ecosystem: depscan.Npm, Kind: depscan.Lockfile},
	}
	byManifest := map[string][]depscan.Dependency{
		"/p/package.json": {
			{Name: "lodash", Version: "^4.17.0", Ecosystem: depscan.Npm, ManifestRef: "/p/package.json"},
		},
		"/p/package-lock.json": {
			{Name: "lodash", Version: "4.17.21", Ecosystem: depscan.Npm, ManifestRef: "/p/package-lock.json", Transitive: true},
		},
	}

	got := Merge(manifests, byManifest)
	if len(got) != 1 {
		t.Fatalf("expected 1 merged dependency, got %d", len(got))
	}
	if got[0].Version != "4.17.21" {
		t.Errorf("expected the lockfile's resolved version to win, got %q", got[0].Version)
	}
}

func TestMergeFallsBackToPrimaryWithoutLockfile(t *testing.T) {
	manifests := []*depscan.Manifest{
		{AbsolutePath: "/p/go.mod", Ecosystem: depscan.Go, Kind: depscan.Primary},
	}
	byManifest := map[string][]depscan.Dependency{
		"/p/go.mod": {
			{Name: "golang.org/x/mod", Version: "v0.33.0", Ecosystem: depscan.Go, ManifestRef: "/p/go.mod"},
		},
	}
	got := Merge(manifests, byManifest)
	if len(got) != 1 || got[0].Version != "v0.33.0" {
		t.Fatalf("expected the primary manifest's declared version, got %+v", got)
	}
}

func TestMergeDirectWinsOverTransitiveWithinSameKind(t *testing.T) {
	manifests := []*depscan.Manifest{
		{AbsolutePath: "/p/go.sum", Ecosystem: depscan.Go, Kind: depscan.Lockfile},
	}
	byManifest := map[string][]depscan.Dependency{
		"/p/go.sum": {
			{Name: "golang.org/x/mod", Version: "v0.30.0", Ecosystem: depscan.Go, ManifestRef: "/p/go.sum", Transitive: true},
			{Name: "golang.org/x/mod", Version: "v0.33.0", Ecosystem: depscan.Go, ManifestRef: "/p/go.sum", Transitive: false},
		},
	}
	got := Merge(manifests, byManifest)
	if len(got) != 1 || got[0].Transitive {
		t.Fatalf("expected the direct occurrence to win, got %+v", got)
	}
}
