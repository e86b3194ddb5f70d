package depscan

// ManifestKind classifies the role a manifest plays within its workspace.
type ManifestKind string

const (
	// Primary manifests declare intent: the human-authored project file
	// (package.json, pyproject.toml, go.mod, Cargo.toml, ...).
	Primary ManifestKind = "primary"
	// Lockfile manifests pin resolved versions (package-lock.json,
	// poetry.lock, Cargo.lock, go.sum, ...).
	Lockfile ManifestKind = "lockfile"
	// Central manifests contribute version constraints shared across a
	// workspace without themselves being a project root (a Maven parent
	// POM, a pnpm-workspace.yaml, a BOM import).
	Central ManifestKind = "central"
)

// Manifest is a single dependency-bearing file discovered under a project
// root. A workspace may contain multiple manifests of the same ecosystem,
// but at most one Primary manifest per directory.
type Manifest struct {
	AbsolutePath string       `json:"absolute_path"`
	Directory    string       `json:"directory"`
	Ecosystem    Ecosystem    `json:"ecosystem"`
	Filename     string       `json:"filename"`
	Kind         ManifestKind `json:"kind"`
}

// FailedManifest records a candidate that matched a manifest filename
// pattern but failed its content probe. It never aborts a scan.
type FailedManifest struct {
	AbsolutePath string `json:"absolute_path"`
	Ecosystem    Ecosystem `json:"ecosystem"`
	Reason       string `json:"reason"`
}

// Workspace groups the manifests that share the nearest ancestor directory
// containing a Primary manifest. It holds only the root and the manifests;
// extracted dependencies and detected entry points are not stored on it.
type Workspace struct {
	Root      string      `json:"root"`
	Manifests []*Manifest `json:"manifests"`
}

// PrimaryManifest returns the workspace's primary manifest, or nil if one
// has not been assigned yet.
func (w *Workspace) PrimaryManifest() *Manifest {
	for _, m := range w.Manifests {
		if m.Kind == Primary {
			return m
		}
	}
	return nil
}
