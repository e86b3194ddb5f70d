package depscan

import "fmt"

// Dependency is a normalized package reference extracted from a Manifest.
//
// Its key is (Ecosystem, Name, Version). When a direct and a transitive
// occurrence of the same key collide during extraction, the direct
// occurrence wins.
type Dependency struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Ecosystem Ecosystem `json:"ecosystem"`
	// ManifestRef is the absolute path of the manifest this dependency was
	// extracted from.
	ManifestRef string `json:"manifest_ref"`
	Transitive  bool   `json:"transitive"`
	// CentrallyManaged is true when a central manifest declared the
	// constraint but no concrete version could be resolved.
	CentrallyManaged bool `json:"centrally_managed,omitempty"`
	// PURL is the package-url identity derived from the four fields above,
	// used as the external join key against vulnerability feeds.
	PURL string `json:"purl,omitempty"`
}

// Key returns the (ecosystem, name, version) triple used for deduplication.
func (d Dependency) Key() DependencyKey {
	return DependencyKey{Ecosystem: d.Ecosystem, Name: d.Name, Version: d.Version}
}

// DependencyKey is the comparable identity of a Dependency, usable as a map
// key.
type DependencyKey struct {
	Ecosystem Ecosystem
	Name      string
	Version   string
}

func (k DependencyKey) String() string {
	return fmt.Sprintf("%s:%s@%s", k.Ecosystem, k.Name, k.Version)
}
