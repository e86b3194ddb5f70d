package depmodel

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/reachlab/depscan"
)

type cargoToml struct {
	Dependencies    map[string]toml.Primitive `toml:"dependencies"`
	DevDependencies map[string]toml.Primitive `toml:"dev-dependencies"`
}

func extractCargoToml(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var doc cargoToml
	md, err := toml.Decode(string(content), &doc)
	if err != nil {
		return nil, fmt.Errorf("depmodel: parse Cargo.toml: %w", err)
	}

	merged := make(map[string]toml.Primitive, len(doc.Dependencies)+len(doc.DevDependencies))
	for name, p := range doc.Dependencies {
		merged[name] = p
	}
	for name, p := range doc.DevDependencies {
		if _, ok := merged[name]; ok {
			continue
		}
		merged[name] = p
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]depscan.Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, depscan.Dependency{
			Name:        name,
			Version:     decodeCargoSpec(md, merged[name]),
			Ecosystem:   depscan.Cargo,
			ManifestRef: manifestPath,
		})
	}
	return deps, nil
}

// decodeCargoSpec handles both the bare-string dependency form
// (`serde = "1.0"`) and the inline-table form
// (`serde = { version = "1.0", features = [...] }`).
func decodeCargoSpec(md toml.MetaData, p toml.Primitive) string {
	var asString string
	if err := md.PrimitiveDecode(p, &asString); err == nil {
		return stripConstraintSigils(asString)
	}
	var asTable struct {
		Version string `toml:"version"`
	}
	if err := md.PrimitiveDecode(p, &asTable); err == nil {
		return stripConstraintSigils(asTable.Version)
	}
	return ""
}

type cargoLock struct {
	Package []cargoLockPackage `toml:"package"`
}

type cargoLockPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

func extractCargoLock(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var doc cargoLock
	if _, err := toml.Decode(string(content), &doc); err != nil {
		return nil, fmt.Errorf("depmodel: parse Cargo.lock: %w", err)
	}

	deps := make([]depscan.Dependency, 0, len(doc.Package))
	for _, p := range doc.Package {
		deps = append(deps, depscan.Dependency{
			Name:        p.Name,
			Version:     p.Version,
			Ecosystem:   depscan.Cargo,
			ManifestRef: manifestPath,
			Transitive:  true,
		})
	}
	return deps, nil
}
