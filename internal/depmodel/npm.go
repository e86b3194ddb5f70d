package depmodel

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/reachlab/depscan"
)

type packageJSON struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
}

func extractNpmPackageJSON(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, fmt.Errorf("depmodel: parse package.json: %w", err)
	}

	names := make([]string, 0, len(pkg.Dependencies)+len(pkg.DevDependencies))
	merged := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name, v := range pkg.Dependencies {
		merged[name] = v
		names = append(names, name)
	}
	for name, v := range pkg.DevDependencies {
		if _, ok := merged[name]; ok {
			continue
		}
		merged[name] = v
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]depscan.Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, depscan.Dependency{
			Name:        name,
			Version:     stripConstraintSigils(merged[name]),
			Ecosystem:   depscan.Npm,
			ManifestRef: manifestPath,
			Transitive:  false,
		})
	}
	return deps, nil
}

// npmLockV2 covers the "packages" layout used by npm v7+ lockfiles
// (lockfileVersion 2 and 3); v1 lockfiles ("dependencies"-keyed, nested)
// are handled by the legacy fallback below.
type npmLockV2 struct {
	LockfileVersion int                        `json:"lockfileVersion"`
	Packages        map[string]npmLockPackage  `json:"packages"`
	Dependencies    map[string]npmLockV1Entry  `json:"dependencies"`
}

type npmLockPackage struct {
	Version string `json:"version"`
	Dev     bool   `json:"dev"`
}

type npmLockV1Entry struct {
	Version  string                    `json:"version"`
	Dev      bool                      `json:"dev"`
	Requires map[string]string         `json:"requires"`
	Deps     map[string]npmLockV1Entry `json:"dependencies"`
}

func extractNpmLock(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var lock npmLockV2
	if err := json.Unmarshal(content, &lock); err != nil {
		return nil, fmt.Errorf("depmodel: parse package-lock.json: %w", err)
	}

	if len(lock.Packages) > 0 {
		keys := make([]string, 0, len(lock.Packages))
		for k := range lock.Packages {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		deps := make([]depscan.Dependency, 0, len(keys))
		for _, k := range keys {
			if k == "" { // the root package entry
				continue
			}
			name := strings.TrimPrefix(k, "node_modules/")
			if idx := strings.LastIndex(name, "node_modules/"); idx != -1 {
				name = name[idx+len("node_modules/"):]
			}
			pkg := lock.Packages[k]
			if pkg.Version == "" {
				continue
			}
			deps = append(deps, depscan.Dependency{
				Name:        name,
				Version:     pkg.Version,
				Ecosystem:   depscan.Npm,
				ManifestRef: manifestPath,
				Transitive:  true,
			})
		}
		return deps, nil
	}

	var deps []depscan.Dependency
	flattenNpmLockV1(manifestPath, lock.Dependencies, &deps)
	return deps, nil
}

func flattenNpmLockV1(manifestPath string, entries map[string]npmLockV1Entry, out *[]depscan.Dependency) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e := entries[name]
		*out = append(*out, depscan.Dependency{
			Name:        name,
			Version:     e.Version,
			Ecosystem:   depscan.Npm,
			ManifestRef: manifestPath,
			Transitive:  true,
		})
		if len(e.Deps) > 0 {
			flattenNpmLockV1(manifestPath, e.Deps, out)
		}
	}
}

func stripConstraintSigils(version string) string {
	return strings.TrimLeft(version, "^~>=< ")
}
