package depmodel

import (
	"sort"

	"github.com/reachlab/depscan"
)

type dependencyKey struct {
	Ecosystem depscan.Ecosystem
	Name      string
}

// Merge combines the per-manifest extractions of one workspace into the
// dependency list a scan reports.
//
// Declared-vs-resolved precedence: a lockfile's resolved version wins over a
// primary manifest's declared constraint for the same (ecosystem, name);
// the primary manifest's version is used only when no lockfile names that
// dependency. A direct occurrence always wins over a transitive one within
// the same manifest kind, matching Dependency's own collision rule.
func Merge(manifests []*depscan.Manifest, byManifest map[string][]depscan.Dependency) []depscan.Dependency {
	lockfile := map[dependencyKey]depscan.Dependency{}
	primary := map[dependencyKey]depscan.Dependency{}
	central := map[dependencyKey]depscan.Dependency{}

	for _, m := range manifests {
		var bucket map[dependencyKey]depscan.Dependency
		switch m.Kind {
		case depscan.Lockfile:
			bucket = lockfile
		case depscan.Primary:
			bucket = primary
		default:
			bucket = central
		}
		for _, d := range byManifest[m.AbsolutePath] {
			k := dependencyKey{d.Ecosystem, d.Name}
			existing, ok := bucket[k]
			if !ok || (existing.Transitive && !d.Transitive) {
				bucket[k] = d
			}
		}
	}

	merged := map[dependencyKey]depscan.Dependency{}
	for k, d := range central {
		merged[k] = d
	}
	for k, d := range primary {
		merged[k] = d
	}
	for k, lf := range lockfile {
		if pr, ok := merged[k]; ok {
			pr.Version = lf.Version
			pr.Transitive = pr.Transitive && lf.Transitive
			pr.CentrallyManaged = false
			merged[k] = pr
			continue
		}
		merged[k] = lf
	}

	out := make([]depscan.Dependency, 0, len(merged))
	for _, d := range merged {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ecosystem != out[j].Ecosystem {
			return out[i].Ecosystem < out[j].Ecosystem
		}
		return out[i].Name < out[j].Name
	})
	return out
}
