package vulnfeed

import (
	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/versions"
)

// Matches reports whether vuln applies to dep: the ecosystem and name must
// match one of vuln's AffectedPackages, and dep's version must fall inside
// at least one of that package's version ranges under the ecosystem's own
// version order. A feed that does not pre-filter by version (unlike OSV's
// batch API, which already returns only matching hits) should run every
// candidate through this before it is surfaced as a finding input.
func Matches(dep depscan.Dependency, vuln *depscan.Vulnerability) bool {
	cmp := versions.ForEcosystem(dep.Ecosystem)
	for _, pkg := range vuln.AffectedPackages {
		if pkg.Ecosystem != depscan.UnknownEcosystem && pkg.Ecosystem != dep.Ecosystem {
			continue
		}
		if pkg.Name != dep.Name {
			continue
		}
		if len(pkg.VersionRanges) == 0 {
			// No range recorded means the advisory applies unconditionally
			// to every version of the named package.
			return true
		}
		for _, rng := range pkg.VersionRanges {
			ok, err := versions.InRange(cmp, dep.Version, rng)
			if err == nil && ok {
				return true
			}
		}
	}
	return false
}
