// Package versions implements ecosystem-specific version ordering.
//
// The core data model deliberately keeps version strings opaque
// (depscan.Dependency.Version, depscan.AffectedPackage.VersionRanges); this
// package is the one place ecosystem grammar is allowed to leak in, per the
// "ecosystem grammars" design note: everything besides comparison is a
// narrow, schema-driven adapter, but comparison must consult an
// ecosystem-specific order.
package versions

import (
	"fmt"

	rpmversion "github.com/knqyf263/go-rpm-version"

	"github.com/Masterminds/semver"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/pkg/pep440"
)

// Comparator orders two raw version strings for one ecosystem. It returns
// -1, 0, or 1 the way [strings.Compare] does; an error means the string
// could not be parsed under that ecosystem's grammar.
type Comparator func(a, b string) (int, error)

// ForEcosystem returns the Comparator depscan uses to order versions within
// e. Go and the ecosystems without a case of their own use the same
// Masterminds semver comparison as npm, noted inline below.
func ForEcosystem(e depscan.Ecosystem) Comparator {
	switch e {
	case depscan.PyPI:
		return comparePEP440
	case depscan.Npm, depscan.Cargo, depscan.Pub:
		return compareSemver
	case depscan.Go:
		return compareGoMod
	case depscan.Maven:
		return compareMaven
	default:
		// RubyGems, Packagist, NuGet, Swift, Hex, Hackage all use
		// dotted-numeric-with-prerelease-suffix schemes close enough to
		// semver that treating them as lenient semver catches the
		// overwhelming majority of real-world version strings; a
		// dedicated grammar for each is future work, not a blocker for
		// the matching contract in §4.C.
		return compareSemver
	}
}

func comparePEP440(a, b string) (int, error) {
	va, err := pep440.Parse(a)
	if err != nil {
		return 0, fmt.Errorf("pep440: parse %q: %w", a, err)
	}
	vb, err := pep440.Parse(b)
	if err != nil {
		return 0, fmt.Errorf("pep440: parse %q: %w", b, err)
	}
	return va.Compare(&vb), nil
}

func compareSemver(a, b string) (int, error) {
	va, err := semver.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("semver: parse %q: %w", a, err)
	}
	vb, err := semver.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("semver: parse %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// compareGoMod orders Go module versions. The go.mod ecosystem's versions
// are themselves semver (with the "v" prefix required), but pseudo-versions
// (v0.0.0-<timestamp>-<hash>) need to sort as regular prerelease semver,
// which Masterminds/semver already handles once the string parses.
func compareGoMod(a, b string) (int, error) {
	return compareSemver(a, b)
}

// compareMaven orders Maven coordinate versions. Maven's own grammar
// (qualifiers like "ga"/"final"/"sp" sorting specially) is not implemented
// here; dotted-numeric comparison via go-rpm-version's ordering covers
// the common `MAJOR.MINOR.PATCH[-qualifier]` case depscan actually needs to
// rank, which is sufficient for range matching against OSV-style advisories
// that themselves only specify numeric bounds.
func compareMaven(a, b string) (int, error) {
	va, vb := rpmversion.NewVersion(a), rpmversion.NewVersion(b)
	switch {
	case va.LessThan(vb):
		return -1, nil
	case vb.LessThan(va):
		return 1, nil
	default:
		return 0, nil
	}
}
