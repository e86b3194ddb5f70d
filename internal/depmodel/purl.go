package depmodel

import (
	"strings"

	"github.com/package-url/packageurl-go"

	"github.com/reachlab/depscan"
)

// purlType maps depscan's closed Ecosystem enum onto package-url's type
// vocabulary, the same correspondence the teacher's purl.Registry keeps
// between claircore's Distribution/Repository pairs and a PackageURL type.
var purlType = map[depscan.Ecosystem]string{
	depscan.Npm:       packageurl.TypeNPM,
	depscan.PyPI:      packageurl.TypePyPi,
	depscan.Maven:     packageurl.TypeMaven,
	depscan.Go:        packageurl.TypeGolang,
	depscan.Cargo:     packageurl.TypeCargo,
	depscan.RubyGems:  packageurl.TypeGem,
	depscan.Packagist: packageurl.TypeComposer,
	depscan.NuGet:     packageurl.TypeNuget,
	depscan.Pub:       "pub",
	depscan.Swift:     "swift",
	depscan.Hex:       "hex",
	depscan.Hackage:   "hackage",
}

// AttachPURLs derives and fills in Dependency.PURL for every entry that
// doesn't already carry one, mirroring claircore's purl.Registry.Generate
// running once per IndexRecord during indexing. An ecosystem depscan has no
// type mapping for is left with an empty PURL rather than guessed at.
func AttachPURLs(deps []depscan.Dependency) {
	for i := range deps {
		if deps[i].PURL != "" {
			continue
		}
		deps[i].PURL = purlFor(deps[i])
	}
}

func purlFor(d depscan.Dependency) string {
	t, ok := purlType[d.Ecosystem]
	if !ok || d.Name == "" {
		return ""
	}
	namespace, name := splitNamespace(t, d.Name)
	p := packageurl.NewPackageURL(t, namespace, name, d.Version, nil, "")
	return p.ToString()
}

// splitNamespace pulls a PURL namespace out of ecosystem-specific "scoped"
// names: npm's @scope/name, Maven's groupId:artifactId, Go's
// host/org/repo import paths.
func splitNamespace(purlType, name string) (namespace, rest string) {
	switch purlType {
	case packageurl.TypeNPM:
		if strings.HasPrefix(name, "@") {
			if i := strings.Index(name, "/"); i > 0 {
				return name[1:i], name[i+1:]
			}
		}
	case packageurl.TypeMaven:
		if i := strings.Index(name, ":"); i > 0 {
			return name[:i], name[i+1:]
		}
	case packageurl.TypeGolang:
		if i := strings.LastIndex(name, "/"); i > 0 {
			return name[:i], name[i+1:]
		}
	}
	return "", name
}
