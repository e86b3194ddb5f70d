// Package sbomimport extracts dependencies from a pre-built SPDX SBOM,
// for callers that already generate one upstream (a container build, a
// release pipeline) and want to feed it into depscan instead of having
// discover re-derive the same dependency set from source manifests.
package sbomimport

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/package-url/packageurl-go"
	spdxjson "github.com/spdx/tools-golang/json"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"

	"github.com/reachlab/depscan"
)

// purlEcosystem reverses depmodel's purlType table: a PURL's type field
// names the same package-url vocabulary depmodel.AttachPURLs writes, so an
// SBOM-derived dependency round-trips onto the same closed Ecosystem enum
// a manifest-derived one would.
var purlEcosystem = map[string]depscan.Ecosystem{
	packageurl.TypeNPM:      depscan.Npm,
	packageurl.TypePyPi:     depscan.PyPI,
	packageurl.TypeMaven:    depscan.Maven,
	packageurl.TypeGolang:   depscan.Go,
	packageurl.TypeCargo:    depscan.Cargo,
	packageurl.TypeGem:      depscan.RubyGems,
	packageurl.TypeComposer: depscan.Packagist,
	packageurl.TypeNuget:    depscan.NuGet,
	"pub":                   depscan.Pub,
	"swift":                 depscan.Swift,
	"hex":                   depscan.Hex,
	"hackage":               depscan.Hackage,
}

// Import decodes an SPDX 2.3 JSON document from r and returns one
// Dependency per package that carries a "purl" external reference. Packages
// with no PURL are skipped silently; a PURL that does not parse or names an
// ecosystem outside depscan's closed Ecosystem enum is skipped with a warning
// log. Neither fails the whole import, mirroring the teacher's per-package
// tolerance in sbom/spdx.
func Import(ctx context.Context, r io.Reader) ([]depscan.Dependency, error) {
	doc, err := spdxjson.Read(r)
	if err != nil {
		return nil, fmt.Errorf("sbomimport: read SPDX JSON: %w", err)
	}
	return fromDocument(ctx, doc), nil
}

func fromDocument(ctx context.Context, doc *v2_3.Document) []depscan.Dependency {
	var deps []depscan.Dependency
	for _, pkg := range doc.Packages {
		if ctx.Err() != nil {
			return deps
		}
		for _, ref := range pkg.PackageExternalReferences {
			if ref.RefType != "purl" {
				continue
			}
			pu, err := packageurl.FromString(ref.Locator)
			if err != nil {
				slog.WarnContext(ctx, "sbomimport: skipping unparseable purl",
					"purl", ref.Locator, "reason", err)
				continue
			}
			eco, ok := purlEcosystem[pu.Type]
			if !ok {
				slog.WarnContext(ctx, "sbomimport: skipping purl with unmapped ecosystem",
					"purl", ref.Locator, "type", pu.Type)
				continue
			}
			name := pu.Name
			if pu.Namespace != "" {
				name = namespacedName(pu.Type, pu.Namespace, pu.Name)
			}
			deps = append(deps, depscan.Dependency{
				Ecosystem: eco,
				Name:      name,
				Version:   pu.Version,
				PURL:      ref.Locator,
				// An SBOM flattens the dependency graph; without the
				// original manifest's require-graph depth, every package
				// is reported as directly present rather than guessed
				// transitive.
				Transitive: false,
			})
			break
		}
	}
	return deps
}

// namespacedName rebuilds the ecosystem-native name from a PURL's
// namespace+name split, inverting depmodel.splitNamespace for the
// ecosystems that use one.
func namespacedName(purlType, namespace, name string) string {
	switch purlType {
	case packageurl.TypeNPM:
		return "@" + namespace + "/" + name
	case packageurl.TypeMaven:
		return namespace + ":" + name
	case packageurl.TypeGolang:
		return namespace + "/" + name
	default:
		return name
	}
}
