// Package depmodel extracts normalized depscan.Dependency values from
// manifest files, and defines the filename/content-probe catalog the
// manifest discoverer uses to recognize candidate manifests in the first
// place.
package depmodel

import (
	"fmt"

	"github.com/reachlab/depscan"
)

// Pattern ties a manifest filename to the ecosystem and kind it implies, and
// the cheap content probe that must also pass before a file is accepted as
// a real manifest. Filename alone is never sufficient, per the discoverer's
// contract.
type Pattern struct {
	Ecosystem depscan.Ecosystem
	Filename  string
	Kind      depscan.ManifestKind
	Probe     func([]byte) error
	// Extract parses manifest content into dependencies. Nil for manifests
	// discover only cares to classify but depmodel does not (yet) extract
	// from, e.g. a workspace-only marker file.
	Extract func(manifestPath string, content []byte) ([]depscan.Dependency, error)
}

// Catalog is the full list of recognized manifest patterns across
// ecosystems. The discoverer walks the tree once and matches each file's
// basename against this list; depmodel owns the list because the
// validation probe and the extractor are naturally the same code that
// understands the file's grammar.
var Catalog = []Pattern{
	{Ecosystem: depscan.Npm, Filename: "package.json", Kind: depscan.Primary, Probe: probeJSON, Extract: extractNpmPackageJSON},
	{Ecosystem: depscan.Npm, Filename: "package-lock.json", Kind: depscan.Lockfile, Probe: probeJSON, Extract: extractNpmLock},
	{Ecosystem: depscan.Npm, Filename: "pnpm-lock.yaml", Kind: depscan.Lockfile, Probe: probeNonEmpty, Extract: nil},

	{Ecosystem: depscan.PyPI, Filename: "pyproject.toml", Kind: depscan.Primary, Probe: probeNonEmpty, Extract: extractPyProject},
	{Ecosystem: depscan.PyPI, Filename: "requirements.txt", Kind: depscan.Primary, Probe: probeNonEmpty, Extract: extractRequirementsTxt},
	{Ecosystem: depscan.PyPI, Filename: "Pipfile.lock", Kind: depscan.Lockfile, Probe: probeJSON, Extract: extractPipfileLock},

	{Ecosystem: depscan.Go, Filename: "go.mod", Kind: depscan.Primary, Probe: probeGoMod, Extract: extractGoMod},
	{Ecosystem: depscan.Go, Filename: "go.sum", Kind: depscan.Lockfile, Probe: probeNonEmpty, Extract: extractGoSum},

	{Ecosystem: depscan.Cargo, Filename: "Cargo.toml", Kind: depscan.Primary, Probe: probeNonEmpty, Extract: extractCargoToml},
	{Ecosystem: depscan.Cargo, Filename: "Cargo.lock", Kind: depscan.Lockfile, Probe: probeNonEmpty, Extract: extractCargoLock},

	{Ecosystem: depscan.Maven, Filename: "pom.xml", Kind: depscan.Primary, Probe: probeXML, Extract: extractPomXML},
}

func probeNonEmpty(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("depmodel: empty manifest")
	}
	return nil
}
