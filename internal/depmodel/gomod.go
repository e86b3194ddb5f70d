package depmodel

import (
	"fmt"

	"golang.org/x/mod/modfile"

	"github.com/reachlab/depscan"
)

func extractGoMod(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	f, err := modfile.Parse(manifestPath, content, nil)
	if err != nil {
		return nil, fmt.Errorf("depmodel: parse go.mod: %w", err)
	}

	deps := make([]depscan.Dependency, 0, len(f.Require))
	for _, r := range f.Require {
		deps = append(deps, depscan.Dependency{
			Name:        r.Mod.Path,
			Version:     r.Mod.Version,
			Ecosystem:   depscan.Go,
			ManifestRef: manifestPath,
			Transitive:  r.Indirect,
		})
	}
	return deps, nil
}

// extractGoSum records every "module version hash" line in go.sum as a
// transitive dependency. go.sum lists two lines per module (the module zip
// hash and the go.mod hash, the latter suffixed "/go.mod" in the version
// field); both collapse to the same (name, version) key once the suffix is
// stripped, so callers see one entry per real module version.
func extractGoSum(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var deps []depscan.Dependency
	seen := map[string]bool{}
	start := 0
	for i := 0; i <= len(content); i++ {
		if i != len(content) && content[i] != '\n' {
			continue
		}
		line := string(content[start:i])
		start = i + 1
		fields := splitFields(line)
		if len(fields) < 2 {
			continue
		}
		name, version := fields[0], stripGoModSuffix(fields[1])
		key := name + "@" + version
		if seen[key] {
			continue
		}
		seen[key] = true
		deps = append(deps, depscan.Dependency{
			Name:        name,
			Version:     version,
			Ecosystem:   depscan.Go,
			ManifestRef: manifestPath,
			Transitive:  true,
		})
	}
	return deps, nil
}

func stripGoModSuffix(version string) string {
	const suffix = "/go.mod"
	if len(version) > len(suffix) && version[len(version)-len(suffix):] == suffix {
		return version[:len(version)-len(suffix)]
	}
	return version
}

func splitFields(s string) []string {
	var out []string
	var cur []byte
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, s[i])
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}
