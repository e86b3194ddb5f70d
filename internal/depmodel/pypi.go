package depmodel

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/reachlab/depscan"
)

type pyProjectFile struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]toml.Primitive `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func extractPyProject(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var doc pyProjectFile
	md, err := toml.Decode(string(content), &doc)
	if err != nil {
		return nil, fmt.Errorf("depmodel: parse pyproject.toml: %w", err)
	}

	var deps []depscan.Dependency
	for _, spec := range doc.Project.Dependencies {
		name, version := splitPEP508(spec)
		if name == "" || depscan.PyPI.IsPseudoPackage(name) {
			continue
		}
		deps = append(deps, depscan.Dependency{
			Name:        name,
			Version:     version,
			Ecosystem:   depscan.PyPI,
			ManifestRef: manifestPath,
		})
	}

	names := make([]string, 0, len(doc.Tool.Poetry.Dependencies))
	for name := range doc.Tool.Poetry.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.EqualFold(name, "python") || depscan.PyPI.IsPseudoPackage(name) {
			continue
		}
		var version string
		_ = md.PrimitiveDecode(doc.Tool.Poetry.Dependencies[name], &version)
		deps = append(deps, depscan.Dependency{
			Name:        name,
			Version:     stripConstraintSigils(version),
			Ecosystem:   depscan.PyPI,
			ManifestRef: manifestPath,
		})
	}
	return deps, nil
}

// splitPEP508 pulls the distribution name and, if present, an exact "=="
// pin out of a PEP 508 requirement string. Environment markers and extras
// are dropped; anything looser than an exact pin is recorded with an empty
// version, which the resolver treats as unresolved-constrained.
func splitPEP508(spec string) (name, version string) {
	spec = strings.SplitN(spec, ";", 2)[0]
	spec = strings.TrimSpace(spec)
	if i := strings.IndexAny(spec, "[("); i != -1 {
		spec = spec[:i] + spec[strings.IndexAny(spec, ")]")+1:]
	}
	for _, sep := range []string{"==", ">=", "<=", "~=", "!=", ">", "<"} {
		if idx := strings.Index(spec, sep); idx != -1 {
			name = strings.TrimSpace(strings.TrimRight(spec[:idx], "["))
			if sep == "==" {
				version = strings.TrimSpace(spec[idx+len(sep):])
			}
			return name, version
		}
	}
	return strings.TrimSpace(spec), ""
}

func extractRequirementsTxt(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var deps []depscan.Dependency
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		name, version := splitPEP508(line)
		if name == "" || depscan.PyPI.IsPseudoPackage(name) {
			continue
		}
		deps = append(deps, depscan.Dependency{
			Name:        name,
			Version:     version,
			Ecosystem:   depscan.PyPI,
			ManifestRef: manifestPath,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("depmodel: scan requirements.txt: %w", err)
	}
	return deps, nil
}

type pipfileLock struct {
	Default map[string]pipfileLockEntry `json:"default"`
	Develop map[string]pipfileLockEntry `json:"develop"`
}

type pipfileLockEntry struct {
	Version string `json:"version"`
}

func extractPipfileLock(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var lock pipfileLock
	if err := json.Unmarshal(content, &lock); err != nil {
		return nil, fmt.Errorf("depmodel: parse Pipfile.lock: %w", err)
	}

	merged := map[string]string{}
	for name, e := range lock.Default {
		merged[name] = e.Version
	}
	for name, e := range lock.Develop {
		if _, ok := merged[name]; ok {
			continue
		}
		merged[name] = e.Version
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]depscan.Dependency, 0, len(names))
	for _, name := range names {
		if depscan.PyPI.IsPseudoPackage(name) {
			continue
		}
		deps = append(deps, depscan.Dependency{
			Name:        name,
			Version:     strings.TrimPrefix(merged[name], "=="),
			Ecosystem:   depscan.PyPI,
			ManifestRef: manifestPath,
			Transitive:  true,
		})
	}
	return deps, nil
}
