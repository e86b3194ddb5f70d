package depmodel

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/reachlab/depscan"
)

type pomXML struct {
	Properties pomProperties `xml:"properties"`
	Dependencies struct {
		Dependency []pomDependency `xml:"dependency"`
	} `xml:"dependencies"`
	DependencyManagement struct {
		Dependencies struct {
			Dependency []pomDependency `xml:"dependency"`
		} `xml:"dependencies"`
	} `xml:"dependencyManagement"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
}

// pomProperties captures a POM's <properties> block, whose children are
// arbitrary user-defined tag names (<java.version>1.8</java.version>) and so
// cannot be bound to fixed struct fields.
type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = pomProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = value
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

func extractPomXML(manifestPath string, content []byte) ([]depscan.Dependency, error) {
	var doc pomXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("depmodel: parse pom.xml: %w", err)
	}

	deps := make([]depscan.Dependency, 0, len(doc.Dependencies.Dependency))
	for _, d := range doc.Dependencies.Dependency {
		if d.Scope == "test" || d.GroupID == "" || d.ArtifactID == "" {
			continue
		}
		version := resolvePomProperty(doc.Properties, d.Version)
		if version == "" {
			// No concrete version on the declaration itself: Maven resolves
			// it from a parent POM or dependencyManagement import that this
			// single-file extractor does not follow.
			deps = append(deps, depscan.Dependency{
				Name:             d.GroupID + ":" + d.ArtifactID,
				Ecosystem:        depscan.Maven,
				ManifestRef:      manifestPath,
				CentrallyManaged: true,
			})
			continue
		}
		deps = append(deps, depscan.Dependency{
			Name:        d.GroupID + ":" + d.ArtifactID,
			Version:     version,
			Ecosystem:   depscan.Maven,
			ManifestRef: manifestPath,
		})
	}
	return deps, nil
}

// resolvePomProperty expands a single-level "${property}" reference against
// the POM's own <properties> block. Cross-POM property inheritance (parent
// POMs, imported BOMs) is out of scope for a single-file extractor.
func resolvePomProperty(props pomProperties, version string) string {
	if !strings.HasPrefix(version, "${") || !strings.HasSuffix(version, "}") {
		return version
	}
	key := strings.TrimSuffix(strings.TrimPrefix(version, "${"), "}")
	return props[key]
}
