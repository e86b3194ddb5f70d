package depscan

import (
	"fmt"
	"strings"
)

// detectorURIPrefix is the prefix for detector URIs.
const detectorURIPrefix = "urn:depscan:detector:"

// Detector identifies the component that produced a finding: an ecosystem
// adapter, an entry-point heuristic, a taint rule set. Findings carry the
// Detector that discovered them so provenance can be judged and a re-scan
// can tell whether a finding's producer changed.
type Detector struct {
	// Name of the detector.
	Name string `json:"name"`
	// Version of the detector.
	Version string `json:"version"`
	// Kind of the detector, e.g. "manifest", "entrypoint", "taint-rule".
	Kind string `json:"kind"`
}

// MarshalText implements [encoding.TextMarshaler].
func (d *Detector) MarshalText() ([]byte, error) {
	// Format: urn:depscan:detector:<name>:<version>:<kind>
	return []byte(fmt.Sprintf("%s%s:%s:%s", detectorURIPrefix, d.Name, d.Version, d.Kind)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Detector) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, detectorURIPrefix) {
		return fmt.Errorf("invalid detector uri: missing %s prefix", detectorURIPrefix)
	}
	body := strings.TrimPrefix(s, detectorURIPrefix)
	parts := strings.Split(body, ":")
	if len(parts) != 3 {
		return fmt.Errorf("invalid detector uri: want 3 parts name:version:kind")
	}
	d.Name = parts[0]
	d.Version = parts[1]
	d.Kind = parts[2]
	return nil
}

func (d Detector) String() string {
	return fmt.Sprintf("%s@%s(%s)", d.Name, d.Version, d.Kind)
}
