package depscan

// AffectedPackage ties a Vulnerability to one ecosystem package name and the
// version ranges under that ecosystem's order that are considered affected.
type AffectedPackage struct {
	Ecosystem     Ecosystem `json:"ecosystem"`
	Name          string    `json:"name"`
	VersionRanges []string  `json:"affected_version_ranges"`
}

// Vulnerability is a merged vulnerability record as consumed by the
// reachability and risk components. Canonical ID is the first non-empty of
// CVE, GHSA, or OSV ID observed across the feeds that reported it.
type Vulnerability struct {
	CanonicalID string   `json:"canonical_id"`
	Aliases     []string `json:"aliases,omitempty"`
	Summary     string   `json:"summary"`

	Severity  Severity `json:"severity"`
	CVSSBase  float64  `json:"cvss_base,omitempty"`
	CVSSVector string  `json:"cvss_vector,omitempty"`

	AffectedPackages []AffectedPackage `json:"affected_packages"`
	// AffectedFunctions lists "package.symbol" or "symbol" handles the
	// advisory names as the vulnerable call target. Empty means only
	// package-level (import) reachability applies.
	AffectedFunctions []string `json:"affected_functions,omitempty"`
	References        []string `json:"references,omitempty"`

	EPSSScore      *float64 `json:"epss_score,omitempty"`
	EPSSPercentile *float64 `json:"epss_percentile,omitempty"`
	KEVListed      bool     `json:"kev_listed"`
	KEVDueDate     string   `json:"kev_due_date,omitempty"`

	// Sources records the feed IDs that contributed to this merged record.
	Sources []string `json:"sources"`
}

// Merge combines other into v following the vulnerability resolver's merge
// rule: aliases and sources union, severity and CVSS take the maximum.
// Merge assumes v and other already share at least one alias or canonical
// ID; the caller is responsible for establishing that.
func (v *Vulnerability) Merge(other *Vulnerability) {
	v.Aliases = unionStrings(v.Aliases, other.Aliases)
	v.Sources = unionStrings(v.Sources, other.Sources)
	v.References = unionStrings(v.References, other.References)
	v.AffectedFunctions = unionStrings(v.AffectedFunctions, other.AffectedFunctions)
	v.AffectedPackages = append(v.AffectedPackages, other.AffectedPackages...)

	if other.Severity > v.Severity {
		v.Severity = other.Severity
	}
	if other.CVSSBase > v.CVSSBase {
		v.CVSSBase = other.CVSSBase
		v.CVSSVector = other.CVSSVector
	}
	if other.EPSSScore != nil && (v.EPSSScore == nil || *other.EPSSScore > *v.EPSSScore) {
		v.EPSSScore = other.EPSSScore
		v.EPSSPercentile = other.EPSSPercentile
	}
	if other.KEVListed {
		v.KEVListed = true
		if v.KEVDueDate == "" {
			v.KEVDueDate = other.KEVDueDate
		}
	}
	if v.Summary == "" {
		v.Summary = other.Summary
	}
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range [][]string{a, b} {
		for _, v := range s {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
