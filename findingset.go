package depscan

import "sort"

// FindingSet accumulates ReachabilityFindings produced across a scan and
// groups them by the workspace root they were found in, so a multi-module
// repository's output can be broken down per workspace without re-deriving
// the association later.
type FindingSet struct {
	// Findings, keyed by the finding's Vulnerability canonical ID plus
	// dependency key, deduplicated as they're added.
	Findings map[string]*ReachabilityFinding `json:"findings"`
	// WorkspaceFindings maps a workspace root to the list of finding keys
	// discovered within it.
	WorkspaceFindings map[string][]string `json:"workspace_findings"`
}

// NewFindingSet initializes an empty FindingSet.
func NewFindingSet() FindingSet {
	return FindingSet{
		Findings:          make(map[string]*ReachabilityFinding),
		WorkspaceFindings: make(map[string][]string),
	}
}

func findingKey(f *ReachabilityFinding) string {
	return f.Vulnerability.CanonicalID + "|" + f.Dependency.Key().String()
}

// Add records f against workspaceRoot. Add is not safe for concurrent use;
// callers fan results in on a single goroutine per phase boundary.
func (s *FindingSet) Add(workspaceRoot string, f *ReachabilityFinding) {
	key := findingKey(f)
	s.Findings[key] = f
	s.WorkspaceFindings[workspaceRoot] = append(s.WorkspaceFindings[workspaceRoot], key)
}

// Sort orders each workspace's finding list by RiskAssessment.Score in
// descending order, so the highest-risk finding in a workspace is first.
func (s *FindingSet) Sort() {
	for _, keys := range s.WorkspaceFindings {
		sort.Slice(keys, func(i, j int) bool {
			a, b := s.Findings[keys[i]], s.Findings[keys[j]]
			return a.Risk.Score > b.Risk.Score
		})
	}
}

// All returns every finding in the set, ordered deterministically by key,
// for canonical JSON output.
func (s *FindingSet) All() []*ReachabilityFinding {
	keys := make([]string, 0, len(s.Findings))
	for k := range s.Findings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*ReachabilityFinding, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.Findings[k])
	}
	return out
}
