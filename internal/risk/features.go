// Package risk implements §4.H's risk scorer: a 16-entry feature vector
// derived from a finding's reachability, taint, and vulnerability-feed
// signals, combined either by a fixed weighted sum or a logistic-regression
// model trained on persisted human feedback.
package risk

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
)

var authPattern = regexp.MustCompile(`(?i)\b(authenticate|requireAuth|require_auth|login_required|jwt\.Verify|IsAuthenticated|is_authenticated)\b`)
var errorHandlerPattern = regexp.MustCompile(`\brecover\(\)|\bexcept[\s:]|\bcatch\s*\(|\brescue\b`)

// Features is the ordered 16-entry feature vector §4.H scores a finding on.
type Features struct {
	KnownExploitation      float64
	ExploitProbability     float64
	VulnerabilitySeverity  float64
	IsTainted              float64
	TaintConfidence        float64
	HasHTTPSource          float64
	HasSanitizer           float64
	ReachabilityConfidence float64
	PathLength             float64
	InMainFlow             float64
	BehindAuth             float64
	HasConditionalEdge     float64
	HasErrorHandler        float64
	IsBackground           float64
	EntryPointTypeWeight   float64
	DependencyTransitivity float64
}

// names and defaultSign are parallel to Vector()'s fixed field order; names
// labels top_factors, defaultSign carries each feature's default-mode
// direction from §4.H's table.
var names = []string{
	"known_exploitation", "exploit_probability", "vulnerability_severity",
	"is_tainted", "taint_confidence", "has_http_source", "has_sanitizer",
	"reachability_confidence", "path_length", "in_main_flow", "behind_auth",
	"has_conditional_edge", "has_error_handler", "is_background",
	"entry_point_type_weight", "dependency_transitivity",
}

var defaultSign = []float64{
	+1, +1, +1, +1, +1, +1, -1, +1, -1, +1, -1, -1, -1, -1, +1, +1,
}

// Vector returns the 16 feature values in the fixed order names/defaultSign
// use.
func (f Features) Vector() []float64 {
	return []float64{
		f.KnownExploitation, f.ExploitProbability, f.VulnerabilitySeverity,
		f.IsTainted, f.TaintConfidence, f.HasHTTPSource, f.HasSanitizer,
		f.ReachabilityConfidence, f.PathLength, f.InMainFlow, f.BehindAuth,
		f.HasConditionalEdge, f.HasErrorHandler, f.IsBackground,
		f.EntryPointTypeWeight, f.DependencyTransitivity,
	}
}

// Extract derives a finding's Features from the reachability/taint results
// already computed for it, the call graph they were computed over, and the
// project's detected entry points. root is the project directory the graph
// was built from, used for the handful of features that still need a
// pattern match against source text (auth gating, error-handler framing)
// that §5's REDESIGN FLAGS moved here from the reachability engine.
func Extract(g *callgraph.Graph, root string, entryPoints []depscan.EntryPoint, finding depscan.ReachabilityFinding) Features {
	var f Features

	if finding.Vulnerability.KEVListed {
		f.KnownExploitation = 1
	}
	if finding.Vulnerability.EPSSScore != nil {
		f.ExploitProbability = clamp01(*finding.Vulnerability.EPSSScore)
	}
	f.VulnerabilitySeverity = normalizeSeverity(finding.Vulnerability)

	f.IsTainted = boolToFloat(finding.Taint.IsTainted)
	f.TaintConfidence = clamp01(finding.Taint.Confidence)
	f.HasHTTPSource = boolToFloat(containsAny(finding.Taint.ObservedSources, "body", "query", "header"))
	f.HasSanitizer = boolToFloat(len(finding.Taint.ObservedSanitizers) > 0)

	f.ReachabilityConfidence = clamp01(finding.Confidence)
	if !finding.Dependency.Transitive {
		f.DependencyTransitivity = 1
	}

	if len(finding.Paths) == 0 {
		return f
	}
	best := finding.Paths[0]
	f.PathLength = normalizePathLength(len(best.Nodes))
	f.HasConditionalEdge = boolToFloat(pathHasConditionalEdge(g, best))
	f.BehindAuth = boolToFloat(pathMatchesPattern(g, root, best, authPattern))
	f.HasErrorHandler = boolToFloat(pathMatchesPattern(g, root, best, errorHandlerPattern))

	if ep, ok := entryPointFor(entryPoints, best.Nodes[0]); ok {
		strong := hasSignal(ep, depscan.SignalHTTPHandler) || hasSignal(ep, depscan.SignalCLICommand) || hasSignal(ep, depscan.SignalMainFunction)
		f.InMainFlow = boolToFloat(strong)
		f.IsBackground = boolToFloat(!strong && hasSignal(ep, depscan.SignalEventHandler))
		f.EntryPointTypeWeight = clamp01(ep.Confidence)
	}

	return f
}

func normalizeSeverity(v depscan.Vulnerability) float64 {
	if v.CVSSBase > 0 {
		return clamp01(v.CVSSBase / 10)
	}
	return clamp01(float64(v.Severity) / float64(depscan.Critical))
}

// normalizePathLength maps a path's hop count onto [0,1], capping at 10
// hops so a handful of very deep call chains don't dominate the feature.
func normalizePathLength(nodeCount int) float64 {
	hops := nodeCount - 1
	if hops < 0 {
		hops = 0
	}
	return clamp01(float64(hops) / 10)
}

func pathHasConditionalEdge(g *callgraph.Graph, p depscan.Path) bool {
	for i := 0; i+1 < len(p.Nodes); i++ {
		for _, e := range g.Out(p.Nodes[i]) {
			if e.To == p.Nodes[i+1] && e.CallType == depscan.CallConditional {
				return true
			}
		}
	}
	return false
}

func pathMatchesPattern(g *callgraph.Graph, root string, p depscan.Path, re *regexp.Regexp) bool {
	for _, id := range p.Nodes {
		n := g.Node(id)
		if n == nil || n.IsExternal {
			continue
		}
		b, err := os.ReadFile(filepath.Join(root, n.File))
		if err != nil {
			continue
		}
		if re.Match(b) {
			return true
		}
	}
	return false
}

func entryPointFor(entryPoints []depscan.EntryPoint, node depscan.NodeID) (depscan.EntryPoint, bool) {
	for _, ep := range entryPoints {
		if ep.Node == node {
			return ep, true
		}
	}
	return depscan.EntryPoint{}, false
}

func hasSignal(ep depscan.EntryPoint, kind depscan.SignalKind) bool {
	for _, s := range ep.Signals {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

func containsAny(haystack []string, needles ...string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
