// Package reachability answers, for a single dependency's vulnerability,
// whether any detected entry point can reach a node standing in for the
// vulnerable symbol. It is the bridge between the call graph and risk
// scoring: everything downstream treats "reachable" as the headline signal
// and the returned paths as its evidence.
package reachability

import (
	"math"
	"sort"
	"strings"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
)

const (
	// DefaultMaxDepth is the per-branch hop limit applied during BFS.
	DefaultMaxDepth = 10
	// AbsoluteDepthCap bounds DefaultMaxDepth even if a caller configures a
	// larger value; it exists purely as a backstop against adversarial or
	// pathologically deep graphs.
	AbsoluteDepthCap = 100
	// DefaultPathsPerTarget is how many distinct paths are kept per target
	// node once the BFS has located it from one or more entry points.
	DefaultPathsPerTarget = 3
	// DefaultMinConfidence is the minimum path confidence for a finding to
	// be reported reachable rather than informative-unreachable.
	DefaultMinConfidence = 0.5

	lengthPenaltyBase = 0.95
	exactMatchBonus   = 0.10
	partialMatchBonus = 0.05
)

// Options tunes the BFS; zero values fall back to the defaults above.
type Options struct {
	MaxDepth       int
	PathsPerTarget int
	MinConfidence  float64
}

// DefaultOptions returns the §4.F default tuning.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       DefaultMaxDepth,
		PathsPerTarget: DefaultPathsPerTarget,
		MinConfidence:  DefaultMinConfidence,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxDepth > AbsoluteDepthCap {
		o.MaxDepth = AbsoluteDepthCap
	}
	if o.PathsPerTarget <= 0 {
		o.PathsPerTarget = DefaultPathsPerTarget
	}
	if o.MinConfidence <= 0 {
		o.MinConfidence = DefaultMinConfidence
	}
	return o
}

// matchQuality grades how confidently a candidate target node represents
// the vulnerability's actual affected symbol.
type matchQuality int

const (
	matchNone matchQuality = iota
	matchPartial
	matchExact
)

// Evaluate runs the BFS reachability analysis described in §4.F for one
// (dependency, vulnerability) pair and returns the resulting finding.
// Callers are expected to fill in finding.Taint and finding.Risk afterward;
// Evaluate only ever sets Vulnerability, Dependency, Reachable, Confidence,
// and Paths.
func Evaluate(g *callgraph.Graph, entryPoints []depscan.EntryPoint, dep depscan.Dependency, vuln depscan.Vulnerability, opts Options) depscan.ReachabilityFinding {
	opts = opts.withDefaults()

	finding := depscan.ReachabilityFinding{Vulnerability: vuln, Dependency: dep}

	targets := selectTargets(g, dep, vuln)
	if len(targets) == 0 {
		return finding
	}

	perTarget := map[depscan.NodeID][]depscan.Path{}
	for _, ep := range entryPoints {
		for _, p := range bfsFromEntryPoint(g, ep, targets, opts) {
			target := p.Nodes[len(p.Nodes)-1]
			perTarget[target] = append(perTarget[target], p)
		}
	}

	var allPaths []depscan.Path
	for _, paths := range perTarget {
		sort.Slice(paths, func(i, j int) bool { return paths[i].Confidence > paths[j].Confidence })
		if len(paths) > opts.PathsPerTarget {
			paths = paths[:opts.PathsPerTarget]
		}
		allPaths = append(allPaths, paths...)
	}
	sort.Slice(allPaths, func(i, j int) bool { return allPaths[i].Confidence > allPaths[j].Confidence })

	finding.Paths = allPaths
	for _, p := range allPaths {
		if p.Confidence > finding.Confidence {
			finding.Confidence = p.Confidence
		}
	}
	finding.Reachable = finding.Confidence >= opts.MinConfidence
	return finding
}

// selectTargets implements §4.F's target-node-selection rule: when
// affected_functions is non-empty, every node whose symbol equals an entry's
// symbol part, graded exact if it is an external node of the dependency and
// partial otherwise (the entry's package part is not compared); when it is
// empty, any external node belonging to the dependency at all (an
// import-only hit).
func selectTargets(g *callgraph.Graph, dep depscan.Dependency, vuln depscan.Vulnerability) map[depscan.NodeID]matchQuality {
	targets := map[depscan.NodeID]matchQuality{}

	if len(vuln.AffectedFunctions) == 0 {
		for _, n := range g.Nodes() {
			if n.IsExternal && packageMatches(n.Package, dep.Name) {
				targets[n.ID] = matchNone
			}
		}
		return targets
	}

	for _, af := range vuln.AffectedFunctions {
		_, symbol := splitAffectedFunction(af)
		if symbol == "" {
			continue
		}
		for _, n := range g.Nodes() {
			if n.Symbol == "" || n.Symbol != symbol {
				continue
			}
			quality := matchPartial
			if n.IsExternal && packageMatches(n.Package, dep.Name) {
				quality = matchExact
			}
			if existing, ok := targets[n.ID]; !ok || quality > existing {
				targets[n.ID] = quality
			}
		}
	}
	return targets
}

// splitAffectedFunction splits a "package.symbol" handle into its parts; a
// bare "symbol" handle (no dot) yields an empty package.
func splitAffectedFunction(af string) (pkg, symbol string) {
	if idx := strings.LastIndex(af, "."); idx >= 0 {
		return af[:idx], af[idx+1:]
	}
	return "", af
}

// packageMatches compares a call-graph node's import handle against a
// dependency name. Handles differ across ecosystems by convention (a Go
// import path's last segment vs. its module path, an npm scoped package's
// local alias), so this falls back to a loose substring match rather than
// requiring exact equality.
func packageMatches(nodePkg, depName string) bool {
	if nodePkg == "" || depName == "" {
		return false
	}
	np := strings.ToLower(nodePkg)
	dn := strings.ToLower(depName)
	if np == dn {
		return true
	}
	if idx := strings.LastIndex(np, "/"); idx >= 0 && np[idx+1:] == dn {
		return true
	}
	if idx := strings.LastIndex(dn, "/"); idx >= 0 && dn[idx+1:] == np {
		return true
	}
	return strings.Contains(dn, np) || strings.Contains(np, dn)
}

// bfsQueued is one frontier entry during a single entry point's BFS.
type bfsQueued struct {
	node  depscan.NodeID
	depth int
	path  []depscan.NodeID
	conf  float64 // product of traversed edge confidences, pre-penalty
}

// bfsFromEntryPoint runs one breadth-first search rooted at ep.Node,
// recording a Path the first time (and only the first time, since the
// visited set forbids revisits) each target is reached. Running a separate
// BFS per entry point is what lets §4.F's "up to K paths per target" show
// up naturally: each entry point contributes at most its own shortest path,
// and Evaluate keeps the best K across all of them.
func bfsFromEntryPoint(g *callgraph.Graph, ep depscan.EntryPoint, targets map[depscan.NodeID]matchQuality, opts Options) []depscan.Path {
	visited := map[depscan.NodeID]bool{ep.Node: true}
	queue := []bfsQueued{{node: ep.Node, depth: 0, path: []depscan.NodeID{ep.Node}, conf: 1}}

	var found []depscan.Path
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if mq, ok := targets[cur.node]; ok && len(cur.path) > 1 {
			found = append(found, buildPath(cur.path, cur.conf, ep.Confidence, mq))
		}

		if cur.depth >= opts.MaxDepth {
			continue
		}
		for _, e := range g.Out(cur.node) {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			next := make([]depscan.NodeID, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = e.To
			queue = append(queue, bfsQueued{
				node:  e.To,
				depth: cur.depth + 1,
				path:  next,
				conf:  cur.conf * e.Confidence,
			})
		}
	}
	return found
}

// buildPath turns a traversed node sequence into a Path, applying the
// length penalty, entry-point quality factor, and function-match bonus from
// §4.F's confidence formula, then clamping to [0,1].
func buildPath(nodes []depscan.NodeID, edgeConfProduct, entryPointConfidence float64, mq matchQuality) depscan.Path {
	hops := len(nodes) - 1
	c := edgeConfProduct * math.Pow(lengthPenaltyBase, float64(hops)) * entryPointConfidence

	switch mq {
	case matchExact:
		c += exactMatchBonus
	case matchPartial:
		c += partialMatchBonus
	}

	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return depscan.Path{Nodes: nodes, Confidence: c}
}
