// Package taint implements the data-flow overlay described in §4.G: for a
// reachable finding, decide whether attacker-controlled input can flow from
// an entry point's source expression down to the vulnerable symbol.
//
// The call graph this overlay walks (internal/callgraph) is a flat
// node/edge model keyed by string handles, not a variable-level AST, so the
// full per-function taint-summary system the contract sketches isn't
// representable faithfully without a real intraprocedural analysis per
// language. This overlay is a deliberately reduced-fidelity approximation
// of that contract: rather than computing and caching per-function
// summaries, it classifies each node already on a discovered reachability
// path against a source/sanitizer catalog and scores the path directly
// against the contract's confidence formula. It still honors the intent
// the contract states explicitly -- triage-grade signal, not a soundness
// proof.
package taint

import (
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
)

const (
	// sanitizerFactor is the confidence multiplier applied per distinct
	// sanitizer pattern observed in the files along a path.
	sanitizerFactor = 0.6
	lengthPenaltyBase = 0.97
)

// Evaluate scores every candidate path of a reachable finding against the
// source/sanitizer catalog and returns the highest-confidence verdict. root
// is the project directory the call graph was built from, used to read
// each path node's source file. A finding that isn't reachable, or has no
// paths, is never tainted by definition -- there is nothing to trace.
func Evaluate(g *callgraph.Graph, root string, finding depscan.ReachabilityFinding) depscan.TaintVerdict {
	if !finding.Reachable || len(finding.Paths) == 0 {
		return depscan.TaintVerdict{}
	}

	sources := sourcesFor(finding.Dependency.Ecosystem)
	sanitizers := sanitizersFor(finding.Dependency.Ecosystem)
	contents := &fileCache{root: root}

	var best depscan.TaintVerdict
	for _, p := range finding.Paths {
		v := evaluatePath(g, contents, p, sources, sanitizers)
		if v.Confidence > best.Confidence {
			best = v
		}
	}
	return best
}

func evaluatePath(g *callgraph.Graph, contents *fileCache, p depscan.Path, sources []sourcePattern, sanitizers []*regexp.Regexp) depscan.TaintVerdict {
	var (
		bestWeight         float64
		observedSources    = map[string]struct{}{}
		observedSanitizers = map[string]struct{}{}
	)

	for _, id := range p.Nodes {
		n := g.Node(id)
		if n == nil || n.IsExternal {
			continue
		}
		text := contents.read(n.File)
		if text == "" {
			continue
		}
		for _, sp := range sources {
			if sp.re.MatchString(text) {
				observedSources[string(sp.category)] = struct{}{}
				if w := categoryWeight[sp.category]; w > bestWeight {
					bestWeight = w
				}
			}
		}
		for _, san := range sanitizers {
			if san.MatchString(text) {
				observedSanitizers[san.String()] = struct{}{}
			}
		}
	}

	if bestWeight == 0 {
		return depscan.TaintVerdict{}
	}

	confidence := bestWeight
	confidence *= math.Pow(sanitizerFactor, float64(len(observedSanitizers)))
	confidence *= math.Pow(lengthPenaltyBase, float64(len(p.Nodes)-1))
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return depscan.TaintVerdict{
		IsTainted:          true,
		Confidence:         confidence,
		ObservedSources:    sortedKeys(observedSources),
		ObservedSanitizers: sortedKeys(observedSanitizers),
		WitnessPath:        p.Nodes,
	}
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// fileCache memoizes file reads across the many paths a single finding's
// nodes tend to revisit (shared entry points, shared helper files).
type fileCache struct {
	root  string
	cache map[string]string
}

func (c *fileCache) read(relFile string) string {
	if c.cache == nil {
		c.cache = map[string]string{}
	}
	if v, ok := c.cache[relFile]; ok {
		return v
	}
	b, err := os.ReadFile(filepath.Join(c.root, relFile))
	text := ""
	if err == nil {
		text = string(b)
	}
	c.cache[relFile] = text
	return text
}
