// Package scan orchestrates a full dependency-vulnerability scan: manifest
// discovery, dependency extraction and merge, vulnerability-feed
// resolution, call-graph construction, entry-point detection,
// reachability and taint analysis, and risk scoring, end to end over one
// project root.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/mod/modfile"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
	"github.com/reachlab/depscan/internal/callgraph/generic"
	"github.com/reachlab/depscan/internal/callgraph/golang"
	"github.com/reachlab/depscan/internal/depmodel"
	"github.com/reachlab/depscan/internal/discover"
	"github.com/reachlab/depscan/internal/entrypoint"
	"github.com/reachlab/depscan/internal/reachability"
	"github.com/reachlab/depscan/internal/risk"
	"github.com/reachlab/depscan/internal/taint"
	"github.com/reachlab/depscan/internal/telemetry"
	"github.com/reachlab/depscan/internal/vulnfeed"
)

// Options configures a single scan run.
type Options struct {
	// Root is the project directory to scan.
	Root string
	// MaxDepth bounds discover's recursive walk; zero uses its default.
	MaxDepth int
	// MaxDependencies caps how many dependencies a single workspace
	// contributes to the scan; zero means unbounded. A workspace over the
	// cap is truncated (first N in extraction order) and recorded in
	// Statistics.TruncatedWorkspaces rather than failing the scan.
	MaxDependencies int

	Feeds     []vulnfeed.Feed
	Enrichers []vulnfeed.Enricher
	// Cache wraps every feed in a vulnfeed.CachedFeed when non-nil.
	Cache vulnfeed.QueryCache

	// Scorer assigns risk; a nil Scorer falls back to risk.ScoreDefault via
	// a nil-receiver Score call, so callers that never loaded a model don't
	// need to construct one.
	Scorer *risk.Scorer

	Reachability        reachability.Options
	EntryPointThreshold float64

	// Telemetry is nilable; see telemetry.Phases.
	Telemetry *telemetry.Phases
}

// Result is one scan's complete output: the findings, and the summary
// statistics internal/format renders alongside them.
type Result struct {
	Statistics depscan.Statistics
	Findings   depscan.FindingSet
}

// detectorVersion tags every finding scan.Run produces; bumped when the
// orchestration's finding-production behavior changes in a way a consumer
// might care to distinguish.
const detectorVersion = "1"

// Run performs one full scan of opts.Root and returns its findings and
// summary statistics. A degraded input (an unparsable manifest, an
// unreachable feed) is recorded in the result rather than failing the
// call; Run only returns an error for a failure that makes the whole scan
// meaningless (the root doesn't exist, discovery itself errors).
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if opts.EntryPointThreshold <= 0 {
		opts.EntryPointThreshold = entrypoint.DefaultThreshold
	}

	feeds := make([]vulnfeed.Feed, len(opts.Feeds))
	for i, f := range opts.Feeds {
		feeds[i] = vulnfeed.NewCachedFeed(f, opts.Cache)
	}
	resolver := vulnfeed.New(feeds, opts.Enrichers)

	findings := depscan.NewFindingSet()
	stats := depscan.Statistics{ScanID: uuid.NewString(), SeverityCounts: make(map[string]int)}

	if _, err := os.Stat(opts.Root); err != nil {
		return nil, fmt.Errorf("scan: project root: %w", err)
	}

	ctx, end := opts.Telemetry.StartPhase(ctx, "discover")
	disc := discover.New(discover.Options{MaxDepth: opts.MaxDepth})
	discovered, err := disc.Discover(ctx, opts.Root)
	end(err)
	if err != nil {
		return nil, fmt.Errorf("scan: discover manifests: %w", err)
	}
	stats.FailedManifests = discovered.FailedManifests
	stats.ManifestCount = len(discovered.FailedManifests)

	unavailable := make(map[string]bool)

	for _, ws := range discovered.Workspaces {
		stats.ManifestCount += len(ws.Manifests)

		deps, err := extractWorkspaceDeps(ws)
		if err != nil {
			return nil, fmt.Errorf("scan: extract dependencies in %s: %w", ws.Root, err)
		}
		if opts.MaxDependencies > 0 && len(deps) > opts.MaxDependencies {
			deps = deps[:opts.MaxDependencies]
			stats.TruncatedWorkspaces = append(stats.TruncatedWorkspaces, ws.Root)
		}
		depmodel.AttachPURLs(deps)
		stats.TotalDependencies += len(deps)

		ctx, end := opts.Telemetry.StartPhase(ctx, "resolve")
		merged, err := resolver.Resolve(ctx, deps)
		end(err)
		if err != nil {
			return nil, fmt.Errorf("scan: resolve vulnerabilities in %s: %w", ws.Root, err)
		}
		for _, name := range resolver.Unavailable() {
			unavailable[name] = true
		}

		ctx, end = opts.Telemetry.StartPhase(ctx, "callgraph")
		g, err := buildCallGraph(ws.Root)
		end(err)
		if err != nil {
			return nil, fmt.Errorf("scan: build call graph in %s: %w", ws.Root, err)
		}

		_, end = opts.Telemetry.StartPhase(ctx, "entrypoints")
		entryPoints := entrypoint.Detect(g, ws.Root, nil, opts.EntryPointThreshold)
		end(nil)
		stats.EntryPointCount += len(entryPoints)

		for _, dep := range deps {
			vulns := merged[dep.Key()]
			for _, v := range vulns {
				finding := reachability.Evaluate(g, entryPoints, dep, *v, opts.Reachability)
				finding.Taint = taint.Evaluate(g, ws.Root, finding)
				features := risk.Extract(g, ws.Root, entryPoints, finding)
				finding.Risk = opts.Scorer.Score(ctx, features)
				finding.Detector = depscan.Detector{Name: "depscan", Version: detectorVersion, Kind: "reachability"}

				stats.TotalFindings++
				if finding.Reachable {
					stats.ReachableFindings++
				}
				if finding.Taint.IsTainted {
					stats.TaintedFindings++
				}
				stats.SeverityCounts[string(finding.Vulnerability.Severity)]++

				f := finding
				findings.Add(ws.Root, &f)
			}
		}
	}
	for name := range unavailable {
		stats.UnavailableFeeds = append(stats.UnavailableFeeds, name)
	}

	findings.Sort()
	stats.Elapsed = depscan.Duration(time.Since(start))
	return &Result{Statistics: stats, Findings: findings}, nil
}

// extractWorkspaceDeps runs every manifest in ws through depmodel's catalog
// extractor for its (filename, ecosystem, kind), then merges the results
// per depmodel.Merge's lockfile-wins/primary-fallback precedence.
func extractWorkspaceDeps(ws *depscan.Workspace) ([]depscan.Dependency, error) {
	byManifest := make(map[string][]depscan.Dependency, len(ws.Manifests))
	for _, m := range ws.Manifests {
		extract := extractorFor(m)
		if extract == nil {
			continue
		}
		content, err := os.ReadFile(m.AbsolutePath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", m.AbsolutePath, err)
		}
		deps, err := extract(m.AbsolutePath, content)
		if err != nil {
			// A single unparsable manifest degrades to "no dependencies
			// from this file" rather than aborting the workspace; discover
			// already validated the file passes its cheap content probe,
			// so a later parse failure is a feature depscan doesn't (yet)
			// support, not a reason to stop the scan.
			continue
		}
		byManifest[m.AbsolutePath] = deps
	}
	return depmodel.Merge(ws.Manifests, byManifest), nil
}

func extractorFor(m *depscan.Manifest) func(string, []byte) ([]depscan.Dependency, error) {
	for _, pat := range depmodel.Catalog {
		if pat.Filename == m.Filename && pat.Ecosystem == m.Ecosystem && pat.Kind == m.Kind {
			return pat.Extract
		}
	}
	return nil
}

// buildCallGraph runs the Go front-end (grounded on the workspace's go.mod,
// if any) and the generic regex front-end over ws.Root, per §5.D.1: Go
// source gets a real syntactic parse, everything else gets lower-confidence
// pattern-matched edges, and the two never claim the same files.
func buildCallGraph(root string) (*callgraph.Graph, error) {
	g := callgraph.New()

	var fes []callgraph.Frontend
	fes = append(fes, golang.Frontend{ImportPath: resolveImportPaths(root)})
	fes = append(fes, generic.Frontend{})

	for _, fe := range fes {
		if err := fe.Build(g, root); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// resolveImportPaths maps every directory under root to its Go import
// path, derived from the workspace's go.mod module declaration. A root
// with no go.mod (a pure npm/pypi/etc workspace) yields an empty map,
// which golang.Build tolerates by treating every selector call as
// external.
func resolveImportPaths(root string) map[string]string {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return nil
	}
	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil || f.Module == nil {
		return nil
	}
	modPath := f.Module.Mod.Path

	importPath := map[string]string{".": modPath}
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		importPath[rel] = modPath + "/" + filepath.ToSlash(rel)
		return nil
	})
	return importPath
}
