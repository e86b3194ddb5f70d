// Package discover walks a project root and recognizes the manifest files
// inside it, grouping them into workspaces by nearest-ancestor primary
// manifest.
package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/depmodel"
	"github.com/reachlab/depscan/internal/filterfs"
)

// DefaultMaxDepth bounds the recursive walk below the project root.
const DefaultMaxDepth = 10

// excludedDirs is the static set of directories the walk never descends
// into, regardless of depth budget: version-control metadata, package caches
// and build output, and virtual-environment roots.
var excludedDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"vendor":       {},
	"target":       {},
	"dist":         {},
	"build":        {},
	"__pycache__":  {},
	".venv":        {},
	"venv":         {},
	".tox":         {},
	".mypy_cache":  {},
	".idea":        {},
	".vscode":      {},
}

// Options configures a Discoverer's walk.
type Options struct {
	// MaxDepth bounds how many directories below root the walk descends.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// Result is the output of a single discovery run: the discovered manifests
// grouped into workspaces, and the candidates that matched a filename
// pattern but failed their content probe.
type Result struct {
	Workspaces      []*depscan.Workspace
	FailedManifests []depscan.FailedManifest
}

// Discoverer walks a filesystem rooted at a project directory and emits a
// depscan.Workspace set, per the manifest-discovery contract: a file is a
// manifest iff its basename matches a known pattern AND passes that
// pattern's content probe.
type Discoverer struct {
	opts Options
}

// New builds a Discoverer with the given options.
func New(opts Options) *Discoverer {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Discoverer{opts: opts}
}

// candidate is a manifest file found during the walk, before workspace
// grouping.
type candidate struct {
	manifest *depscan.Manifest
	depth    int
}

// Discover walks root and returns the manifests it finds, grouped into
// workspaces. It never returns an error purely because one file failed its
// content probe; those are recorded in Result.FailedManifests instead.
func (d *Discoverer) Discover(ctx context.Context, root string) (*Result, error) {
	fsys := filterfs.New(os.DirFS(root))

	var (
		candidates []candidate
		failed     []depscan.FailedManifest
	)

	err := fs.WalkDir(fsys, ".", func(relPath string, entry fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		depth := strings.Count(relPath, string(filepath.Separator))
		if relPath == "." {
			depth = 0
		}

		if entry.IsDir() {
			if relPath != "." && shouldExcludeDir(entry.Name()) {
				return fs.SkipDir
			}
			if depth >= d.opts.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		base := filepath.Base(relPath)
		for _, pat := range depmodel.Catalog {
			if pat.Filename != base {
				continue
			}
			absPath := filepath.Join(root, relPath)
			content, readErr := fs.ReadFile(fsys, relPath)
			if readErr != nil {
				failed = append(failed, depscan.FailedManifest{
					AbsolutePath: absPath,
					Ecosystem:    pat.Ecosystem,
					Reason:       readErr.Error(),
				})
				continue
			}
			if probeErr := pat.Probe(content); probeErr != nil {
				failed = append(failed, depscan.FailedManifest{
					AbsolutePath: absPath,
					Ecosystem:    pat.Ecosystem,
					Reason:       probeErr.Error(),
				})
				continue
			}
			candidates = append(candidates, candidate{
				manifest: &depscan.Manifest{
					AbsolutePath: absPath,
					Directory:    filepath.Dir(absPath),
					Ecosystem:    pat.Ecosystem,
					Filename:     base,
					Kind:         pat.Kind,
				},
				depth: depth,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	workspaces := groupIntoWorkspaces(root, candidates)
	return &Result{Workspaces: workspaces, FailedManifests: failed}, nil
}

func shouldExcludeDir(name string) bool {
	_, ok := excludedDirs[name]
	return ok
}

// groupIntoWorkspaces assigns every manifest to the workspace rooted at the
// nearest ancestor directory (including its own) that contains a primary
// manifest. A directory whose only manifests are lockfiles/central manifests
// is not itself a workspace root; it defers to its nearest primary-bearing
// ancestor. If no ancestor has a primary manifest, the manifest's own
// directory becomes a workspace root so every discovered manifest is
// reachable from some workspace.
func groupIntoWorkspaces(root string, candidates []candidate) []*depscan.Workspace {
	primaryDirs := map[string]bool{}
	for _, c := range candidates {
		if c.manifest.Kind == depscan.Primary {
			primaryDirs[c.manifest.Directory] = true
		}
	}

	byRoot := map[string]*depscan.Workspace{}
	var order []string
	for _, c := range candidates {
		wsRoot := nearestPrimaryAncestor(root, c.manifest.Directory, primaryDirs)
		ws, ok := byRoot[wsRoot]
		if !ok {
			ws = &depscan.Workspace{Root: wsRoot}
			byRoot[wsRoot] = ws
			order = append(order, wsRoot)
		}
		ws.Manifests = append(ws.Manifests, c.manifest)
	}

	sort.Strings(order)
	workspaces := make([]*depscan.Workspace, 0, len(order))
	for _, r := range order {
		ws := byRoot[r]
		sort.Slice(ws.Manifests, func(i, j int) bool {
			return ws.Manifests[i].AbsolutePath < ws.Manifests[j].AbsolutePath
		})
		workspaces = append(workspaces, ws)
	}
	return workspaces
}

// nearestPrimaryAncestor walks up from dir to root (inclusive) looking for a
// directory that holds a primary manifest. It falls back to dir itself when
// none is found, so every manifest lands in exactly one workspace.
func nearestPrimaryAncestor(root, dir string, primaryDirs map[string]bool) string {
	cur := dir
	for {
		if primaryDirs[cur] {
			return cur
		}
		if cur == root || cur == "." || cur == string(filepath.Separator) {
			break
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return dir
}
