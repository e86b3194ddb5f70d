package vulnfeed

import (
	"context"
	"sort"
	"time"

	"github.com/quay/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/reachlab/depscan"
)

// Resolver queries a set of Feeds concurrently and merges their results,
// then layers Enrichers on top. A single feed or enricher erroring never
// fails the whole Resolve call; it just contributes nothing.
type Resolver struct {
	feeds     []Feed
	enrichers []Enricher

	lastUnavailable []string
}

// New builds a Resolver over the given feeds and enrichers.
func New(feeds []Feed, enrichers []Enricher) *Resolver {
	return &Resolver{feeds: feeds, enrichers: enrichers}
}

// Unavailable lists the feeds that errored on the most recent Resolve call,
// for Statistics.UnavailableFeeds. Not safe to call concurrently with
// Resolve, matching FindingSet.Add's single-goroutine-per-phase contract.
func (r *Resolver) Unavailable() []string { return r.lastUnavailable }

// Resolve returns the merged, enriched vulnerabilities applicable to deps,
// keyed by dependency identity.
func (r *Resolver) Resolve(ctx context.Context, deps []depscan.Dependency) (map[depscan.DependencyKey][]*depscan.Vulnerability, error) {
	ctx = zlog.ContextWithValues(ctx, "component", "vulnfeed/Resolver.Resolve")

	results := make([]map[depscan.DependencyKey][]depscan.Vulnerability, len(r.feeds))
	failed := make([]bool, len(r.feeds))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, f := range r.feeds {
		i, f := i, f
		eg.Go(func() error {
			// Each feed call gets its own 30s budget.
			qctx, cancel := context.WithTimeout(egCtx, 30*time.Second)
			defer cancel()
			res, err := f.Query(qctx, deps)
			if err != nil {
				// §4.C failure policy: a feed that errors contributes
				// nothing; it never aborts the resolve.
				zlog.Warn(ctx).Str("feed", f.Name()).Err(err).Msg("feed query failed, yielding empty contribution")
				failed[i] = true
				return nil
			}
			results[i] = res
			return nil
		})
	}
	// errgroup.Go's func never returns a non-nil error above, so Wait
	// cannot fail; it only joins the goroutines.
	_ = eg.Wait()

	r.lastUnavailable = r.lastUnavailable[:0]
	for i, f := range failed {
		if f {
			r.lastUnavailable = append(r.lastUnavailable, r.feeds[i].Name())
		}
	}

	merged := make(map[depscan.DependencyKey][]*depscan.Vulnerability)
	for i, res := range results {
		if res == nil {
			continue
		}
		feedName := r.feeds[i].Name()
		for key, vulns := range res {
			for vi := range vulns {
				v := vulns[vi]
				if len(v.Sources) == 0 {
					v.Sources = []string{feedName}
				}
				mergeInto(merged, key, &v)
			}
		}
	}

	if len(r.enrichers) > 0 {
		for _, vs := range merged {
			for _, v := range vs {
				for _, e := range r.enrichers {
					if err := e.Enrich(ctx, v); err != nil {
						zlog.Warn(ctx).Str("enricher", e.Name()).Err(err).Msg("enrichment failed, leaving vulnerability unenriched")
					}
				}
			}
		}
	}

	for key := range merged {
		sort.Slice(merged[key], func(i, j int) bool {
			return merged[key][i].CanonicalID < merged[key][j].CanonicalID
		})
	}
	return merged, nil
}

// mergeInto inserts v into merged[key], combining it with an existing entry
// that shares any alias or canonical ID, per the §4.C merge rule.
func mergeInto(merged map[depscan.DependencyKey][]*depscan.Vulnerability, key depscan.DependencyKey, v *depscan.Vulnerability) {
	existing := merged[key]
	for _, e := range existing {
		if sharesIdentifier(e, v) {
			e.Merge(v)
			return
		}
	}
	merged[key] = append(existing, v)
}

func sharesIdentifier(a, b *depscan.Vulnerability) bool {
	ids := make(map[string]struct{}, len(a.Aliases)+1)
	ids[a.CanonicalID] = struct{}{}
	for _, al := range a.Aliases {
		ids[al] = struct{}{}
	}
	if _, ok := ids[b.CanonicalID]; ok {
		return true
	}
	for _, al := range b.Aliases {
		if _, ok := ids[al]; ok {
			return true
		}
	}
	return false
}
