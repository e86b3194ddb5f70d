// Package vulnfeed resolves dependencies against one or more vulnerability
// feeds concurrently, merges records that share an alias, and layers EPSS
// and KEV enrichment onto the result.
package vulnfeed

import (
	"context"

	"github.com/reachlab/depscan"
)

// Feed queries a single upstream vulnerability source for a batch of
// dependencies. Implementations must never block indefinitely; the resolver
// applies its own timeout per call and treats a feed's error as an empty
// contribution rather than a fatal failure.
type Feed interface {
	// Name identifies the feed for Vulnerability.Sources and logging.
	Name() string
	// Query returns the vulnerabilities applicable to each dependency,
	// keyed by the dependency's (ecosystem, name, version) identity.
	Query(ctx context.Context, deps []depscan.Dependency) (map[depscan.DependencyKey][]depscan.Vulnerability, error)
}

// Enricher layers auxiliary signal (EPSS, KEV) onto an already-resolved
// vulnerability, keyed by its canonical ID and aliases.
type Enricher interface {
	Name() string
	// Enrich mutates v in place with whatever additional fields the
	// enricher's feed can supply; a vulnerability the feed has no data for
	// is left untouched.
	Enrich(ctx context.Context, v *depscan.Vulnerability) error
}
