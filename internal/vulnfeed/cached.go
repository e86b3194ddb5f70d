package vulnfeed

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/feedcache"
)

// feedResult is the value type every cached feed query stores: one batch
// response, keyed by the digest of the dependency set it was computed over.
type feedResult = map[depscan.DependencyKey][]depscan.Vulnerability

// QueryCache is satisfied by feedcache.Cache and feedcache.PostgresCache once
// instantiated over feedResult, so CachedFeed can sit on top of either the
// on-disk default or the optional Postgres-backed cache selected by
// --cache-backend.
type QueryCache interface {
	Get(ctx context.Context, feed, query string, create feedcache.CreateFunc[feedResult]) (*feedResult, error)
}

// CachedFeed wraps a Feed so repeated scans of an unchanged dependency set
// reuse the prior query's result instead of re-hitting the upstream feed. A
// scan's dependency set rarely changes between consecutive runs over the
// same workspace, so this is the common hit path in practice.
type CachedFeed struct {
	Feed  Feed
	Cache QueryCache
}

// NewCachedFeed wraps f with c. A nil c makes the returned Feed behave
// exactly like f, so callers can wire caching in conditionally without a
// branch at every call site.
func NewCachedFeed(f Feed, c QueryCache) Feed {
	if c == nil {
		return f
	}
	return &CachedFeed{Feed: f, Cache: c}
}

func (c *CachedFeed) Name() string { return c.Feed.Name() }

func (c *CachedFeed) Query(ctx context.Context, deps []depscan.Dependency) (feedResult, error) {
	query := queryDigest(deps)
	res, err := c.Cache.Get(ctx, c.Feed.Name(), query, func(ctx context.Context, _ string) (*feedResult, error) {
		r, err := c.Feed.Query(ctx, deps)
		if err != nil {
			return nil, err
		}
		return &r, nil
	})
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// queryDigest derives a stable cache key from a dependency set's identity,
// independent of slice order.
func queryDigest(deps []depscan.Dependency) string {
	keys := make([]string, len(deps))
	for i, d := range deps {
		keys[i] = d.Key().String()
	}
	sort.Strings(keys)
	sum := sha256.Sum256([]byte(strings.Join(keys, "\x00")))
	return fmt.Sprintf("%x", sum)
}
