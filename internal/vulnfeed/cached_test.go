package vulnfeed

import (
	"context"
	"testing"
	"time"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/feedcache"
)

func TestCachedFeedReusesResultAcrossCalls(t *testing.T) {
	dep := depscan.Dependency{Ecosystem: depscan.Npm, Name: "left-pad", Version: "1.0.0"}
	calls := 0
	inner := feedStub{
		name: "stub",
		query: func(context.Context, []depscan.Dependency) (feedResult, error) {
			calls++
			return feedResult{dep.Key(): {{CanonicalID: "GHSA-xxxx"}}}, nil
		},
	}

	cache := feedcache.New[feedResult](t.TempDir(), []byte("test-secret"), time.Hour)
	cf := NewCachedFeed(inner, cache)

	for i := 0; i < 3; i++ {
		res, err := cf.Query(context.Background(), []depscan.Dependency{dep})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if len(res[dep.Key()]) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	}
	if calls != 1 {
		t.Errorf("expected the underlying feed to be queried once, got %d calls", calls)
	}
}

func TestNewCachedFeedPassesThroughOnNilCache(t *testing.T) {
	inner := feedStub{name: "stub"}
	if got := NewCachedFeed(inner, nil); got.Name() != "stub" {
		t.Errorf("expected a nil cache to yield the original feed unchanged, got %q", got.Name())
	}
}

type feedStub struct {
	name  string
	query func(context.Context, []depscan.Dependency) (feedResult, error)
}

func (f feedStub) Name() string { return f.name }

func (f feedStub) Query(ctx context.Context, deps []depscan.Dependency) (feedResult, error) {
	if f.query == nil {
		return nil, nil
	}
	return f.query(ctx, deps)
}
