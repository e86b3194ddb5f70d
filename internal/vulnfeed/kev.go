package vulnfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/quay/zlog"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/httputil"
)

// DefaultKEVFeed is the default place to look for the CISA Known Exploited
// Vulnerabilities catalog.
const DefaultKEVFeed = "https://www.cisa.gov/sites/default/files/feeds/known_exploited_vulnerabilities.json"

// KEVEnricher marks a vulnerability as KEVListed when its CVE ID (or one of
// its aliases) appears in the CISA KEV catalog.
type KEVEnricher struct {
	client *http.Client
	feed   string

	mu      sync.Mutex
	loaded  time.Time
	dueDate map[string]string
}

// NewKEVEnricher builds a KEVEnricher using c, or http.DefaultClient if c is
// nil.
func NewKEVEnricher(c *http.Client) *KEVEnricher {
	if c == nil {
		c = http.DefaultClient
	}
	return &KEVEnricher{client: c, feed: DefaultKEVFeed}
}

func (e *KEVEnricher) Name() string { return "kev" }

type kevRoot struct {
	Vulnerabilities []kevEntry `json:"vulnerabilities"`
}

type kevEntry struct {
	CVEID   string `json:"cveID"`
	DueDate string `json:"dueDate"`
}

func (e *KEVEnricher) Enrich(ctx context.Context, v *depscan.Vulnerability) error {
	catalog, err := e.ensureLoaded(ctx)
	if err != nil {
		return err
	}
	for _, id := range append([]string{v.CanonicalID}, v.Aliases...) {
		if due, ok := catalog[id]; ok {
			v.KEVListed = true
			v.KEVDueDate = due
			return nil
		}
	}
	return nil
}

func (e *KEVEnricher) ensureLoaded(ctx context.Context) (map[string]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dueDate != nil && time.Since(e.loaded) < 24*time.Hour {
		return e.dueDate, nil
	}

	ctx = zlog.ContextWithValues(ctx, "component", "vulnfeed/KEVEnricher.ensureLoaded")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.feed, nil)
	if err != nil {
		return nil, err
	}
	res, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: kev request: %w", err)
	}
	defer res.Body.Close()
	if err := httputil.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var root kevRoot
	if err := json.NewDecoder(res.Body).Decode(&root); err != nil {
		return nil, fmt.Errorf("vulnfeed: kev decode: %w", err)
	}

	catalog := make(map[string]string, len(root.Vulnerabilities))
	for _, entry := range root.Vulnerabilities {
		catalog[entry.CVEID] = entry.DueDate
	}
	zlog.Debug(ctx).Int("count", len(catalog)).Msg("loaded kev catalog")

	e.dueDate = catalog
	e.loaded = time.Now()
	return catalog, nil
}
