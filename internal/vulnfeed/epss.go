package vulnfeed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/quay/zlog"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/httputil"
	"github.com/reachlab/depscan/pkg/tmp"
)

// DefaultEPSSBaseURL is the default place to look for EPSS score feeds.
const DefaultEPSSBaseURL = "https://epss.cyentia.com/"

// EPSSEnricher attaches an Exploit Prediction Scoring System probability and
// percentile to every vulnerability it recognizes by CVE ID.
type EPSSEnricher struct {
	Client  *http.Client
	BaseURL string

	mu      sync.Mutex
	loaded  time.Time
	scores  map[string]epssScore
}

type epssScore struct {
	score      float64
	percentile float64
}

// NewEPSSEnricher builds an EPSSEnricher using c, or http.DefaultClient if c
// is nil.
func NewEPSSEnricher(c *http.Client) *EPSSEnricher {
	if c == nil {
		c = http.DefaultClient
	}
	return &EPSSEnricher{Client: c, BaseURL: DefaultEPSSBaseURL}
}

func (e *EPSSEnricher) Name() string { return "epss" }

func (e *EPSSEnricher) Enrich(ctx context.Context, v *depscan.Vulnerability) error {
	scores, err := e.ensureLoaded(ctx)
	if err != nil {
		return err
	}
	for _, id := range append([]string{v.CanonicalID}, v.Aliases...) {
		if s, ok := scores[id]; ok {
			score, pct := s.score, s.percentile
			v.EPSSScore = &score
			v.EPSSPercentile = &pct
			return nil
		}
	}
	return nil
}

// ensureLoaded fetches and caches today's EPSS score CSV; the feed
// publishes one file per day, so a day-granularity cache avoids refetching
// on every Enrich call within a run.
func (e *EPSSEnricher) ensureLoaded(ctx context.Context) (map[string]epssScore, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.scores != nil && time.Since(e.loaded) < 24*time.Hour {
		return e.scores, nil
	}

	ctx = zlog.ContextWithValues(ctx, "component", "vulnfeed/EPSSEnricher.ensureLoaded")
	date := time.Now().UTC().Format("2006-01-02")
	feedURL, err := url.JoinPath(e.BaseURL, fmt.Sprintf("epss_scores-%s.csv.gz", date))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: epss request: %w", err)
	}
	defer res.Body.Close()
	if err := httputil.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	// The EPSS CSV is tens of megabytes uncompressed; spool it to disk
	// rather than holding the whole decompressed body in memory while
	// csv.ReadAll parses it.
	spool, err := tmp.NewFile("", "depscan-epss-*.csv")
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: epss spool file: %w", err)
	}
	defer spool.Close()

	gz, err := gzip.NewReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: epss gzip: %w", err)
	}
	if _, err := io.Copy(spool, gz); err != nil {
		gz.Close()
		return nil, fmt.Errorf("vulnfeed: epss spool write: %w", err)
	}
	gz.Close()
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("vulnfeed: epss spool rewind: %w", err)
	}

	// The file starts with a "#model_version:...,score_date:..." comment
	// line, then a header row, then data rows of cve,epss,percentile.
	rd := csv.NewReader(spool)
	rd.Comment = '#'
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: epss csv: %w", err)
	}

	scores := make(map[string]epssScore, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue // header
		}
		score, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			continue
		}
		pct, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			continue
		}
		scores[row[0]] = epssScore{score: score, percentile: pct}
	}
	zlog.Debug(ctx).Int("count", len(scores)).Msg("loaded epss scores")

	e.scores = scores
	e.loaded = time.Now()
	return scores, nil
}
