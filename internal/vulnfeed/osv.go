package vulnfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/quay/zlog"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/cvss"
	"github.com/reachlab/depscan/internal/httputil"
)

// DefaultOSVEndpoint is osv.dev's batch query API.
const DefaultOSVEndpoint = "https://api.osv.dev/v1/querybatch"

// OSVFeed queries the osv.dev batch API, which accepts many
// (ecosystem, name, version) queries per HTTP round trip.
type OSVFeed struct {
	Client   *http.Client
	Endpoint string
}

// NewOSVFeed builds an OSVFeed using c, or http.DefaultClient if c is nil.
func NewOSVFeed(c *http.Client) *OSVFeed {
	if c == nil {
		c = http.DefaultClient
	}
	return &OSVFeed{Client: c, Endpoint: DefaultOSVEndpoint}
}

func (f *OSVFeed) Name() string { return "osv" }

type osvBatchRequest struct {
	Queries []osvQuery `json:"queries"`
}

type osvQuery struct {
	Package osvPackage `json:"package"`
	Version string     `json:"version"`
}

type osvPackage struct {
	Name      string `json:"name"`
	Ecosystem string `json:"ecosystem"`
}

type osvBatchResponse struct {
	Results []struct {
		Vulns []osvVuln `json:"vulns"`
	} `json:"results"`
}

type osvVuln struct {
	ID       string   `json:"id"`
	Aliases  []string `json:"aliases"`
	Summary  string   `json:"summary"`
	Details  string   `json:"details"`
	Severity []struct {
		Type  string `json:"type"`
		Score string `json:"score"`
	} `json:"severity"`
	Affected []struct {
		Package osvPackage `json:"package"`
		Ranges  []struct {
			Type   string `json:"type"`
			Events []struct {
				Introduced string `json:"introduced"`
				Fixed      string `json:"fixed"`
			} `json:"events"`
		} `json:"ranges"`
	} `json:"affected"`
	References []struct {
		URL string `json:"url"`
	} `json:"references"`
}

// osvEcosystemName maps the closed Ecosystem enum onto OSV's own ecosystem
// vocabulary, which does not always match depscan's lowercase identifiers.
var osvEcosystemName = map[depscan.Ecosystem]string{
	depscan.Npm:       "npm",
	depscan.PyPI:      "PyPI",
	depscan.Maven:     "Maven",
	depscan.Go:        "Go",
	depscan.Cargo:     "crates.io",
	depscan.RubyGems:  "RubyGems",
	depscan.Packagist: "Packagist",
	depscan.NuGet:     "NuGet",
	depscan.Pub:       "Pub",
	depscan.Swift:     "SwiftURL",
	depscan.Hex:       "Hex",
	depscan.Hackage:   "Hackage",
}

func (f *OSVFeed) Query(ctx context.Context, deps []depscan.Dependency) (map[depscan.DependencyKey][]depscan.Vulnerability, error) {
	ctx = zlog.ContextWithValues(ctx, "component", "vulnfeed/OSVFeed.Query")
	if len(deps) == 0 {
		return nil, nil
	}

	req := osvBatchRequest{Queries: make([]osvQuery, 0, len(deps))}
	order := make([]depscan.DependencyKey, 0, len(deps))
	for _, d := range deps {
		eco, ok := osvEcosystemName[d.Ecosystem]
		if !ok || d.Version == "" {
			continue
		}
		req.Queries = append(req.Queries, osvQuery{
			Package: osvPackage{Name: d.Name, Ecosystem: eco},
			Version: d.Version,
		})
		order = append(order, d.Key())
	}
	if len(req.Queries) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: encode osv batch request: %w", err)
	}

	endpoint := f.Endpoint
	if endpoint == "" {
		endpoint = DefaultOSVEndpoint
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// Setting Accept-Encoding explicitly opts out of net/http's built-in
	// transparent gzip handling, so the batch response (which can run to
	// several megabytes of JSON for a large dependency set) is decoded
	// through klauspost/compress instead of left to the stdlib.
	httpReq.Header.Set("Accept-Encoding", "gzip")

	res, err := f.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: osv request: %w", err)
	}
	defer res.Body.Close()
	if err := httputil.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var respBody io.Reader = res.Body
	if res.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(res.Body)
		if err != nil {
			return nil, fmt.Errorf("vulnfeed: osv gzip: %w", err)
		}
		defer gz.Close()
		respBody = gz
	}

	var batch osvBatchResponse
	if err := json.NewDecoder(respBody).Decode(&batch); err != nil {
		return nil, fmt.Errorf("vulnfeed: decode osv response: %w", err)
	}
	if len(batch.Results) != len(order) {
		return nil, fmt.Errorf("vulnfeed: osv response length %d does not match query length %d", len(batch.Results), len(order))
	}

	out := make(map[depscan.DependencyKey][]depscan.Vulnerability, len(order))
	for i, result := range batch.Results {
		for _, vuln := range result.Vulns {
			out[order[i]] = append(out[order[i]], convertOSVVuln(vuln))
		}
	}
	zlog.Debug(ctx).Int("queries", len(order)).Int("hits", len(out)).Msg("osv batch query complete")
	return out, nil
}

func convertOSVVuln(v osvVuln) depscan.Vulnerability {
	// The canonical ID is the first CVE, else GHSA, ID among the OSV ID and
	// its aliases, else the OSV ID; an OSV ID not chosen stays an alias.
	canonical := ""
	for _, prefix := range []string{"CVE-", "GHSA-"} {
		for _, id := range append([]string{v.ID}, v.Aliases...) {
			if canonical == "" && strings.HasPrefix(id, prefix) {
				canonical = id
			}
		}
	}
	aliases := v.Aliases
	if canonical == "" {
		canonical = v.ID
	} else if canonical != v.ID {
		aliases = append(append([]string{}, v.Aliases...), v.ID)
	}
	out := depscan.Vulnerability{
		CanonicalID: canonical,
		Aliases:     aliases,
		Summary:     firstNonEmpty(v.Summary, v.Details),
		Sources:     []string{"osv"},
	}
	for _, aff := range v.Affected {
		var ranges []string
		for _, r := range aff.Ranges {
			for _, ev := range r.Events {
				switch {
				case ev.Introduced != "":
					ranges = append(ranges, ">="+ev.Introduced)
				case ev.Fixed != "":
					ranges = append(ranges, "<"+ev.Fixed)
				}
			}
		}
		out.AffectedPackages = append(out.AffectedPackages, depscan.AffectedPackage{
			Ecosystem:     osvEcosystem(aff.Package.Ecosystem),
			Name:          aff.Package.Name,
			VersionRanges: ranges,
		})
	}
	for _, ref := range v.References {
		out.References = append(out.References, ref.URL)
	}
	for _, s := range v.Severity {
		if s.Type == "CVSS_V3" || s.Type == "CVSS_V4" {
			out.CVSSVector = s.Score
		}
	}
	if out.CVSSVector != "" {
		if score, err := cvss.BaseScore(out.CVSSVector); err == nil {
			out.CVSSBase = score
			out.Severity = depscan.CVSSBand(score)
		}
	}
	return out
}

// osvEcosystem reverses osvEcosystemName's lookup for the (rarer) OSV
// ecosystem strings that appear inside an affected-package block rather
// than in the query itself.
func osvEcosystem(name string) depscan.Ecosystem {
	for eco, osvName := range osvEcosystemName {
		if osvName == name {
			return eco
		}
	}
	return depscan.UnknownEcosystem
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
