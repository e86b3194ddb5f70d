package vulnfeed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/quay/goval-parser/oval"
	"github.com/quay/zlog"
	"github.com/ulikunitz/xz"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/httputil"
)

// OVALFeed queries a single Red-Hat-flavored OVAL XML document for
// dependency vulnerabilities. Unlike OSVFeed's batch JSON API, an OVAL feed
// describes an entire distribution in one document, so Query loads and
// decodes it once per call and then filters in-process.
//
// This feed is for optional deployments that track OS-packaged dependencies
// (RPM/DEB-based base images) alongside the ecosystem manifests depmodel
// extracts; most scans never configure one.
type OVALFeed struct {
	Client *http.Client
	// URL points at an OVAL document, optionally .xz-compressed (detected
	// by a ".xz" URL suffix rather than sniffed content, matching how the
	// upstream mirrors name their artifacts).
	URL string
	// Dist labels every vulnerability this feed produces, since a raw
	// OVAL document carries no distribution identity of its own.
	Dist string

	root  *oval.Root
	defs  []oval.Definition
}

// NewOVALFeed builds an OVALFeed using c, or http.DefaultClient if c is nil.
func NewOVALFeed(c *http.Client, url, dist string) *OVALFeed {
	if c == nil {
		c = http.DefaultClient
	}
	return &OVALFeed{Client: c, URL: url, Dist: dist}
}

func (f *OVALFeed) Name() string { return "oval:" + f.Dist }

func (f *OVALFeed) Query(ctx context.Context, deps []depscan.Dependency) (map[depscan.DependencyKey][]depscan.Vulnerability, error) {
	ctx = zlog.ContextWithValues(ctx, "component", "vulnfeed/OVALFeed.Query", "dist", f.Dist)
	defs, err := f.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[depscan.DependencyKey][]depscan.Vulnerability)
	for _, dep := range deps {
		for _, def := range defs {
			if !definitionMentions(def, dep.Name) {
				continue
			}
			out[dep.Key()] = append(out[dep.Key()], convertOVALDefinition(def, f.Dist))
		}
	}
	zlog.Debug(ctx).Int("definitions", len(defs)).Int("hits", len(out)).Msg("oval query complete")
	return out, nil
}

// ensureLoaded downloads and decodes the OVAL document once, caching it for
// the lifetime of the feed; a single process rarely needs to refresh an
// OVAL snapshot mid-run the way EPSS's daily CSV does.
func (f *OVALFeed) ensureLoaded(ctx context.Context) ([]oval.Definition, error) {
	if f.defs != nil {
		return f.defs, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	res, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: oval request: %w", err)
	}
	defer res.Body.Close()
	if err := httputil.CheckResponse(res, http.StatusOK); err != nil {
		return nil, err
	}

	var body io.Reader = res.Body
	if strings.HasSuffix(f.URL, ".xz") {
		xzr, err := xz.NewReader(res.Body)
		if err != nil {
			return nil, fmt.Errorf("vulnfeed: oval xz: %w", err)
		}
		body = xzr
	}

	root := &oval.Root{}
	dec := xml.NewDecoder(body)
	if err := dec.Decode(root); err != nil {
		return nil, fmt.Errorf("vulnfeed: decode oval document: %w", err)
	}

	f.root = root
	f.defs = root.Definitions.Definitions
	return f.defs, nil
}

// definitionMentions reports whether def's title or affected-CPE list
// names the given dependency; OVAL documents key packages by CPE or RPM
// name rather than by the ecosystem package name depscan tracks, so this
// is necessarily a substring match rather than an exact one.
func definitionMentions(def oval.Definition, name string) bool {
	if strings.Contains(def.Title, name) {
		return true
	}
	for _, cpe := range def.Advisory.AffectedCPEList {
		if strings.Contains(cpe, name) {
			return true
		}
	}
	return false
}

func convertOVALDefinition(def oval.Definition, dist string) depscan.Vulnerability {
	v := depscan.Vulnerability{
		CanonicalID: def.Title,
		Summary:     def.Description,
		Sources:     []string{"oval:" + dist},
	}
	for _, ref := range def.References {
		if ref.RefURL != "" {
			v.References = append(v.References, ref.RefURL)
		}
	}
	if score, err := strconv.ParseFloat(def.Advisory.Severity, 64); err == nil {
		v.CVSSBase = score
	}
	return v
}
