package taint

import (
	"regexp"

	"github.com/reachlab/depscan"
)

// SourceCategory ranks where an attacker-controlled value entered the
// program, per §4.G's stated ordering: HTTP body > query > header >
// environment.
type SourceCategory string

const (
	CategoryBody        SourceCategory = "body"
	CategoryQuery       SourceCategory = "query"
	CategoryHeader      SourceCategory = "header"
	CategoryEnvironment SourceCategory = "environment"
)

// categoryWeight is the per-category contribution to a tainted path's
// confidence.
var categoryWeight = map[SourceCategory]float64{
	CategoryBody:        1.0,
	CategoryQuery:       0.8,
	CategoryHeader:      0.6,
	CategoryEnvironment: 0.4,
}

type sourcePattern struct {
	category SourceCategory
	re       *regexp.Regexp
}

// commonSources applies across every ecosystem: the shape of "read the
// request body/query/header/environment" is similar enough across web
// frameworks that a single catalog pattern set catches most of it, per the
// resolved single-catalog decision recorded in the open-questions section.
var commonSources = []sourcePattern{
	{CategoryBody, regexp.MustCompile(`\b(req\.body|request\.body|r\.Body|ctx\.Bind|c\.BindJSON|request\.json|request\.get_json|req\.json\(\))\b`)},
	{CategoryQuery, regexp.MustCompile(`\b(req\.query|request\.query|r\.URL\.Query|request\.args|r\.FormValue|request\.GET|req\.params)\b`)},
	{CategoryHeader, regexp.MustCompile(`\b(req\.headers|request\.headers|r\.Header\.Get|request\.META|getHeader)\b`)},
	{CategoryEnvironment, regexp.MustCompile(`\b(os\.Getenv|os\.environ|process\.env|ENV\[)\b`)},
}

// ecosystemSources layers a few ecosystem-specific idioms on top of
// commonSources; only the ecosystems where the pack's examples gave enough
// signal to write confident patterns get an entry, on top of the shared
// fallback.
var ecosystemSources = map[depscan.Ecosystem][]sourcePattern{
	depscan.Go: {
		{CategoryBody, regexp.MustCompile(`\bjson\.NewDecoder\(r\.Body\)`)},
	},
	depscan.Npm: {
		{CategoryBody, regexp.MustCompile(`\bbody-parser\b`)},
	},
	depscan.PyPI: {
		{CategoryBody, regexp.MustCompile(`\brequest\.data\b`)},
	},
}

// commonSanitizers is the single sanitizer catalog (the spec's two
// candidate catalogs are collapsed into this one, per the decision recorded
// in SPEC_FULL.md §9).
var commonSanitizers = []*regexp.Regexp{
	regexp.MustCompile(`\bhtml\.EscapeString\b`),
	regexp.MustCompile(`\bbleach\.clean\b`),
	regexp.MustCompile(`\bDOMPurify\.sanitize\b`),
	regexp.MustCompile(`\bescapeHtml\b`),
	regexp.MustCompile(`\bvalidator\.escape\b`),
	regexp.MustCompile(`\bshlex\.quote\b`),
	regexp.MustCompile(`\bparameteriz`),
	regexp.MustCompile(`\bPrepare\(`),
	regexp.MustCompile(`\bpath\.Clean\b`),
	regexp.MustCompile(`\bfilepath\.Clean\b`),
}

func sourcesFor(eco depscan.Ecosystem) []sourcePattern {
	patterns := make([]sourcePattern, len(commonSources))
	copy(patterns, commonSources)
	return append(patterns, ecosystemSources[eco]...)
}

func sanitizersFor(depscan.Ecosystem) []*regexp.Regexp {
	return commonSanitizers
}
