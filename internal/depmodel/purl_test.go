package depmodel

import (
	"testing"

	"github.com/reachlab/depscan"
)

func TestAttachPURLs(t *testing.T) {
	deps := []depscan.Dependency{
		{Name: "lodash", Version: "4.17.21", Ecosystem: depscan.Npm},
		{Name: "org.apache.commons:commons-lang3", Version: "3.14.0", Ecosystem: depscan.Maven},
		{Name: "github.com/pkg/errors", Version: "v0.9.1", Ecosystem: depscan.Go},
		{Name: "already-set", Version: "1.0.0", Ecosystem: depscan.Npm, PURL: "pkg:npm/already-set@1.0.0"},
		{Name: "unmapped", Version: "1.0.0", Ecosystem: depscan.UnknownEcosystem},
	}
	AttachPURLs(deps)

	want := []string{
		"pkg:npm/lodash@4.17.21",
		"pkg:maven/org.apache.commons/commons-lang3@3.14.0",
		"pkg:golang/github.com/pkg/errors@v0.9.1",
		"pkg:npm/already-set@1.0.0",
		"",
	}
	for i, w := range want {
		if deps[i].PURL != w {
			t.Errorf("deps[%d].PURL = %q, want %q", i, deps[i].PURL, w)
		}
	}
}
