package vulnfeed

import (
	"testing"

	"github.com/quay/goval-parser/oval"
)

func TestDefinitionMentionsMatchesTitleAndCPE(t *testing.T) {
	def := oval.Definition{
		Title: "CVE-2023-9999 affecting openssl",
		Advisory: oval.Advisory{
			AffectedCPEList: []string{"cpe:/a:redhat:openssl:3"},
		},
	}

	if !definitionMentions(def, "openssl") {
		t.Error("expected a title substring match")
	}
	if definitionMentions(def, "curl") {
		t.Error("did not expect an unrelated package name to match")
	}

	def2 := oval.Definition{
		Title: "CVE-2023-0000",
		Advisory: oval.Advisory{
			AffectedCPEList: []string{"cpe:/a:redhat:curl:8"},
		},
	}
	if !definitionMentions(def2, "curl") {
		t.Error("expected an affected-CPE substring match")
	}
}

func TestConvertOVALDefinitionCollectsReferences(t *testing.T) {
	def := oval.Definition{
		Title:       "RHSA-2023:1111",
		Description: "an advisory",
		References: []oval.Reference{
			{RefURL: "https://access.redhat.com/errata/RHSA-2023:1111"},
			{RefURL: ""},
		},
		Advisory: oval.Advisory{Severity: "7.5"},
	}

	v := convertOVALDefinition(def, "rhel8")
	if v.CanonicalID != "RHSA-2023:1111" {
		t.Errorf("CanonicalID = %q", v.CanonicalID)
	}
	if len(v.References) != 1 {
		t.Fatalf("expected blank RefURLs dropped, got %v", v.References)
	}
	if v.CVSSBase != 7.5 {
		t.Errorf("CVSSBase = %v, want 7.5", v.CVSSBase)
	}
	if len(v.Sources) != 1 || v.Sources[0] != "oval:rhel8" {
		t.Errorf("Sources = %v", v.Sources)
	}
}
