package depscan

import (
	"testing"

	"github.com/Masterminds/semver"
	"github.com/google/go-cmp/cmp"
)

func TestVersionRoundTrip(t *testing.T) {
	tt := []Version{
		{Kind: "test"},
		{Kind: "test", V: [10]int32{0, 1, 2, 3}},
		{Kind: "test", V: [10]int32{1, 2, 0, 0}},
	}
	for _, want := range tt {
		t.Run(want.String(), func(t *testing.T) {
			b, err := want.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			var got Version
			if err := got.UnmarshalText(b); err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(want, got) {
				t.Error(cmp.Diff(want, got))
			}
		})
	}
}

func TestVersionCompare(t *testing.T) {
	a := Version{V: [10]int32{0, 1, 0, 0}}
	b := Version{V: [10]int32{0, 2, 0, 0}}
	if got := a.Compare(&b); got != -1 {
		t.Errorf("a.Compare(b) = %d, want -1", got)
	}
	if got := b.Compare(&a); got != 1 {
		t.Errorf("b.Compare(a) = %d, want 1", got)
	}
	if got := a.Compare(&a); got != 0 {
		t.Errorf("a.Compare(a) = %d, want 0", got)
	}
}

func TestFromSemver(t *testing.T) {
	v := FromSemver(semver.MustParse("1.2.3"))
	want := Version{Kind: "semver", V: [10]int32{0, 1, 2, 3}}
	if !cmp.Equal(want, v) {
		t.Error(cmp.Diff(want, v))
	}
}
