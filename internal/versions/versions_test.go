package versions

import (
	"testing"

	"github.com/reachlab/depscan"
)

func TestForEcosystem(t *testing.T) {
	tt := []struct {
		eco  depscan.Ecosystem
		a, b string
		want int
	}{
		{depscan.PyPI, "1.0.0", "1.0.1", -1},
		{depscan.Npm, "2.0.0", "1.9.9", 1},
		{depscan.Cargo, "1.0.0", "1.0.0", 0},
		{depscan.Go, "v1.2.0", "v1.3.0", -1},
	}

	for _, tc := range tt {
		t.Run(string(tc.eco), func(t *testing.T) {
			cmp := ForEcosystem(tc.eco)
			got, err := cmp(tc.a, tc.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("compare(%q,%q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	cmp := ForEcosystem(depscan.Npm)

	tt := []struct {
		version string
		rng     string
		want    bool
	}{
		{"1.5.0", ">=1.0.0 <2.0.0", true},
		{"2.0.0", ">=1.0.0 <2.0.0", false},
		{"0.9.0", ">=1.0.0 <2.0.0", false},
		{"1.0.0", "=1.0.0", true},
	}

	for _, tc := range tt {
		t.Run(tc.version+"/"+tc.rng, func(t *testing.T) {
			got, err := InRange(cmp, tc.version, tc.rng)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("InRange(%q, %q) = %v, want %v", tc.version, tc.rng, got, tc.want)
			}
		})
	}
}
