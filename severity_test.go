package depscan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeverityRoundTrip(t *testing.T) {
	tt := []Severity{Unknown, Negligible, Low, Medium, High, Critical}
	for _, want := range tt {
		t.Run(want.String(), func(t *testing.T) {
			b, err := want.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			var got Severity
			if err := got.UnmarshalText(b); err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(want, got) {
				t.Error(cmp.Diff(want, got))
			}
		})
	}
}

func TestSeverityUnmarshalUnknown(t *testing.T) {
	var s Severity
	if err := s.UnmarshalText([]byte("Apocalyptic")); err == nil {
		t.Error("expected error for unrecognized severity name")
	}
}

func TestCVSSBand(t *testing.T) {
	tt := []struct {
		score float64
		want  Severity
	}{
		{0, Negligible},
		{3.9, Low},
		{6.9, Medium},
		{8.9, High},
		{9.0, Critical},
		{10, Critical},
	}
	for _, tc := range tt {
		if got := CVSSBand(tc.score); got != tc.want {
			t.Errorf("CVSSBand(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}
