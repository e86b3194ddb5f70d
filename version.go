package depscan

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Masterminds/semver"
)

// Version is a producer-normalized representation of a version string: a
// fixed-width vector of integers that compares correctly against other
// Versions from the same Kind, without needing to know that ecosystem's
// grammar at the comparison site. Ecosystem adapters populate it; the
// internal/versions package is the only place that should construct or
// compare these directly against a grammar.
type Version struct {
	Kind string
	V    [10]int32
}

// Compare returns -1, 0, or 1 the way [strings.Compare] does.
func (a Version) Compare(b *Version) int {
	for i := range a.V {
		switch {
		case a.V[i] < b.V[i]:
			return -1
		case a.V[i] > b.V[i]:
			return 1
		}
	}
	return 0
}

// String renders the epoch-prefixed dotted form used for diagnostics; it is
// not guaranteed to equal the original version string.
func (v Version) String() string {
	var b bytes.Buffer
	if v.V[0] != 0 {
		fmt.Fprintf(&b, "%d!", v.V[0])
	}
	// Find the highest non-zero index after the epoch so trailing zeros
	// are not rendered for simple versions.
	last := 1
	for i := len(v.V) - 1; i > 0; i-- {
		if v.V[i] != 0 {
			last = i
			break
		}
	}
	for i := 1; i <= last; i++ {
		if i > 1 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatInt(int64(v.V[i]), 10))
	}
	return b.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (v Version) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s\x00%d,%d,%d,%d,%d,%d,%d,%d,%d,%d",
		v.Kind, v.V[0], v.V[1], v.V[2], v.V[3], v.V[4], v.V[5], v.V[6], v.V[7], v.V[8], v.V[9])), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Version) UnmarshalText(b []byte) error {
	i := bytes.IndexByte(b, 0)
	if i == -1 {
		return fmt.Errorf("depscan: malformed Version text %q", string(b))
	}
	v.Kind = string(b[:i])
	var n [10]int64
	parsed, err := fmt.Sscanf(string(b[i+1:]), "%d,%d,%d,%d,%d,%d,%d,%d,%d,%d",
		&n[0], &n[1], &n[2], &n[3], &n[4], &n[5], &n[6], &n[7], &n[8], &n[9])
	if err != nil || parsed != 10 {
		return fmt.Errorf("depscan: malformed Version vector %q: %w", string(b[i+1:]), err)
	}
	for idx, x := range n {
		v.V[idx] = int32(x)
	}
	return nil
}

// FromSemver converts a parsed semver.Version into a Version with Kind
// "semver".
func FromSemver(s *semver.Version) Version {
	var v Version
	v.Kind = "semver"
	v.V[1] = int32(s.Major())
	v.V[2] = int32(s.Minor())
	v.V[3] = int32(s.Patch())
	return v
}
