package cvss

import "fmt"

// BaseScore parses vec (a "CVSS:3.1/AV:N/..." or bare v2 vector string) and
// returns the score its version's Score method reports: the environmental
// score for v2 and the temporal (or environmental) score for v3, which equal
// the base score when the vector carries only base metrics. It dispatches on the version prefix Version
// reports; v2 vectors carry no "CVSS:" prefix and so Version returns 2 for
// any string it can't otherwise identify.
func BaseScore(vec string) (float64, error) {
	switch Version(vec) {
	case 2:
		v, err := ParseV2(vec)
		if err != nil {
			return 0, fmt.Errorf("cvss: parse v2 vector: %w", err)
		}
		return v.Score(), nil
	case 3:
		v, err := ParseV3(vec)
		if err != nil {
			return 0, fmt.Errorf("cvss: parse v3 vector: %w", err)
		}
		return v.Score(), nil
	case 4:
		v, err := ParseV4(vec)
		if err != nil {
			return 0, fmt.Errorf("cvss: parse v4 vector: %w", err)
		}
		return v.Score(), nil
	default:
		return 0, fmt.Errorf("cvss: unrecognized vector %q", vec)
	}
}
