package depscan

import (
	"database/sql/driver"
	"fmt"
)

// Severity is the normalized severity of a Vulnerability, independent of
// whatever scale the originating feed used.
type Severity uint

const (
	Unknown Severity = iota
	Negligible
	Low
	Medium
	High
	Critical
)

var severityName = [...]string{
	Unknown:    "Unknown",
	Negligible: "Negligible",
	Low:        "Low",
	Medium:     "Medium",
	High:       "High",
	Critical:   "Critical",
}

func (s Severity) String() string {
	if int(s) >= len(severityName) {
		return "Unknown"
	}
	return severityName[s]
}

func (s *Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	name := string(b)
	for n, v := range severityName {
		if v == name {
			*s = Severity(n)
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", name)
}

func (s Severity) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *Severity) Scan(i interface{}) error {
	switch v := i.(type) {
	case []byte:
		return s.UnmarshalText(v)
	case string:
		return s.UnmarshalText([]byte(v))
	case int64:
		if v >= int64(len(severityName)) {
			return fmt.Errorf("unable to scan Severity from enum %d", v)
		}
		*s = Severity(v)
	default:
		return fmt.Errorf("unable to scan Severity from type %T", i)
	}
	return nil
}

// CVSSBand maps a CVSS base score (0-10) onto the normalized scale, following
// the banding published alongside CVSS v3.
func CVSSBand(score float64) Severity {
	switch {
	case score <= 0:
		return Negligible
	case score < 4:
		return Low
	case score < 7:
		return Medium
	case score < 9:
		return High
	default:
		return Critical
	}
}
