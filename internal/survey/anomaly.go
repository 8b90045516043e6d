package survey

import (
	"strings"

	"golang.org/x/text/cases"
)

// Anomaly is one defect observation from a single inspection survey.
//
// Position is always present; rows without it are dropped at load time.
// Every other field may be absent and must be treated as unknown, never as
// zero. Optional numerics use pointers, optional strings use "".
type Anomaly struct {
	ID       int64    // unique within its survey year, assigned at load
	Year     string   // survey year label, e.g. "2015"
	Position float64  // longitudinal position in feet
	Clock    *float64 // clock position, decimal hours on a 0-12 dial
	Side     string   // ID/OD indicator, uppercased
	Depth    *float64 // depth percentage
	Length   *float64 // inches
	Width    *float64 // inches
	Type     string   // free-form event description
}

// Set is an immutable collection of anomalies from one survey year.
type Set struct {
	Year      string
	Anomalies []Anomaly

	byID map[int64]int
}

// NewSet builds a Set and its ID index from loaded anomalies.
func NewSet(year string, anomalies []Anomaly) *Set {
	byID := make(map[int64]int, len(anomalies))
	for i, a := range anomalies {
		byID[a.ID] = i
	}
	return &Set{Year: year, Anomalies: anomalies, byID: byID}
}

// Len returns the number of anomalies in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Anomalies)
}

// ByID returns the anomaly with the given ID, or nil when absent.
func (s *Set) ByID(id int64) *Anomaly {
	if s == nil {
		return nil
	}
	idx, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &s.Anomalies[idx]
}

// ClockDelta computes the circular distance between two clock positions on a
// 12-hour dial. The second return is false when either reading is absent.
func ClockDelta(a, b *float64) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	d := *a - *b
	if d < 0 {
		d = -d
	}
	if d > 12-d {
		d = 12 - d
	}
	return d, true
}

var typeFolder = cases.Fold()

// NormalizeType canonicalizes a free-form type label for comparison:
// surrounding whitespace removed and case folded.
func NormalizeType(t string) string {
	return typeFolder.String(strings.TrimSpace(t))
}

// SameType reports whether two type labels describe the same defect category
// after normalization.
func SameType(a, b string) bool {
	return NormalizeType(a) == NormalizeType(b)
}
