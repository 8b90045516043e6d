package report

import (
	"math"
	"sort"
)

// Risk score weights: latest depth dominates, growth refines.
const (
	riskDepthWeight  = 0.7
	riskGrowthWeight = 0.3
)

// Segment aggregates defect families falling into one fixed-width bin of
// pipeline, positioned by the later survey.
type Segment struct {
	StartFeet float64
	EndFeet   float64
	Families  int
	MaxDepth  *float64 // deepest latest-survey depth in the bin
	MaxGrowth *float64 // largest depth growth in the bin
	RiskScore float64
}

// SegmentRisk bins families by latest-survey position and scores each bin.
// Segments come back sorted by descending risk, ties by start position so
// the order is stable.
func SegmentRisk(families []Family, binFeet float64) []Segment {
	if binFeet <= 0 {
		return nil
	}
	bins := make(map[float64]*Segment)
	for _, f := range families {
		start := math.Floor(f.PosB/binFeet) * binFeet
		seg, ok := bins[start]
		if !ok {
			seg = &Segment{StartFeet: start, EndFeet: start + binFeet}
			bins[start] = seg
		}
		seg.Families++
		if f.DepthB != nil && (seg.MaxDepth == nil || *f.DepthB > *seg.MaxDepth) {
			depth := *f.DepthB
			seg.MaxDepth = &depth
		}
		if f.DepthGrowth != nil && (seg.MaxGrowth == nil || *f.DepthGrowth > *seg.MaxGrowth) {
			growth := *f.DepthGrowth
			seg.MaxGrowth = &growth
		}
	}

	out := make([]Segment, 0, len(bins))
	for _, seg := range bins {
		if seg.MaxDepth != nil {
			seg.RiskScore += riskDepthWeight * *seg.MaxDepth
		}
		if seg.MaxGrowth != nil {
			seg.RiskScore += riskGrowthWeight * *seg.MaxGrowth
		}
		out = append(out, *seg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RiskScore != out[j].RiskScore {
			return out[i].RiskScore > out[j].RiskScore
		}
		return out[i].StartFeet < out[j].StartFeet
	})
	return out
}
