package report

import (
	"strconv"

	"pigmatch/internal/match"
	"pigmatch/internal/survey"
)

// Family joins one accepted match with both years' anomaly attributes so
// growth can be read per defect.
type Family struct {
	ID  int64
	AID int64
	BID int64

	PosA     float64
	PosB     float64
	PosDelta float64

	ClockA *float64
	ClockB *float64

	DepthA *float64
	DepthB *float64
	// DepthGrowth is DepthB - DepthA, present only when both depths are.
	DepthGrowth *float64
	// GrowthRate is DepthGrowth per year over the survey gap, nil when
	// the gap is unknown or zero.
	GrowthRate *float64

	LengthA *float64
	LengthB *float64
	WidthA  *float64
	WidthB  *float64

	SideA string
	SideB string
	TypeA string
	TypeB string

	Cost float64
}

// BuildFamilies joins matches against both anomaly sets. growthYears is the
// time between surveys; pass 0 when unknown to omit growth rates.
func BuildFamilies(matches []match.Match, a, b *survey.Set, growthYears float64) []Family {
	families := make([]Family, 0, len(matches))
	for i, m := range matches {
		ra := a.ByID(m.AID)
		rb := b.ByID(m.BID)
		if ra == nil || rb == nil {
			// A match always references loaded anomalies; skip rather
			// than fabricate a family if a caller hands mismatched sets.
			continue
		}
		f := Family{
			ID:       int64(i),
			AID:      m.AID,
			BID:      m.BID,
			PosA:     ra.Position,
			PosB:     rb.Position,
			PosDelta: m.PosDelta,
			ClockA:   ra.Clock,
			ClockB:   rb.Clock,
			DepthA:   ra.Depth,
			DepthB:   rb.Depth,
			LengthA:  ra.Length,
			LengthB:  rb.Length,
			WidthA:   ra.Width,
			WidthB:   rb.Width,
			SideA:    ra.Side,
			SideB:    rb.Side,
			TypeA:    ra.Type,
			TypeB:    rb.Type,
			Cost:     m.Cost,
		}
		if ra.Depth != nil && rb.Depth != nil {
			growth := *rb.Depth - *ra.Depth
			f.DepthGrowth = &growth
			if growthYears > 0 {
				rate := growth / growthYears
				f.GrowthRate = &rate
			}
		}
		families = append(families, f)
	}
	return families
}

// GrowthYears derives the survey gap from two year labels. The second return
// is false when either label is not an integer year or the gap is not
// positive.
func GrowthYears(yearA, yearB string) (float64, bool) {
	a, errA := strconv.Atoi(yearA)
	b, errB := strconv.Atoi(yearB)
	if errA != nil || errB != nil || b <= a {
		return 0, false
	}
	return float64(b - a), true
}
