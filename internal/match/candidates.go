package match

import (
	"math"
	"sort"

	"pigmatch/internal/survey"
)

// generateCandidates emits every (A, B) pair whose positions fall within the
// configured window, scored with the weighted attribute cost. Both sides are
// scanned in position order so a two-pointer sweep over B replaces the full
// cross product; with a window much smaller than the survey length this is
// near linear.
func generateCandidates(a, b []survey.Anomaly, cfg Config) []Edge {
	aSorted := sortedByPosition(a)
	bSorted := sortedByPosition(b)

	var edges []Edge
	j := 0
	for _, ra := range aSorted {
		pos := ra.Position
		for j < len(bSorted) && bSorted[j].Position < pos-cfg.Window {
			j++
		}
		for k := j; k < len(bSorted) && bSorted[k].Position <= pos+cfg.Window; k++ {
			rb := bSorted[k]
			if cfg.RequireSameSide && ra.Side != "" && rb.Side != "" && ra.Side != rb.Side {
				continue
			}
			edges = append(edges, scoreEdge(ra, rb, cfg))
		}
	}
	return edges
}

// scoreEdge computes the deltas and weighted cost for one candidate pair.
// Attribute terms contribute only when the data exists on both sides; absent
// fields are unknown, never zero.
func scoreEdge(a, b survey.Anomaly, cfg Config) Edge {
	e := Edge{
		AID:      a.ID,
		BID:      b.ID,
		PosDelta: math.Abs(a.Position - b.Position),
	}
	cost := cfg.Weights.Distance * e.PosDelta
	if dc, ok := survey.ClockDelta(a.Clock, b.Clock); ok {
		delta := dc
		e.ClockDelta = &delta
		cost += cfg.Weights.Clock * dc
	}
	if a.Depth != nil && b.Depth != nil {
		cost += cfg.Weights.Depth * math.Abs(*a.Depth-*b.Depth)
	}
	if a.Length != nil && b.Length != nil {
		cost += cfg.Weights.Size * math.Abs(*a.Length-*b.Length)
	}
	if a.Width != nil && b.Width != nil {
		cost += cfg.Weights.Size * math.Abs(*a.Width-*b.Width)
	}
	if a.Side != "" && b.Side != "" && a.Side != b.Side {
		cost += cfg.Penalties.Side
	}
	if a.Type != "" && b.Type != "" && !survey.SameType(a.Type, b.Type) {
		cost += cfg.Penalties.Type
	}
	e.Cost = cost
	return e
}

// sortedByPosition copies the slice ordered by position, breaking ties by ID
// so candidate generation order is stable.
func sortedByPosition(anomalies []survey.Anomaly) []survey.Anomaly {
	out := make([]survey.Anomaly, len(anomalies))
	copy(out, anomalies)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out
}
