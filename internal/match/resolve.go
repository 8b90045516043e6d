package match

import "math"

// resolveComponent reads the solver's assignment for one component and
// applies the hard limits. Limits are checked against the raw geometric and
// cost values, never the padded matrix: the solver optimizes freely and this
// is the single feasibility gate. A demoted pair leaves its A-id unmatched;
// the B-id it would have consumed is not reclaimed here, it simply stays
// unclaimed unless another accepted match takes it.
func resolveComponent(comp component, assignment []int, index map[edgeKey]Edge, cfg Config, res *Result, claimedB map[int64]struct{}) {
	nB := len(comp.bIDs)
	for ri, aID := range comp.aIDs {
		col := assignment[ri]
		if col < 0 || col >= nB {
			// Dummy column: the solver chose non-match outright.
			res.UnmatchedA = append(res.UnmatchedA, aID)
			continue
		}
		bID := comp.bIDs[col]

		posDelta := math.Inf(1)
		cost := cfg.SentinelCost
		var clockDelta *float64
		if e, ok := index[edgeKey{aID, bID}]; ok {
			posDelta = e.PosDelta
			clockDelta = e.ClockDelta
			cost = e.Cost
		}

		if posDelta > cfg.HardLimits.Position ||
			(clockDelta != nil && *clockDelta > cfg.HardLimits.Clock) ||
			cost > cfg.HardLimits.Cost {
			res.UnmatchedA = append(res.UnmatchedA, aID)
			res.LimitRejected++
			continue
		}

		res.Matches = append(res.Matches, Match{
			AID:        aID,
			BID:        bID,
			PosDelta:   posDelta,
			ClockDelta: clockDelta,
			Cost:       cost,
		})
		claimedB[bID] = struct{}{}
	}
}
