package report

import "pigmatch/internal/match"

// KPIs summarizes one evaluation run.
type KPIs struct {
	// Coverage is accepted matches over the smaller survey's size.
	Coverage float64 `json:"coverage"`
	// Plausibility is the share of solver-chosen pairs that survived the
	// hard limits.
	Plausibility float64 `json:"plausibility"`
	// Stability is the Jaccard overlap with the probe run.
	Stability  float64 `json:"stability"`
	Matched    int     `json:"matched"`
	UnmatchedA int     `json:"unmatched_a"`
	UnmatchedB int     `json:"unmatched_b"`
}

// ComputeKPIs derives the run KPIs from the base result and stability score.
func ComputeKPIs(base *match.Result, nA, nB int, stability float64) KPIs {
	k := KPIs{
		Stability:  stability,
		Matched:    len(base.Matches),
		UnmatchedA: len(base.UnmatchedA),
		UnmatchedB: len(base.UnmatchedB),
	}
	smaller := nA
	if nB < smaller {
		smaller = nB
	}
	if smaller > 0 {
		k.Coverage = float64(len(base.Matches)) / float64(smaller)
	}
	chosen := len(base.Matches) + base.LimitRejected
	if chosen > 0 {
		k.Plausibility = float64(len(base.Matches)) / float64(chosen)
	} else {
		k.Plausibility = 1.0
	}
	return k
}
