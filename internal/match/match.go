package match

import (
	"fmt"
	"log/slog"
	"sort"

	"pigmatch/internal/logging"
	"pigmatch/internal/survey"
)

// Edge is a candidate pairing between one anomaly from each survey.
type Edge struct {
	AID        int64
	BID        int64
	PosDelta   float64  // absolute position difference, feet
	ClockDelta *float64 // circular dial distance, nil when either clock is absent
	Cost       float64
}

// Match is an accepted pairing that passed the hard limits.
type Match struct {
	AID        int64
	BID        int64
	PosDelta   float64
	ClockDelta *float64
	Cost       float64
}

// Result is the complete output of one matching run.
type Result struct {
	Matches    []Match
	UnmatchedA []int64
	UnmatchedB []int64
	// LimitRejected counts solver-chosen pairs the resolver demoted for
	// exceeding a hard limit. Those A-ids also appear in UnmatchedA.
	LimitRejected int
	Config        Config
}

// Run executes the full matching pipeline over two anomaly sets.
func Run(a, b *survey.Set, cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("matching config: %w", err)
	}

	edges := generateCandidates(a.Anomalies, b.Anomalies, cfg)
	comps := partition(a.Anomalies, b.Anomalies, edges)

	logger.Debug("candidate graph built",
		logging.Int("anomalies_a", a.Len()),
		logging.Int("anomalies_b", b.Len()),
		logging.Int("edges", len(edges)),
		logging.Int("components", len(comps)),
	)

	res := &Result{Config: cfg}
	claimedB := make(map[int64]struct{})
	for _, comp := range comps {
		if len(comp.aIDs) == 0 && len(comp.bIDs) == 0 {
			continue
		}
		cost, edgeIndex := buildMatrix(comp, cfg)
		assignment := solve(cost)
		resolveComponent(comp, assignment, edgeIndex, cfg, res, claimedB)
	}

	// B-side unmatched is a plain set difference over the whole survey,
	// not per-component bookkeeping: a B anomaly is unmatched exactly
	// when no accepted match claims it.
	for _, anom := range b.Anomalies {
		if _, ok := claimedB[anom.ID]; !ok {
			res.UnmatchedB = append(res.UnmatchedB, anom.ID)
		}
	}

	sort.Slice(res.Matches, func(i, j int) bool { return res.Matches[i].AID < res.Matches[j].AID })
	sort.Slice(res.UnmatchedA, func(i, j int) bool { return res.UnmatchedA[i] < res.UnmatchedA[j] })
	sort.Slice(res.UnmatchedB, func(i, j int) bool { return res.UnmatchedB[i] < res.UnmatchedB[j] })

	logger.Info("matching complete",
		logging.Int("matched", len(res.Matches)),
		logging.Int("unmatched_a", len(res.UnmatchedA)),
		logging.Int("unmatched_b", len(res.UnmatchedB)),
	)
	return res, nil
}
