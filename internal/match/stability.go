package match

import (
	"fmt"
	"log/slog"

	"pigmatch/internal/logging"
	"pigmatch/internal/survey"
)

// ProbeWindowScale is the fixed factor applied to the spatial window for the
// stability probe run.
const ProbeWindowScale = 1.05

// Overlap computes the Jaccard overlap between two runs' accepted pair sets:
// |base n probe| / |base u probe|. Both empty yields 1.0, exactly one empty
// yields 0.0.
func Overlap(base, probe []Match) float64 {
	if len(base) == 0 && len(probe) == 0 {
		return 1.0
	}
	if len(base) == 0 || len(probe) == 0 {
		return 0.0
	}
	basePairs := make(map[edgeKey]struct{}, len(base))
	for _, m := range base {
		basePairs[edgeKey{m.AID, m.BID}] = struct{}{}
	}
	intersection := 0
	union := len(basePairs)
	seen := make(map[edgeKey]struct{}, len(probe))
	for _, m := range probe {
		k := edgeKey{m.AID, m.BID}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := basePairs[k]; ok {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}

// Stability re-runs the pipeline with the window scaled by ProbeWindowScale
// and everything else equal, then reports the Jaccard overlap between the
// base and probe matchings. The score is a deterministic reproducibility
// check between two fixed configurations, a proxy for confidence in the base
// result, not a statistical estimator.
func Stability(a, b *survey.Set, cfg Config, base *Result, logger *slog.Logger) (float64, *Result, error) {
	probeCfg := cfg
	probeCfg.Window *= ProbeWindowScale

	probe, err := Run(a, b, probeCfg, logger)
	if err != nil {
		return 0, nil, fmt.Errorf("stability probe: %w", err)
	}

	score := Overlap(base.Matches, probe.Matches)
	if logger != nil {
		logger.Debug("stability probe complete",
			logging.Float64("probe_window", probeCfg.Window),
			logging.Int("probe_matched", len(probe.Matches)),
			logging.Float64("stability", score),
		)
	}
	return score, probe, nil
}
