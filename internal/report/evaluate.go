package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pigmatch/internal/config"
	"pigmatch/internal/logging"
	"pigmatch/internal/match"
	"pigmatch/internal/survey"
)

// Evaluation is the complete output of one run: base and probe matchings,
// the derived reporting tables, and the KPI snapshot.
type Evaluation struct {
	RunID     string
	StartedAt time.Time
	YearA     string
	YearB     string

	Base      *match.Result
	Probe     *match.Result
	Stability float64

	Families []Family
	Segments []Segment
	KPIs     KPIs
}

// MatcherConfig maps the application configuration onto the matching core's
// parameter set.
func MatcherConfig(cfg *config.Config) match.Config {
	return match.Config{
		Window:          cfg.Matching.Window,
		RequireSameSide: cfg.Matching.RequireSameSide,
		Weights: match.Weights{
			Distance: cfg.Weights.Distance,
			Clock:    cfg.Weights.Clock,
			Depth:    cfg.Weights.Depth,
			Size:     cfg.Weights.Size,
		},
		Penalties: match.Penalties{
			Side: cfg.Penalties.Side,
			Type: cfg.Penalties.Type,
		},
		UnmatchedPenalty: cfg.Matching.UnmatchedPenalty,
		SentinelCost:     cfg.Matching.SentinelCost,
		HardLimits: match.HardLimits{
			Position: cfg.HardLimits.Position,
			Clock:    cfg.HardLimits.Clock,
			Cost:     cfg.HardLimits.Cost,
		},
	}
}

// Evaluate runs the full pipeline over two loaded surveys: base matching,
// defect families, segment risk, stability probe, KPIs. The evaluation is
// all-or-nothing; any failure aborts the run with no partial result.
func Evaluate(a, b *survey.Set, cfg *config.Config, logger *slog.Logger) (*Evaluation, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	eval := &Evaluation{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		YearA:     a.Year,
		YearB:     b.Year,
	}
	logger = logger.With(logging.String("run_id", eval.RunID))

	mcfg := MatcherConfig(cfg)
	base, err := match.Run(a, b, mcfg, logger)
	if err != nil {
		return nil, fmt.Errorf("base matching: %w", err)
	}
	eval.Base = base

	growthYears := cfg.Report.GrowthYears
	if growthYears <= 0 {
		if derived, ok := GrowthYears(a.Year, b.Year); ok {
			growthYears = derived
		} else {
			logger.Warn("survey gap not derivable, omitting growth rates",
				logging.String("year_a", a.Year),
				logging.String("year_b", b.Year),
			)
		}
	}
	eval.Families = BuildFamilies(base.Matches, a, b, growthYears)
	eval.Segments = SegmentRisk(eval.Families, cfg.Report.SegmentBinFeet)

	stability, probe, err := match.Stability(a, b, mcfg, base, logger)
	if err != nil {
		return nil, err
	}
	eval.Stability = stability
	eval.Probe = probe
	eval.KPIs = ComputeKPIs(base, a.Len(), b.Len(), stability)

	logger.Info("evaluation complete",
		logging.Int("families", len(eval.Families)),
		logging.Int("segments", len(eval.Segments)),
		logging.Float64("coverage", eval.KPIs.Coverage),
		logging.Float64("stability", eval.Stability),
	)
	return eval, nil
}
