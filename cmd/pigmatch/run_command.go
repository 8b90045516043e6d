package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"pigmatch/internal/report"
	"pigmatch/internal/runstore"
	"pigmatch/internal/survey"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var windowOverride float64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full matching evaluation and write artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if windowOverride > 0 {
				cfg.Matching.Window = windowOverride
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			// One writer per output directory; a second concurrent run
			// would interleave artifacts.
			lock := flock.New(filepath.Join(cfg.Paths.OutDir, "pigmatch.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another run is writing to %s", cfg.Paths.OutDir)
			}
			defer func() { _ = lock.Unlock() }()

			a, err := survey.LoadFile(cfg.Surveys.TableA, cfg.Surveys.YearA)
			if err != nil {
				return err
			}
			b, err := survey.LoadFile(cfg.Surveys.TableB, cfg.Surveys.YearB)
			if err != nil {
				return err
			}

			eval, err := report.Evaluate(a, b, cfg, logger)
			if err != nil {
				return err
			}
			if err := report.WriteArtifacts(cfg.Paths.OutDir, eval); err != nil {
				return err
			}

			if cfg.Database.Enabled {
				store, err := runstore.Open(cfg)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.RecordEvaluation(cmd.Context(), eval); err != nil {
					return fmt.Errorf("persist run: %w", err)
				}
			}

			if jsonOut {
				return writeJSON(cmd, runSummaryPayload(eval, cfg.Paths.OutDir))
			}
			printEvaluation(cmd, eval, cfg.Paths.OutDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run summary as JSON")
	cmd.Flags().Float64Var(&windowOverride, "window", 0, "Override the candidate window in feet")

	return cmd
}

func runSummaryPayload(eval *report.Evaluation, outDir string) map[string]any {
	return map[string]any{
		"run_id":      eval.RunID,
		"year_a":      eval.YearA,
		"year_b":      eval.YearB,
		"out_dir":     outDir,
		"matched":     eval.KPIs.Matched,
		"unmatched_a": eval.KPIs.UnmatchedA,
		"unmatched_b": eval.KPIs.UnmatchedB,
		"families":    len(eval.Families),
		"segments":    len(eval.Segments),
		"kpis":        eval.KPIs,
	}
}

func printEvaluation(cmd *cobra.Command, eval *report.Evaluation, outDir string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s: %s vs %s\n\n", eval.RunID, eval.YearA, eval.YearB)

	fmt.Fprintln(out, renderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Matched", strconv.Itoa(eval.KPIs.Matched)},
			{"Unmatched " + eval.YearA, strconv.Itoa(eval.KPIs.UnmatchedA)},
			{"Unmatched " + eval.YearB, strconv.Itoa(eval.KPIs.UnmatchedB)},
			{"Coverage", formatScore(eval.KPIs.Coverage)},
			{"Plausibility", formatScore(eval.KPIs.Plausibility)},
			{"Stability", formatScore(eval.KPIs.Stability)},
		},
		[]columnAlignment{alignLeft, alignRight},
	))

	if len(eval.Segments) > 0 {
		fmt.Fprintln(out, "\nHighest-risk segments:")
		limit := len(eval.Segments)
		if limit > 5 {
			limit = 5
		}
		rows := make([][]string, 0, limit)
		for _, s := range eval.Segments[:limit] {
			rows = append(rows, []string{
				fmt.Sprintf("%.0f-%.0f", s.StartFeet, s.EndFeet),
				strconv.Itoa(s.Families),
				formatOptionalPct(s.MaxDepth),
				formatOptionalPct(s.MaxGrowth),
				fmt.Sprintf("%.2f", s.RiskScore),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Segment (ft)", "Families", "Max depth", "Max growth", "Risk"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
		))
	}

	fmt.Fprintf(out, "\nArtifacts written to %s\n", outDir)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatOptionalPct(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *v)
}
