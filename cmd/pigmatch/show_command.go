package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pigmatch/internal/runstore"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one persisted run and its matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := runstore.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			matches, err := store.Matches(cmd.Context(), run.ID)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, map[string]any{"run": run, "matches": matches})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s (%s vs %s), window %g ft, stability %s\n\n",
				run.ID, run.YearA, run.YearB, run.Window, formatScore(run.Stability))

			rows := make([][]string, 0, len(matches))
			for _, m := range matches {
				clock := "-"
				if m.ClockDelta != nil {
					clock = fmt.Sprintf("%.2f", *m.ClockDelta)
				}
				rows = append(rows, []string{
					strconv.FormatInt(m.AID, 10),
					strconv.FormatInt(m.BID, 10),
					fmt.Sprintf("%.2f", m.PosDelta),
					clock,
					fmt.Sprintf("%.2f", m.Cost),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID " + run.YearA, "ID " + run.YearB, "dx (ft)", "dclock (hr)", "Cost"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run as JSON")
	return cmd
}
