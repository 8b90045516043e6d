package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pigmatch/internal/runstore"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List persisted evaluation runs",
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

			runs, err := store.ListRuns(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Format("2006-01-02 15:04:05"),
					run.YearA + " vs " + run.YearB,
					strconv.FormatFloat(run.Window, 'g', -1, 64),
					strconv.Itoa(run.Matched),
					strconv.Itoa(run.UnmatchedA),
					strconv.Itoa(run.UnmatchedB),
					formatScore(run.Stability),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Run", "Created (UTC)", "Surveys", "Window", "Matched", "Unm A", "Unm B", "Stability"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit runs as JSON")
	return cmd
}
