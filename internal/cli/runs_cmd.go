package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pathway/internal/cli/formatter"
)

func newRunsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List previous runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Query.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunList(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show (0 for all)")

	return cmd
}
