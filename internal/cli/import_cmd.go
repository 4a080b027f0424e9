package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pathway/internal/cli/formatter"
)

const rejectedShown = 10

func newImportCmd(app *App) *cobra.Command {
	var replace, verbose bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import cleaned course records from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(cmd.Context(), args[0], replace)
			if err != nil {
				return err
			}

			limit := rejectedShown
			if verbose {
				limit = 0
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportSummary(
				result.Read, result.Imported, result.Students, result.Rejected, limit))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Delete stored records before importing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every rejected record")

	return cmd
}
