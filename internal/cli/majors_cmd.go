package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pathway/internal/cli/formatter"
	"github.com/alexanderramin/pathway/internal/engine"
)

func newMajorsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "majors",
		Short: "List configured majors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Majors == nil || app.Majors.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No majors configured.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMajors(app.Majors))
			return nil
		},
	}

	cmd.AddCommand(newMajorsShowCmd(app))

	return cmd
}

func newMajorsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show MAJOR",
		Short: "Show a major's requirements and bundles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Majors == nil {
				return fmt.Errorf("no majors configured")
			}
			cfg, err := app.Majors.Get(args[0])
			if err != nil {
				return err
			}

			pivot := engine.RequirementsPivot{Major: cfg.Major, Areas: cfg.Areas()}
			for _, a := range pivot.Areas {
				pivot.Required = append(pivot.Required, cfg.Required(a))
				pivot.Weights = append(pivot.Weights, cfg.Weight(a))
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatRequirements([]engine.RequirementsPivot{pivot}))
			if len(cfg.Bundles) > 0 {
				fmt.Fprintln(out, "\n"+formatter.Header("Bundles"))
				for _, b := range cfg.Bundles {
					fmt.Fprintf(out, "  %s → %s\n", strings.Join(b.Antecedents, " + "), formatter.Bold(b.Target))
				}
			}
			return nil
		},
	}
}
