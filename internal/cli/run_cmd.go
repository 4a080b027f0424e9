package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pathway/internal/cli/formatter"
	"github.com/alexanderramin/pathway/internal/engine"
	"github.com/alexanderramin/pathway/internal/service"
)

// Report sections the run command can print.
const (
	sectionRequirements = "requirements"
	sectionProgress     = "progress"
	sectionTaken        = "taken"
	sectionRemaining    = "remaining"
	sectionEligible     = "eligible"
	sectionSkips        = "skips"
)

var allSections = []string{
	sectionRequirements,
	sectionProgress,
	sectionTaken,
	sectionRemaining,
	sectionEligible,
	sectionSkips,
}

func newRunCmd(app *App) *cobra.Command {
	var req service.RunRequest
	var show []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute eligibility and recommendations for stored students",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range show {
				if !isSection(s) {
					return fmt.Errorf("unknown section %q (want one of %s)", s, strings.Join(allSections, ", "))
				}
			}

			result, err := app.Runs.Run(cmd.Context(), req)
			if result == nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatRunSummary(result.Run))
			for _, s := range show {
				if section := renderSection(cmd, app, s, result); section != "" {
					fmt.Fprint(out, "\n"+section)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&req.Major, "major", "m", "", "Only process records stored under this major")
	cmd.Flags().StringVarP(&req.StudentID, "student", "s", "", "Only process one student")
	cmd.Flags().StringVar(&req.MajorOverride, "as-major", "", "Route every selected student to this major")
	cmd.Flags().StringSliceVar(&show, "show", []string{sectionEligible, sectionSkips},
		"Report sections: "+strings.Join(allSections, ", "))

	return cmd
}

func isSection(s string) bool {
	for _, known := range allSections {
		if s == known {
			return true
		}
	}
	return false
}

func renderSection(cmd *cobra.Command, app *App, section string, result *service.RunResult) string {
	batch := result.Batch
	switch section {
	case sectionRequirements:
		return formatter.FormatRequirements(batch.RequirementsTable())
	case sectionProgress:
		return formatter.FormatStudentProgress(batch.StudentProgress())
	case sectionTaken:
		return formatter.FormatAreaSummaries("Courses taken by area", batch.AreaTaken())
	case sectionRemaining:
		return formatter.FormatAreaSummaries("Courses remaining by area", batch.AreaRemaining())
	case sectionEligible:
		return formatter.FormatAreaSummaries("Eligible courses by area", batch.AreaEligible())
	case sectionSkips:
		if len(batch.Skips) == 0 {
			return ""
		}
		skips, err := app.Query.Skips(cmd.Context(), result.Run.ID)
		if err != nil {
			return skipsFromBatch(batch)
		}
		return formatter.FormatSkips(skips)
	}
	return ""
}

// skipsFromBatch lists skips without the store, for a run that could not be
// read back.
func skipsFromBatch(batch *engine.Batch) string {
	var b strings.Builder
	for _, s := range batch.Skips {
		fmt.Fprintf(&b, "  %v\n", s)
	}
	return b.String()
}
