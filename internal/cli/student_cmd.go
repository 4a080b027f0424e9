package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pathway/internal/cli/formatter"
	"github.com/alexanderramin/pathway/internal/domain"
)

func newEligibleCmd(app *App) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "eligible STUDENT",
		Short: "Show a student's eligible courses for the latest semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			run, err := resolveRun(ctx, app, runID)
			if err != nil {
				return err
			}
			rows, err := app.Query.Eligible(ctx, run.ID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEligible(args[0], rows))
			return nil
		},
	}

	cmd.Flags().AddFlagSet(runSelectorFlags(&runID))

	return cmd
}

func newRecommendCmd(app *App) *cobra.Command {
	var runID, variant string

	cmd := &cobra.Command{
		Use:   "recommend STUDENT",
		Short: "Show a student's ranked course recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			only, err := parseVariant(variant)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			run, err := resolveRun(ctx, app, runID)
			if err != nil {
				return err
			}
			recs, err := app.Query.Recommendations(ctx, run.ID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(args[0], recs, only))
			return nil
		},
	}

	cmd.Flags().AddFlagSet(runSelectorFlags(&runID))
	cmd.Flags().StringVar(&variant, "variant", "", "Only show one ranking: course or final")

	return cmd
}

func parseVariant(s string) (domain.RankingVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "course", string(domain.VariantCourseScore):
		return domain.VariantCourseScore, nil
	case "final", string(domain.VariantFinalScore):
		return domain.VariantFinalScore, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want course or final)", s)
	}
}
