package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/service"
)

// App holds the services and configuration used by CLI commands.
type App struct {
	Import service.ImportService
	Runs   service.RunService
	Query  service.QueryService
	Majors *catalog.Set
}

// NewRootCmd creates the top-level "pathway" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathway",
		Short:         "Course eligibility and recommendation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newRunCmd(app),
		newRunsCmd(app),
		newEligibleCmd(app),
		newRecommendCmd(app),
		newMajorsCmd(app),
	)

	return root
}
