package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/pathway/internal/domain"
)

// runSelectorFlags is the --run flag shared by commands that read a
// stored run.
func runSelectorFlags(runID *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("run-selector", pflag.ContinueOnError)
	fs.StringVarP(runID, "run", "r", "", "Run ID or unique prefix (default: latest run)")
	return fs
}

// resolveRun finds a stored run by exact ID or unique prefix. An empty
// input selects the latest run.
func resolveRun(ctx context.Context, app *App, input string) (*domain.BatchRun, error) {
	if input == "" {
		run, err := app.Query.ResolveRun(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("no runs yet, use 'pathway run' first: %w", err)
		}
		return run, nil
	}

	runs, err := app.Query.Runs(ctx, 0)
	if err != nil {
		return nil, err
	}

	for _, r := range runs {
		if r.ID == input {
			return r, nil
		}
	}

	var matches []*domain.BatchRun
	for _, r := range runs {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("run not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("run ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
