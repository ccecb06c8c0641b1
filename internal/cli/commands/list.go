package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"harn/internal/config"
	"harn/internal/domain"
	"harn/internal/fixtures"
	"harn/internal/storage"
	"harn/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	locator   *fixtures.Locator
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	locator *fixtures.Locator,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		locator:   locator,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	count := lc.config.GetTestCount()
	var indices []int
	if count == 0 {
		scanned, err := lc.locator.Scan()
		if err != nil {
			return err
		}
		indices = scanned
	} else {
		for i := 0; i < count; i++ {
			indices = append(indices, i)
		}
	}

	if len(indices) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	cases := make([]domain.TestCase, 0, len(indices))
	for _, i := range indices {
		cases = append(cases, lc.locator.Case(i))
	}

	// Mark failures from the last run, if a results file exists
	failedIndices := make(map[int]struct{})
	if output, err := lc.storage.Load(); err == nil {
		for _, failure := range output.Details {
			failedIndices[failure.Index] = struct{}{}
		}
	}

	lc.formatter.PrintFixtureList(cases, failedIndices)
	return nil
}
