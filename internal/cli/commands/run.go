package commands

import (
	"fmt"

	"harn/internal/config"
	"harn/internal/domain"
	"harn/internal/execution"
	"harn/internal/fixtures"
	"harn/internal/history"
	"harn/internal/storage"
	"harn/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	locator   *fixtures.Locator
	executor  *execution.WorkerPool
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.ErrorViewer
	history   *history.Store
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	locator *fixtures.Locator,
	executor *execution.WorkerPool,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.ErrorViewer,
	historyStore *history.Store,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		locator:   locator,
		executor:  executor,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
		history:   historyStore,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	indices, err := rc.testIndices()
	if err != nil {
		return err
	}

	if len(indices) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(len(indices))
	rc.executor.SetProgress(progressBar)

	results, duration, err := rc.executor.Execute(cmd.Context(), indices)
	if err != nil {
		return err
	}

	var failures []domain.TestFailure
	for _, result := range results {
		if !result.Passed() {
			failures = append(failures, failureFromResult(rc.config, result))
		}
	}

	if err := rc.storage.Save(results, failures, duration, rc.config.Processors); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	rc.formatter.PrintResults(results)

	output, err := rc.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load test results: %w", err)
	}
	rc.formatter.PrintMetaStats(output)

	if rc.config.Flags.History {
		if err := rc.history.Record(output.Meta); err != nil {
			color.Yellow("warning: failed to record run history: %v", err)
		}
	}

	if rc.config.Flags.OpenFailures && len(failures) > 0 {
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d test(s) did not pass", len(failures), len(results))
	}
	return nil
}

// testIndices returns the indices to run: 0..N-1 for a configured count,
// or the indices discovered in the fixture directory when the count is zero.
func (rc *RunCommand) testIndices() ([]int, error) {
	count := rc.config.GetTestCount()
	if count == 0 {
		return rc.locator.Scan()
	}

	indices := make([]int, count)
	for i := range indices {
		indices[i] = i
	}
	return indices, nil
}

// failureFromResult converts a non-passing result into its results-file entry
func failureFromResult(cfg *config.Config, result domain.TestResult) domain.TestFailure {
	failure := domain.TestFailure{
		Index:        result.Index,
		Category:     result.Status.String(),
		InputPath:    cfg.InputPath(result.Index),
		ExpectedPath: cfg.ExpectedPath(result.Index),
		Diff:         result.Diff,
	}
	if result.Status == domain.StatusContentMismatch {
		failure.ActualPath = result.ActualPath
	}
	if result.Err != nil {
		failure.Message = result.Err.Error()
	}
	return failure
}
