package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"harn/internal/config"
	"harn/internal/domain"
	"harn/internal/fixtures"
	"harn/internal/textdiff"
)

// Runner executes a single test case against the configured executable
type Runner struct {
	config  *config.Config
	locator *fixtures.Locator
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, locator *fixtures.Locator) *Runner {
	return &Runner{config: cfg, locator: locator}
}

// Run drives one test case: feed the input fixture to the subprocess stdin,
// capture its full stdout to the actual-output file, normalize both sides and
// diff. The actual-output file is removed on pass and retained on failure.
func (r *Runner) Run(ctx context.Context, index int) domain.TestResult {
	tc := r.locator.Case(index)
	result := domain.TestResult{Index: index, ActualPath: tc.ActualPath}

	if err := r.locator.Validate(tc); err != nil {
		result.Status = domain.StatusFixtureMissing
		result.Err = err
		return result
	}

	input, err := os.Open(tc.InputPath)
	if err != nil {
		result.Status = domain.StatusFixtureMissing
		result.Err = fmt.Errorf("open input fixture: %w", err)
		return result
	}
	defer input.Close()

	runCtx := ctx
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, r.config.GetExePath())
	cmd.Stdin = input

	// Captured in full, not streamed; exit code and stderr do not decide
	// the comparison outcome.
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	start := time.Now()
	runErr := cmd.Run()
	result.Duration = time.Since(start)

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		result.Status = domain.StatusExecutionFailed
		result.Err = fmt.Errorf("timed out after %s", r.config.Timeout)
		_ = os.WriteFile(tc.ActualPath, stdout.Bytes(), 0644)
		return result
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// Crash or non-zero exit: surfaced as a warning, the
			// comparison still decides pass/fail.
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.Status = domain.StatusExecutionFailed
			result.Err = fmt.Errorf("launch %s: %w", r.config.GetExePath(), runErr)
			return result
		}
	}

	if err := os.WriteFile(tc.ActualPath, stdout.Bytes(), 0644); err != nil {
		result.Status = domain.StatusExecutionFailed
		result.Err = fmt.Errorf("write actual output: %w", err)
		return result
	}

	expected, err := os.ReadFile(tc.ExpectedPath)
	if err != nil {
		result.Status = domain.StatusFixtureMissing
		result.Err = fmt.Errorf("read expected fixture: %w", err)
		return result
	}

	diff := textdiff.Diff(textdiff.Normalize(string(expected)), textdiff.Normalize(stdout.String()))
	if diff == "" {
		result.Status = domain.StatusPassed
		if err := os.Remove(tc.ActualPath); err != nil {
			result.Err = fmt.Errorf("remove actual output: %w", err)
		}
		return result
	}

	result.Status = domain.StatusContentMismatch
	result.Diff = diff
	return result
}
