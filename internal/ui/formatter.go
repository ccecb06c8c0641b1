package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"harn/internal/config"
	"harn/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintResults prints one status line per test in index order, followed by
// the literal diff text for content mismatches. Harness errors get their
// own category line so they cannot be mistaken for mismatches.
func (f *Formatter) PrintResults(results []domain.TestResult) {
	for _, r := range results {
		switch r.Status {
		case domain.StatusPassed:
			color.Green("Test %d passed.", r.Index)
		case domain.StatusContentMismatch:
			color.Red("ERROR! Test %d not passed", r.Index)
			fmt.Print(r.Diff)
		case domain.StatusFixtureMissing:
			color.Yellow("ERROR! Test %d fixture missing: %v", r.Index, r.Err)
		case domain.StatusExecutionFailed:
			color.Yellow("ERROR! Test %d execution failed: %v", r.Index, r.Err)
		}

		if r.ExitCode != 0 && r.Status != domain.StatusExecutionFailed {
			color.Yellow("  warning: test %d exited with status %d", r.Index, r.ExitCode)
		}
	}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Tests")
	color.Green("%-27d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Tests")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Harness Errors")
	color.Yellow("%-27d │\n", meta.HarnessErrors)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d of %d test(s) did not pass", meta.FailedTests, meta.TotalTests)
		for _, failure := range output.Details {
			color.Red("  |_ Test %d (%s)", failure.Index, failure.Category)
		}
	}
}

// PrintFixtureList prints the fixture pairs for the given test cases.
// failedIndices is optional; listed indices are marked with [F] in red
// (from the last run's results file).
func (f *Formatter) PrintFixtureList(cases []domain.TestCase, failedIndices map[int]struct{}) {
	color.Green("Found %d test case(s):\n", len(cases))

	for i, tc := range cases {
		failMarker := ""
		if _, ok := failedIndices[tc.Index]; ok {
			failMarker = " " + color.RedString("[F]")
		}

		connector := "├──"
		if i == len(cases)-1 {
			connector = "└──"
		}

		if _, err := os.Stat(tc.InputPath); err != nil {
			color.Cyan("%s Test %d: %s %s%s", connector, tc.Index, tc.InputPath, color.YellowString("[missing]"), failMarker)
			continue
		}
		if _, err := os.Stat(tc.ExpectedPath); err != nil {
			color.Cyan("%s Test %d: %s %s%s", connector, tc.Index, tc.ExpectedPath, color.YellowString("[missing]"), failMarker)
			continue
		}
		color.Cyan("%s Test %d: %s ↔ %s%s", connector, tc.Index, tc.InputPath, tc.ExpectedPath, failMarker)
	}
}

// PrintHistory prints recorded run summaries, newest first
func (f *Formatter) PrintHistory(metas []domain.RunMeta) {
	color.Green("Last %d run(s):\n", len(metas))
	for _, meta := range metas {
		fmt.Printf("%s  total: %d  passed: %s  failed: %s  duration: %s\n",
			meta.Timestamp, meta.TotalTests,
			color.GreenString("%d", meta.PassedTests),
			color.RedString("%d", meta.FailedTests),
			meta.Duration,
		)
	}
}
