package commands

import (
	"harn/internal/cli"
	"harn/internal/config"
	"harn/internal/execution"
	"harn/internal/fixtures"
	"harn/internal/history"
	"harn/internal/storage"
	"harn/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	locator := fixtures.NewLocator(cfg)
	runner := execution.NewRunner(cfg, locator)
	executor := execution.NewWorkerPool(cfg, runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)
	historyStore := history.NewStore(cfg)

	return &Commands{
		Run:      NewRunCommand(cfg, locator, executor, jsonStorage, formatter, errorViewer, historyStore),
		List:     NewListCommand(cfg, locator, formatter, jsonStorage),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
		History:  NewHistoryCommand(cfg, historyStore, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the executable against all fixture pairs",
		Long:  "Execute the program under test once per fixture pair, diff its stdout against the expected output and report per-test pass/fail",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Processors > 0 {
				cfg.Processors = flags.Processors
			}
			cfg.Timeout = flags.Timeout
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.ExePath, "exe", "e", "", "Path to the executable under test (required)")
	runCmd.Flags().StringVarP(&flags.FixtureDir, "fixtures", "d", config.DefaultFixtureDir, "Directory holding input<i>.txt / output<i>.txt fixture pairs")
	runCmd.Flags().IntVarP(&flags.TestCount, "count", "n", config.DefaultTestCount, "Number of test cases to run (0 scans the fixture directory)")
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", config.DefaultProcessors, "Number of workers to use")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-test timeout (0 disables)")
	runCmd.Flags().StringVar(&flags.OutputDir, "out-dir", config.DefaultOutputDir, "Directory for res<i>.txt actual-output files")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run summary in the history database")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	runCmd.MarkFlagRequired("exe")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List fixture pairs",
		Long:  "Show the fixture pairs the harness would run, marking missing files and failures from the last run",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.FixtureDir, "fixtures", "d", config.DefaultFixtureDir, "Directory holding input<i>.txt / output<i>.txt fixture pairs")
	listCmd.Flags().IntVarP(&flags.TestCount, "count", "n", config.DefaultTestCount, "Number of test cases to list (0 scans the fixture directory)")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded run summaries",
		Long:  "Display run summaries recorded in the history database, newest first",
		RunE:  c.History.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&flags.HistoryLimit, "limit", "l", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
