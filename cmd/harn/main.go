package main

import (
	"fmt"
	"os"

	"harn/internal/cli"
	"harn/internal/cli/commands"
	"harn/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "harn",
		Short:   "Fixture-driven test harness",
		Long:    `A test harness for compiled programs. Runs an executable against numbered input fixtures, diffs its stdout against expected output files and reports pass/fail per test case.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
