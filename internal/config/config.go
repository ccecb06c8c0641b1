package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config holds all configuration for the harness
type Config struct {
	// Executable under test
	ExePath string

	// Fixture settings
	FixtureDir string
	TestCount  int

	// Output settings
	OutputDir      string
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Processors int
	Timeout    time.Duration

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ExePath      string
	FixtureDir   string
	TestCount    int
	Processors   int
	Timeout      time.Duration
	OutputDir    string
	History      bool
	OpenFailures bool
	HistoryLimit int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		FixtureDir:     DefaultFixtureDir,
		TestCount:      DefaultTestCount,
		OutputDir:      DefaultOutputDir,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Processors:     DefaultProcessors,
		Flags:          Flags{TestCount: DefaultTestCount, Processors: DefaultProcessors},
	}
}

// GetExePath returns the executable path, using flag if provided
func (c *Config) GetExePath() string {
	if c.Flags.ExePath != "" {
		return c.Flags.ExePath
	}
	return c.ExePath
}

// GetFixtureDir returns the fixture directory, using flag if provided
func (c *Config) GetFixtureDir() string {
	if c.Flags.FixtureDir != "" {
		return c.Flags.FixtureDir
	}
	return c.FixtureDir
}

// GetTestCount returns the number of test cases to run.
// Zero means the fixture directory should be scanned for indices.
func (c *Config) GetTestCount() int {
	if c.Flags.TestCount >= 0 {
		return c.Flags.TestCount
	}
	return c.TestCount
}

// GetOutputDir returns the directory for actual-output files
func (c *Config) GetOutputDir() string {
	if c.Flags.OutputDir != "" {
		return c.Flags.OutputDir
	}
	return c.OutputDir
}

// InputPath returns the stdin fixture path for a test index
func (c *Config) InputPath(i int) string {
	return filepath.Join(c.GetFixtureDir(), fmt.Sprintf("input%d.txt", i))
}

// ExpectedPath returns the expected-output fixture path for a test index
func (c *Config) ExpectedPath(i int) string {
	return filepath.Join(c.GetFixtureDir(), fmt.Sprintf("output%d.txt", i))
}

// ActualPath returns the captured-output path for a test index
func (c *Config) ActualPath(i int) string {
	return filepath.Join(c.GetOutputDir(), fmt.Sprintf("res%d.txt", i))
}

// GetOutputPath returns the full path to the results JSON file.
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
