package cli

import (
	"time"

	"harn/internal/config"
)

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ExePath:      f.ExePath,
		FixtureDir:   f.FixtureDir,
		TestCount:    f.TestCount,
		Processors:   f.Processors,
		Timeout:      f.Timeout,
		OutputDir:    f.OutputDir,
		History:      f.History,
		OpenFailures: f.OpenFailures,
		HistoryLimit: f.HistoryLimit,
	}
}
