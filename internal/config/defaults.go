package config

const (
	// DefaultFixtureDir is the default fixture directory
	DefaultFixtureDir = "tests"
	// DefaultTestCount is the default number of test cases
	DefaultTestCount = 8
	// DefaultOutputDir is where actual-output files are written
	DefaultOutputDir = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultProcessors is the default number of workers
	DefaultProcessors = 1
)
