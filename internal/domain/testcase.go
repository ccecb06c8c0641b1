package domain

// TestCase identifies one fixture pair and its derived paths
type TestCase struct {
	Index        int    // Test index within the run
	InputPath    string // Fixture fed to the subprocess stdin
	ExpectedPath string // Expected stdout, pre-normalization
	ActualPath   string // Captured stdout, retained on failure
}
