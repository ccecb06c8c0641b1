package fixtures

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"harn/internal/config"
	"harn/internal/domain"
)

var inputNamePattern = regexp.MustCompile(`^input(\d+)\.txt$`)

// Locator resolves and validates fixture files for test indices
type Locator struct {
	config *config.Config
}

// NewLocator creates a new Locator
func NewLocator(cfg *config.Config) *Locator {
	return &Locator{config: cfg}
}

// Case builds the TestCase for a test index
func (l *Locator) Case(i int) domain.TestCase {
	return domain.TestCase{
		Index:        i,
		InputPath:    l.config.InputPath(i),
		ExpectedPath: l.config.ExpectedPath(i),
		ActualPath:   l.config.ActualPath(i),
	}
}

// Validate checks that the input and expected-output fixtures exist and are
// regular files. A failure here is a harness error, not a test failure.
func (l *Locator) Validate(tc domain.TestCase) error {
	for _, path := range []string{tc.InputPath, tc.ExpectedPath} {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("fixture missing: %s", path)
		}
		if info.IsDir() {
			return fmt.Errorf("fixture is a directory: %s", path)
		}
	}
	return nil
}

// Scan returns the sorted test indices present in the fixture directory.
// Only indices with both an input and an expected-output file are returned.
func (l *Locator) Scan() ([]int, error) {
	dir := l.config.GetFixtureDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture directory does not exist: %s", dir)
	}

	var indices []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := inputNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		i, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if _, err := os.Stat(l.config.ExpectedPath(i)); err != nil {
			continue
		}
		indices = append(indices, i)
	}

	sort.Ints(indices)
	return indices, nil
}
