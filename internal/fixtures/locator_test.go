package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"harn/internal/config"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Flags.FixtureDir = t.TempDir()
	cfg.Flags.OutputDir = t.TempDir()
	return cfg
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
}

func TestLocator_Case(t *testing.T) {
	cfg := newTestConfig(t)
	locator := NewLocator(cfg)

	tc := locator.Case(7)

	if tc.Index != 7 {
		t.Errorf("expected index 7, got %d", tc.Index)
	}
	if tc.InputPath != filepath.Join(cfg.GetFixtureDir(), "input7.txt") {
		t.Errorf("unexpected input path: %s", tc.InputPath)
	}
	if tc.ExpectedPath != filepath.Join(cfg.GetFixtureDir(), "output7.txt") {
		t.Errorf("unexpected expected path: %s", tc.ExpectedPath)
	}
	if tc.ActualPath != filepath.Join(cfg.GetOutputDir(), "res7.txt") {
		t.Errorf("unexpected actual path: %s", tc.ActualPath)
	}
}

func TestLocator_Validate(t *testing.T) {
	cfg := newTestConfig(t)
	locator := NewLocator(cfg)

	writeFixture(t, cfg.InputPath(0), "1 2\n")
	writeFixture(t, cfg.ExpectedPath(0), "3\n")

	t.Run("complete pair", func(t *testing.T) {
		if err := locator.Validate(locator.Case(0)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		writeFixture(t, cfg.ExpectedPath(1), "3\n")
		if err := locator.Validate(locator.Case(1)); err == nil {
			t.Error("expected error for missing input fixture")
		}
	})

	t.Run("missing expected output", func(t *testing.T) {
		writeFixture(t, cfg.InputPath(2), "1 2\n")
		if err := locator.Validate(locator.Case(2)); err == nil {
			t.Error("expected error for missing expected fixture")
		}
	})
}

func TestLocator_Scan(t *testing.T) {
	cfg := newTestConfig(t)
	locator := NewLocator(cfg)

	// Complete pairs for 0, 2 and 10; index 1 lacks its expected output
	for _, i := range []int{0, 2, 10} {
		writeFixture(t, cfg.InputPath(i), "in\n")
		writeFixture(t, cfg.ExpectedPath(i), "out\n")
	}
	writeFixture(t, cfg.InputPath(1), "in\n")
	writeFixture(t, filepath.Join(cfg.GetFixtureDir(), "notes.md"), "not a fixture\n")

	indices, err := locator.Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]int{0, 2, 10}, indices); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestLocator_ScanMissingDir(t *testing.T) {
	cfg := config.New()
	cfg.Flags.FixtureDir = filepath.Join(t.TempDir(), "does-not-exist")
	locator := NewLocator(cfg)

	if _, err := locator.Scan(); err == nil {
		t.Error("expected error for missing fixture directory")
	}
}
