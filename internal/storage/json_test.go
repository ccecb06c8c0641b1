package storage

import (
	"path/filepath"
	"testing"
	"time"

	"harn/internal/config"
	"harn/internal/domain"
)

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = filepath.Join(t.TempDir(), "storage")
	st := NewJSONStorage(cfg)

	results := []domain.TestResult{
		{Index: 0, Status: domain.StatusPassed},
		{Index: 1, Status: domain.StatusContentMismatch, Diff: "1c1\n< 5\n---\n> 4\n"},
		{Index: 2, Status: domain.StatusFixtureMissing},
	}
	failures := []domain.TestFailure{
		{Index: 1, Category: "content_mismatch", Diff: "1c1\n< 5\n---\n> 4\n"},
		{Index: 2, Category: "fixture_missing", Message: "fixture missing: tests/input2.txt"},
	}

	if err := st.Save(results, failures, 1500*time.Millisecond, 2); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	meta := output.Meta
	if meta.TotalTests != 3 || meta.PassedTests != 1 || meta.FailedTests != 2 {
		t.Errorf("unexpected meta counts: %+v", meta)
	}
	if meta.HarnessErrors != 1 {
		t.Errorf("expected 1 harness error, got %d", meta.HarnessErrors)
	}
	if meta.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", meta.Workers)
	}
	if len(output.Details) != 2 {
		t.Fatalf("expected 2 failure details, got %d", len(output.Details))
	}
	if output.Details[0].Diff != failures[0].Diff {
		t.Errorf("diff not preserved: %q", output.Details[0].Diff)
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = filepath.Join(t.TempDir(), "storage")
	st := NewJSONStorage(cfg)

	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}

func TestJSONStorage_SaveOutputRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = filepath.Join(t.TempDir(), "storage")
	st := NewJSONStorage(cfg)

	output := &domain.RunOutput{
		Meta:    domain.RunMeta{TotalTests: 1, FailedTests: 1},
		Details: []domain.TestFailure{{Index: 0, Category: "content_mismatch", Resolved: true}},
	}
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !loaded.Details[0].Resolved {
		t.Error("expected resolved marker to survive a save/load cycle")
	}
}
