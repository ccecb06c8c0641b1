package execution

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"harn/internal/domain"
	"harn/internal/fixtures"
)

func TestWorkerPool_Execute(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Flags.ExePath = writeScript(t, "cat")
	cfg.Processors = 2

	// Indices 0 and 2 pass, index 1 mismatches, index 3 has no fixtures
	for _, i := range []int{0, 2} {
		writeFixture(t, cfg.InputPath(i), fmt.Sprintf("line %d\n", i))
		writeFixture(t, cfg.ExpectedPath(i), fmt.Sprintf("line %d\n", i))
	}
	writeFixture(t, cfg.InputPath(1), "actual\n")
	writeFixture(t, cfg.ExpectedPath(1), "expected\n")

	pool := NewWorkerPool(cfg, NewRunner(cfg, fixtures.NewLocator(cfg)))
	results, duration, err := pool.Execute(context.Background(), []int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if duration <= 0 {
		t.Error("expected a positive duration")
	}

	var indices []int
	var statuses []domain.Status
	for _, r := range results {
		indices = append(indices, r.Index)
		statuses = append(statuses, r.Status)
	}

	// Results stay aligned with input order even when run in parallel
	if diff := cmp.Diff([]int{0, 1, 2, 3}, indices); diff != "" {
		t.Errorf("index order mismatch (-want +got):\n%s", diff)
	}

	want := []domain.Status{
		domain.StatusPassed,
		domain.StatusContentMismatch,
		domain.StatusPassed,
		domain.StatusFixtureMissing,
	}
	if diff := cmp.Diff(want, statuses); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkerPool_ExecuteEmpty(t *testing.T) {
	cfg := newTestConfig(t)
	pool := NewWorkerPool(cfg, NewRunner(cfg, fixtures.NewLocator(cfg)))

	results, duration, err := pool.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil || duration != 0 {
		t.Errorf("expected no results for empty input, got %v (%v)", results, duration)
	}
}

func TestWorkerPool_FailureDoesNotAbortRun(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Flags.ExePath = writeScript(t, "cat")
	cfg.Processors = 1

	// Index 0 has no fixtures; index 1 must still run and pass
	writeFixture(t, cfg.InputPath(1), "ok\n")
	writeFixture(t, cfg.ExpectedPath(1), "ok\n")

	pool := NewWorkerPool(cfg, NewRunner(cfg, fixtures.NewLocator(cfg)))
	results, _, err := pool.Execute(context.Background(), []int{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].Status != domain.StatusFixtureMissing {
		t.Errorf("expected fixture missing for index 0, got %s", results[0].Status)
	}
	if results[1].Status != domain.StatusPassed {
		t.Errorf("expected index 1 to run after a harness error, got %s", results[1].Status)
	}
}
