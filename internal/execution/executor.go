package execution

import (
	"context"
	"time"

	"harn/internal/domain"
)

// Executor executes test cases and returns results
type Executor interface {
	Execute(ctx context.Context, indices []int) ([]domain.TestResult, time.Duration, error)
}
