package execution

import (
	"context"
	"time"

	"ctr/internal/domain"
)

// Invoker runs the compile executable against one fixture
type Invoker interface {
	Run(ctx context.Context, fixture string) (domain.Output, error)
}

// CaseFunc turns a case into its result
type CaseFunc func(ctx context.Context, c domain.Case) domain.Result

// Executor executes cases and hands their results, in case order, to emit
type Executor interface {
	Execute(ctx context.Context, cases []domain.Case, run CaseFunc, emit func(domain.Result)) time.Duration
}

// Progress receives running pass/fail counts
type Progress interface {
	Update(passed, failed int)
	Finish()
}
