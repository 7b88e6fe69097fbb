// Package workflow provides a small step executor for multi-step transitions
// that mix hard persistence writes with best-effort side effects. Each step
// carries an explicit criticality so the failure policy is part of the
// workflow definition rather than scattered error handling.
package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Criticality determines how a step failure is handled
type Criticality string

const (
	// Hard failures abort the workflow and trigger compensation of completed steps
	Hard Criticality = "hard"
	// BestEffort failures are logged and the workflow continues
	BestEffort Criticality = "best-effort"
)

// Step is one unit of a workflow. Compensate, when set, undoes the step's
// effect; it is executed in reverse order when a later Hard step fails.
type Step struct {
	Name        string
	Criticality Criticality
	Run         func(ctx context.Context) error
	Compensate  func(ctx context.Context) error
}

// Executor runs workflow step lists sequentially
type Executor struct {
	logger *zap.Logger
}

// NewExecutor creates a workflow executor
func NewExecutor(logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{logger: logger}
}

// Execute runs the steps in order. Every step is awaited to completion or
// failure before the next one starts; there is no retry. On a Hard step
// failure the compensations of the steps completed so far run in reverse
// order and the step's error is returned. A BestEffort failure is logged and
// skipped; its compensation is never recorded.
func (e *Executor) Execute(ctx context.Context, name string, steps []Step) error {
	var completed []Step

	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			if step.Criticality == BestEffort {
				e.logger.Warn("best-effort step failed",
					zap.String("workflow", name),
					zap.String("step", step.Name),
					zap.Error(err),
				)
				continue
			}

			e.logger.Error("workflow step failed",
				zap.String("workflow", name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
			e.compensate(ctx, name, completed)
			return fmt.Errorf("%s: %w", step.Name, err)
		}

		if step.Criticality == Hard && step.Compensate != nil {
			completed = append(completed, step)
		}
	}

	return nil
}

// compensate undoes completed steps in reverse order. Compensation failures
// are logged but do not stop the remaining compensations.
func (e *Executor) compensate(ctx context.Context, name string, completed []Step) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if err := step.Compensate(ctx); err != nil {
			e.logger.Error("compensating action failed",
				zap.String("workflow", name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
		} else {
			e.logger.Info("compensating action applied",
				zap.String("workflow", name),
				zap.String("step", step.Name),
			)
		}
	}
}
