// Package pipeline implements the sequential step runner.
//
// The release pipeline is a fixed chain, not a general dependency graph, so
// the runner takes an explicit ordered step list and executes it in order,
// stopping at the first failure. Steps after a failed one are marked Skipped
// and never run.
package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

// StepFunc is the body of a single step.
type StepFunc func(ctx context.Context) error

// Step pairs a step name with its implementation.
type Step struct {
	Name domain.StepName
	Run  StepFunc
}

// Runner executes an ordered list of steps, fail-fast, no retry, no rollback.
type Runner struct {
	logger    ports.Logger
	telemetry ports.Telemetry

	mu       sync.RWMutex
	statuses map[domain.StepName]domain.StepStatus
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, telemetry ports.Telemetry) *Runner {
	return &Runner{
		logger:    logger,
		telemetry: telemetry,
		statuses:  make(map[domain.StepName]domain.StepStatus),
	}
}

// Run executes the steps strictly in order. Each step must succeed before the
// next starts; the first failure stops the run and the remaining steps are
// marked Skipped. There is no compensation for steps that already completed.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	r.reset(steps)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			r.skipFrom(steps, i)
			return zerr.Wrap(err, "pipeline interrupted")
		}

		r.setStatus(step.Name, domain.StatusRunning)
		r.logger.Info("step " + step.Name.String() + " started")

		ctx, vertex := r.telemetry.Record(ctx, step.Name.String())
		err := step.Run(ctx)
		vertex.Complete(err)

		if err != nil {
			r.setStatus(step.Name, domain.StatusFailed)
			r.skipFrom(steps, i+1)
			wrapped := zerr.With(zerr.Wrap(err, "step execution failed"), "step", step.Name.String())
			r.logger.Error(wrapped)
			return errors.Join(domain.ErrPipelineFailed, wrapped)
		}

		r.setStatus(step.Name, domain.StatusCompleted)
		r.logger.Info("step " + step.Name.String() + " completed")
	}

	return nil
}

// Statuses returns a snapshot of the step statuses from the last run.
func (r *Runner) Statuses() map[domain.StepName]domain.StepStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[domain.StepName]domain.StepStatus, len(r.statuses))
	for name, status := range r.statuses {
		out[name] = status
	}
	return out
}

func (r *Runner) reset(steps []Step) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statuses = make(map[domain.StepName]domain.StepStatus, len(steps))
	for _, step := range steps {
		r.statuses[step.Name] = domain.StatusPending
	}
}

func (r *Runner) skipFrom(steps []Step, idx int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, step := range steps[idx:] {
		r.statuses[step.Name] = domain.StatusSkipped
	}
}

func (r *Runner) setStatus(name domain.StepName, status domain.StepStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[name] = status
}
