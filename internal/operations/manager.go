package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "crashprep.pipeline"

// Manager executes a fixed sequence of pipeline steps.
type Manager struct {
	logger *slog.Logger
	tracer trace.Tracer
	steps  []Step
}

// NewManager creates a manager that will run the given steps in order.
func NewManager(logger *slog.Logger, steps ...Step) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger: logger,
		tracer: otel.Tracer(TracerName),
		steps:  steps,
	}
}

// Run executes every step against a fresh State. The first step error aborts
// the run and is returned wrapped with the step ID. The State is returned
// even on failure so callers can inspect per-step status.
func (m *Manager) Run(ctx context.Context) (*State, error) {
	runID := uuid.New().String()
	state := NewState(runID)

	ctx, span := m.tracer.Start(ctx, "pipeline.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("run.step_count", len(m.steps)),
		),
	)
	defer span.End()

	start := time.Now()
	m.logger.Info("Pipeline run started",
		slog.String("run_id", runID),
		slog.Int("steps", len(m.steps)))

	for _, step := range m.steps {
		if err := m.runStep(ctx, step, state); err != nil {
			span.SetStatus(codes.Error, fmt.Sprintf("step %s failed", step.ID()))
			m.logger.Error("Pipeline run failed",
				slog.String("run_id", runID),
				slog.String("step", step.ID()),
				slog.String("error", err.Error()),
				slog.Duration("elapsed", time.Since(start)))
			return state, fmt.Errorf("step %s: %w", step.ID(), err)
		}
	}

	span.SetStatus(codes.Ok, "pipeline completed")
	m.logger.Info("Pipeline run completed",
		slog.String("run_id", runID),
		slog.Duration("elapsed", time.Since(start)))
	return state, nil
}

func (m *Manager) runStep(ctx context.Context, step Step, state *State) error {
	ss := state.RegisterStep(step)

	ctx, span := m.tracer.Start(ctx, fmt.Sprintf("pipeline.step.%s", step.ID()),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", state.ID),
			attribute.String("step.id", step.ID()),
			attribute.String("step.name", step.Name()),
		),
	)
	defer span.End()

	ss.Start()
	m.logger.Info("Step started",
		slog.String("run_id", state.ID),
		slog.String("step", step.ID()))

	if err := step.Execute(ctx, state); err != nil {
		ss.Fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "step execution failed")
		return err
	}

	ss.Complete()
	span.SetAttributes(attribute.Float64("step.duration_seconds", ss.Duration().Seconds()))
	span.SetStatus(codes.Ok, "step completed")
	m.logger.Info("Step completed",
		slog.String("run_id", state.ID),
		slog.String("step", step.ID()),
		slog.Duration("duration", ss.Duration()))
	return nil
}
