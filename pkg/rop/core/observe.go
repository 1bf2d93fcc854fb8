package core

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/rail/pkg/rop"
)

const StepSpanName = "rop.step"

// StepInfo identifies a pipeline step in logs and spans.
type StepInfo struct {
	Index int
	Name  string
	Kind  string
}

func (s StepInfo) label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Kind
}

// Observe opens a span for the step and logs its start. The returned
// function must be called exactly once with the step outcome; it records
// the outcome and ends the span. The returned context carries the span and
// is the one the step should run with.
func Observe(ctx context.Context, step StepInfo) (context.Context, func(rop.Status)) {
	pipeline := GetPipelineName(ctx)
	logger := GetLogger(ctx)

	ctx, span := GetTracer(ctx).Start(ctx, StepSpanName, trace.WithAttributes(
		attribute.String("rop.pipeline", pipeline),
		attribute.Int("rop.step.index", step.Index),
		attribute.String("rop.step.name", step.Name),
		attribute.String("rop.step.kind", step.Kind),
	))
	logger.Debugf("%s: step #%d (%s) started", pipeline, step.Index, step.label())

	return ctx, func(status rop.Status) {
		defer span.End()

		if status.IsSuccess() {
			span.SetStatus(codes.Ok, "")
			logger.Debugf("%s: step #%d (%s) done", pipeline, step.Index, step.label())
			return
		}

		err := status.Err()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warnf("%s: step #%d (%s) failed: %s", pipeline, step.Index, step.label(), err.Error())
	}
}

// Skip logs that the remaining steps of a pipeline will not run.
func Skip(ctx context.Context, from, total int, cause error) {
	if from >= total {
		return
	}
	GetLogger(ctx).Debugf("%s: skipping steps #%d..#%d: %s",
		GetPipelineName(ctx), from, total-1, cause.Error())
}
