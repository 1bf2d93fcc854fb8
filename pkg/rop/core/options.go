package core

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type OptionKey string

const (
	LoggerOptionKey   OptionKey = "logger_options"
	TracerOptionKey   OptionKey = "tracer_options"
	PipelineOptionKey OptionKey = "pipeline_options"
)

const DefaultPipelineName = "pipeline"

// Logger is the logging surface used by the engines. It is out of the box
// compatible with log.Log, *log.Logger and *log.Entry from apex/log.
type Logger interface {
	Debugf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

// DiscardLogger drops everything.
var DiscardLogger Logger = discard{}

type discard struct{}

func (discard) Debugf(format string, v ...interface{}) {}
func (discard) Warnf(format string, v ...interface{})  {}

type LoggerOptions struct {
	Logger Logger
}

type TracerOptions struct {
	Tracer trace.Tracer
}

type PipelineOptions struct {
	Name string
}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, TracerOptionKey, TracerOptions{Tracer: tracer})
}

func WithPipelineName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, PipelineOptionKey, PipelineOptions{Name: name})
}

func GetLogger(ctx context.Context) Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return DiscardLogger
}

func GetTracer(ctx context.Context) trace.Tracer {
	options, ok := ctx.Value(TracerOptionKey).(TracerOptions)
	if ok && options.Tracer != nil {
		return options.Tracer
	}
	return noop.NewTracerProvider().Tracer("")
}

func GetPipelineName(ctx context.Context) string {
	options, ok := ctx.Value(PipelineOptionKey).(PipelineOptions)
	if ok && options.Name != "" {
		return options.Name
	}
	return DefaultPipelineName
}
