package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys.
const (
	AttrRelease        = "constants.release"
	AttrParticleSymbol = "particle.symbol"
	AttrParticleQuery  = "particle.query"
	AttrCategory       = "particle.category"
	AttrRuleName       = "registry.rule"
	AttrRuleSelected   = "registry.rule.selected"
	AttrRegistrySize   = "registry.size"
	AttrCacheHit       = "cache.hit"
	AttrErrorMessage   = "error.message"
)

// Span names.
const (
	SpanRegistryBuild   = "registry.build"
	SpanParticleResolve = "particle.resolve"
	SpanParticleList    = "particle.list"
	SpanSnapshotSave    = "snapshot.save"
)

// Event names.
const (
	EventRuleApplied = "rule.applied"
	EventIncomplete  = "registry.incomplete"
)

// Start opens a span on tracer, falling back to the span's own provider when
// tracer is nil.
func Start(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = trace.SpanFromContext(ctx).TracerProvider().Tracer(defaultServiceName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Fail records err on span and marks it failed. A nil err is a no-op.
func Fail(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
}
