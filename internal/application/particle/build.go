package particle

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/log"
	"github.com/zjrosen/particlezoo/internal/physconst"
	"github.com/zjrosen/particlezoo/internal/tracing"
)

// BuildRegistry builds the default taxonomy and registry against the named
// constants release inside a registry.build span.
func BuildRegistry(ctx context.Context, tracer trace.Tracer, release string) (*particle.Registry, physconst.Set, error) {
	consts, err := physconst.ForRelease(release)
	if err != nil {
		return nil, physconst.Set{}, err
	}

	_, span := tracing.Start(ctx, tracer, tracing.SpanRegistryBuild,
		attribute.String(tracing.AttrRelease, string(consts.Release())))
	defer span.End()

	reg, err := particle.Build(particle.NewTaxonomy(), consts,
		particle.WithRuleObserver(func(rule string, assigned int) {
			span.AddEvent(tracing.EventRuleApplied, trace.WithAttributes(
				attribute.String(tracing.AttrRuleName, rule),
				attribute.Int(tracing.AttrRuleSelected, assigned),
			))
			log.Debug(log.CatRegistry, "rule applied", "rule", rule, "assigned", assigned)
		}),
	)
	if err != nil {
		var incomplete *particle.IncompleteError
		if errors.As(err, &incomplete) {
			span.AddEvent(tracing.EventIncomplete, trace.WithAttributes(
				attribute.String(tracing.AttrParticleSymbol, incomplete.Symbol),
			))
		}
		tracing.Fail(span, err)
		log.ErrorErr(log.CatRegistry, "registry build failed", err, "release", consts.Release())
		return nil, consts, fmt.Errorf("build registry for %s: %w", consts.Release(), err)
	}

	span.SetAttributes(attribute.Int(tracing.AttrRegistrySize, reg.Len()))
	log.Debug(log.CatRegistry, "registry built", "release", consts.Release(), "particles", reg.Len())

	return reg, consts, nil
}
