package particle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/particlezoo/internal/cachemanager"
	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/log"
	"github.com/zjrosen/particlezoo/internal/tracing"
)

// Service errors
var (
	ErrUnknownParticle = errors.New("unknown particle")
	ErrInvalidClass    = errors.New("invalid particle class")
)

// Common names that are not registry names, keyed in normalized form.
var aliases = map[string]string{
	"antielectron":  "e+",
	"anti electron": "e+",
	"p":             "p+",
	"pbar":          "p-",
	"anti proton":   "p-",
	"nbar":          "antineutron",
	"anti neutron":  "antineutron",
	"negative muon": "mu-",
	"positive muon": "mu+",
	"tauon":         "tau-",
	"antitauon":     "tau+",
}

// Filter narrows List. Categories are ANDed; a zero Class matches any class.
type Filter struct {
	Categories []particle.Category
	Class      particle.Class
}

// Service answers queries against one registry.
type Service struct {
	provider particle.Provider
	tracer   trace.Tracer
	ttl      time.Duration
	resolver *cachemanager.ReadThroughCache[string, string, string]
}

// NewService wraps provider. A nil cache disables resolution caching and a nil
// tracer inherits whatever span is on the context.
func NewService(provider particle.Provider, cache cachemanager.CacheManager[string, string], tracer trace.Tracer, ttl time.Duration) *Service {
	s := &Service{
		provider: provider,
		tracer:   tracer,
		ttl:      ttl,
	}
	s.resolver = cachemanager.NewReadThroughCache(cache, s.resolveSymbol, cache == nil)
	return s
}

// Provider returns the wrapped registry.
func (s *Service) Provider() particle.Provider {
	return s.provider
}

// Resolve maps a symbol, name or alias to its record. Symbols match exactly or
// case-insensitively. Names and aliases ignore case and treat '-', '_' and
// runs of spaces alike, so "Electron-Neutrino" finds nu_e.
func (s *Service) Resolve(ctx context.Context, query string) (*particle.Particle, error) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanParticleResolve, attribute.String(tracing.AttrParticleQuery, query))
	defer span.End()

	trimmed := strings.TrimSpace(query)
	for _, symbol := range []string{trimmed, strings.ToLower(trimmed)} {
		if p, ok := s.provider.Lookup(symbol); ok {
			span.SetAttributes(attribute.String(tracing.AttrParticleSymbol, p.Symbol()))
			return p, nil
		}
	}

	key := normalize(query)
	hits := s.resolver.Stats().Hits
	symbol, err := s.resolver.GetWithRefresh(ctx, key, key, s.ttl)
	span.SetAttributes(attribute.Bool(tracing.AttrCacheHit, s.resolver.Stats().Hits > hits))
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String(tracing.AttrParticleSymbol, symbol))
	return s.provider.Get(symbol)
}

// resolveSymbol is the cache loader for Resolve.
func (s *Service) resolveSymbol(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty query", ErrUnknownParticle)
	}
	for _, p := range s.provider.List() {
		if normalize(p.Name()) == key {
			return p.Symbol(), nil
		}
	}
	if symbol, ok := aliases[key]; ok {
		if _, ok := s.provider.Lookup(symbol); ok {
			return symbol, nil
		}
	}

	log.Debug(log.CatRegistry, "unresolved particle query", "query", key)
	return "", fmt.Errorf("%w: %q", ErrUnknownParticle, key)
}

// ResolveAll resolves each query in turn and stops at the first failure.
func (s *Service) ResolveAll(ctx context.Context, queries []string) ([]*particle.Particle, error) {
	out := make([]*particle.Particle, 0, len(queries))
	for _, q := range queries {
		p, err := s.Resolve(ctx, q)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// List returns the records matching f in canonical order.
func (s *Service) List(ctx context.Context, f Filter) ([]*particle.Particle, error) {
	_, span := tracing.Start(ctx, s.tracer, tracing.SpanParticleList)
	defer span.End()

	if f.Class != "" && !f.Class.Valid() {
		err := fmt.Errorf("%w: %q", ErrInvalidClass, f.Class)
		tracing.Fail(span, err)
		return nil, err
	}

	sets := make([]particle.SymbolSet, 0, len(f.Categories))
	for _, c := range f.Categories {
		set, err := s.provider.Taxonomy().Category(c)
		if err != nil {
			tracing.Fail(span, err)
			return nil, err
		}
		span.SetAttributes(attribute.String(tracing.AttrCategory, string(c)))
		sets = append(sets, set)
	}

	out := make([]*particle.Particle, 0)
	for _, p := range s.provider.List() {
		if f.Class != "" && p.Class() != f.Class {
			continue
		}
		if !inAll(sets, p.Symbol()) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func inAll(sets []particle.SymbolSet, symbol string) bool {
	for _, set := range sets {
		if !set.Contains(symbol) {
			return false
		}
	}
	return true
}

// Members returns the taxonomy set for category.
func (s *Service) Members(_ context.Context, category particle.Category) (particle.SymbolSet, error) {
	return s.provider.Taxonomy().Category(category)
}

// CacheStats reports resolver cache activity.
func (s *Service) CacheStats() cachemanager.Stats {
	return s.resolver.Stats()
}

func normalize(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.NewReplacer("-", " ", "_", " ").Replace(q)
	return strings.Join(strings.Fields(q), " ")
}
