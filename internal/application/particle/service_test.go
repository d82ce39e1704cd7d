package particle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/particlezoo/internal/cachemanager"
	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/testutil"
	"github.com/zjrosen/particlezoo/internal/tracing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	reg := testutil.Registry(t)
	cache := cachemanager.NewInMemoryCacheManager[string, string]("resolver", time.Minute, time.Minute)
	return NewService(reg, cache, nil, time.Minute)
}

func symbols(ps []*particle.Particle) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Symbol()
	}
	return out
}

func TestService_Resolve(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := map[string]string{
		"e-":                "e-",
		" e+ ":              "e+",
		"P+":                "p+",
		"NU_TAU":            "nu_tau",
		"electron":          "e-",
		"Positron":          "e+",
		"electron-neutrino": "nu_e",
		"muon_antineutrino": "anti_nu_mu",
		"tau   neutrino":    "nu_tau",
		"antielectron":      "e+",
		"p":                 "p+",
		"pbar":              "p-",
		"Anti-Neutron":      "antineutron",
		"neutron":           "n",
		"tau":               "tau-",
	}
	for query, want := range cases {
		t.Run(query, func(t *testing.T) {
			p, err := svc.Resolve(ctx, query)
			require.NoError(t, err)
			require.Equal(t, want, p.Symbol())
		})
	}
}

func TestService_Resolve_Unknown(t *testing.T) {
	svc := newTestService(t)

	for _, query := range []string{"", "   ", "photon", "higgs", "e"} {
		_, err := svc.Resolve(context.Background(), query)
		require.ErrorIs(t, err, ErrUnknownParticle, "query %q", query)
	}
}

func TestService_Resolve_CachesNamesNotFailures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Resolve(ctx, "muon")
		require.NoError(t, err)
	}
	_, err := svc.Resolve(ctx, "gluon")
	require.Error(t, err)
	_, err = svc.Resolve(ctx, "gluon")
	require.Error(t, err)

	// Exact symbols bypass the resolver entirely.
	_, err = svc.Resolve(ctx, "mu-")
	require.NoError(t, err)

	require.Equal(t, cachemanager.Stats{Hits: 2, Misses: 3, Errors: 2}, svc.CacheStats())
}

func TestService_Resolve_WithoutCache(t *testing.T) {
	reg := testutil.Registry(t)
	svc := NewService(reg, nil, nil, time.Minute)

	p, err := svc.Resolve(context.Background(), "antiproton")
	require.NoError(t, err)
	require.Equal(t, "p-", p.Symbol())
	require.Equal(t, cachemanager.Stats{}, svc.CacheStats())
}

func TestService_Resolve_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	reg := testutil.Registry(t)
	svc := NewService(reg, nil, tp.Tracer("test"), time.Minute)

	_, err := svc.Resolve(context.Background(), "positron")
	require.NoError(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, tracing.SpanParticleResolve, ended[0].Name())

	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	require.Equal(t, "positron", attrs[tracing.AttrParticleQuery])
	require.Equal(t, "e+", attrs[tracing.AttrParticleSymbol])
}

func TestService_Resolve_SpanMarksCacheHit(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	reg := testutil.Registry(t)
	cache := cachemanager.NewInMemoryCacheManager[string, string]("resolver", time.Minute, time.Minute)
	svc := NewService(reg, cache, tp.Tracer("test"), time.Minute)

	for i := 0; i < 2; i++ {
		_, err := svc.Resolve(context.Background(), "tauon")
		require.NoError(t, err)
	}

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	hit := func(span sdktrace.ReadOnlySpan) bool {
		for _, kv := range span.Attributes() {
			if string(kv.Key) == tracing.AttrCacheHit {
				return kv.Value.AsBool()
			}
		}
		t.Fatalf("span %s has no %s attribute", span.Name(), tracing.AttrCacheHit)
		return false
	}
	require.False(t, hit(ended[0]))
	require.True(t, hit(ended[1]))
}

func TestService_ResolveAll(t *testing.T) {
	svc := newTestService(t)

	ps, err := svc.ResolveAll(context.Background(), []string{"proton", "n", "mu+"})
	require.NoError(t, err)
	require.Equal(t, []string{"p+", "n", "mu+"}, symbols(ps))

	_, err = svc.ResolveAll(context.Background(), []string{"proton", "quark"})
	require.ErrorIs(t, err, ErrUnknownParticle)
}

func TestService_List(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 16)
	require.Equal(t, "e-", all[0].Symbol())

	neutralAnti, err := svc.List(ctx, Filter{Categories: []particle.Category{particle.CategoryAntineutrino, particle.CategoryAntimatter}})
	require.NoError(t, err)
	require.Equal(t, []string{"anti_nu_e", "anti_nu_mu", "anti_nu_tau"}, symbols(neutralAnti))

	baryons, err := svc.List(ctx, Filter{Class: particle.ClassBaryon})
	require.NoError(t, err)
	require.Equal(t, []string{"p+", "n"}, symbols(baryons))

	none, err := svc.List(ctx, Filter{Categories: []particle.Category{particle.CategoryBoson}})
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	matterLeptons, err := svc.List(ctx, Filter{Categories: []particle.Category{particle.CategoryLepton}, Class: particle.ClassAntilepton})
	require.NoError(t, err)
	require.Empty(t, matterLeptons)
}

func TestService_List_InvalidFilter(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.List(context.Background(), Filter{Class: "meson"})
	require.ErrorIs(t, err, ErrInvalidClass)

	_, err = svc.List(context.Background(), Filter{Categories: []particle.Category{"quark"}})
	require.ErrorIs(t, err, particle.ErrUnknownCategory)
}

func TestService_Members(t *testing.T) {
	svc := newTestService(t)

	set, err := svc.Members(context.Background(), particle.CategoryBaryon)
	require.NoError(t, err)
	require.Equal(t, []string{"n", "p+"}, set.Symbols())

	bosons, err := svc.Members(context.Background(), particle.CategoryBoson)
	require.NoError(t, err)
	require.True(t, bosons.IsEmpty())
}

// mockProvider is a testify mock of particle.Provider.
type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Get(symbol string) (*particle.Particle, error) {
	args := m.Called(symbol)
	p, _ := args.Get(0).(*particle.Particle)
	return p, args.Error(1)
}

func (m *mockProvider) Lookup(symbol string) (*particle.Particle, bool) {
	args := m.Called(symbol)
	p, _ := args.Get(0).(*particle.Particle)
	return p, args.Bool(1)
}

func (m *mockProvider) List() []*particle.Particle {
	return m.Called().Get(0).([]*particle.Particle)
}

func (m *mockProvider) InCategory(c particle.Category) ([]*particle.Particle, error) {
	args := m.Called(c)
	ps, _ := args.Get(0).([]*particle.Particle)
	return ps, args.Error(1)
}

func (m *mockProvider) Taxonomy() *particle.Taxonomy {
	return m.Called().Get(0).(*particle.Taxonomy)
}

func TestService_Resolve_AliasMissingFromProvider(t *testing.T) {
	provider := &mockProvider{}
	provider.Test(t)
	provider.On("Lookup", mock.Anything).Return(nil, false)
	provider.On("List").Return([]*particle.Particle{})

	svc := NewService(provider, nil, nil, time.Minute)

	_, err := svc.Resolve(context.Background(), "pbar")
	require.ErrorIs(t, err, ErrUnknownParticle)
	provider.AssertCalled(t, "Lookup", "p-")
}
