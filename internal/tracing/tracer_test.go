package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Enabled)
	require.Equal(t, ExporterFile, cfg.Exporter)
	require.Empty(t, cfg.FilePath)
	require.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	require.Equal(t, 1.0, cfg.SampleRate)
	require.Equal(t, "particlezoo", cfg.ServiceName)
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)
	require.False(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), SpanRegistryBuild)
	require.False(t, span.SpanContext().IsValid(), "no-op spans carry no ids")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterRequiresPath(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: ExporterFile})
	require.ErrorContains(t, err, "file_path required")
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "carrier-pigeon"})
	require.ErrorContains(t, err, "unsupported exporter type: carrier-pigeon")
}

func TestNewProvider_NoneExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: ExporterNone})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), SpanParticleResolve)
	require.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterWritesSpans(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces", "traces.jsonl")

	provider, err := NewProvider(Config{
		Enabled:     true,
		Exporter:    ExporterFile,
		FilePath:    tracePath,
		ServiceName: "particlezoo-test",
	})
	require.NoError(t, err)

	ctx, parent := provider.Tracer().Start(context.Background(), SpanRegistryBuild)
	_, child := Start(ctx, provider.Tracer(), SpanParticleResolve, attribute.String(AttrParticleSymbol, "e-"))
	child.End()
	parent.End()

	require.NoError(t, provider.Shutdown(context.Background()))

	records := readRecords(t, tracePath)
	require.Len(t, records, 2)

	byName := map[string]SpanRecord{}
	for _, r := range records {
		byName[r.Name] = r
	}
	require.Equal(t, byName[SpanRegistryBuild].SpanID, byName[SpanParticleResolve].ParentSpanID)
	require.Equal(t, byName[SpanRegistryBuild].TraceID, byName[SpanParticleResolve].TraceID)
	require.Equal(t, "e-", byName[SpanParticleResolve].Attributes[AttrParticleSymbol])
}

func TestStart_NilTracerUsesContextProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctx, parent := tp.Tracer("test").Start(context.Background(), "outer")
	_, span := Start(ctx, nil, SpanParticleList, attribute.String(AttrCategory, "lepton"))
	span.End()
	parent.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	require.Equal(t, SpanParticleList, ended[0].Name())
	require.Equal(t, parent.SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestStart_NilTracerWithoutParentIsNoop(t *testing.T) {
	_, span := Start(context.Background(), nil, SpanParticleList)
	require.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestFail(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, ok := tp.Tracer("test").Start(context.Background(), "ok")
	Fail(ok, nil)
	ok.End()

	_, bad := tp.Tracer("test").Start(context.Background(), "bad")
	Fail(bad, errors.New("particle incomplete"))
	bad.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	require.Equal(t, codes.Unset, ended[0].Status().Code)
	require.Equal(t, codes.Error, ended[1].Status().Code)
	require.Equal(t, "particle incomplete", ended[1].Status().Description)
	require.Len(t, ended[1].Events(), 1, "RecordError adds an exception event")
}

func readRecords(t *testing.T, path string) []SpanRecord {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var records []SpanRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		records = append(records, r)
	}
	require.NoError(t, scanner.Err())
	return records
}
