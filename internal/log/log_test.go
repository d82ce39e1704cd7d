package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	var buf bytes.Buffer
	InitWriter(&buf)
	return &buf
}

func TestLog_FormatsFields(t *testing.T) {
	buf := withBuffer(t)

	Info(CatRegistry, "Built registry", "particles", 16, "release", "CODATA2014")

	line := buf.String()
	require.Contains(t, line, "[INFO] [registry] Built registry particles=16 release=CODATA2014")
	require.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestLog_OrphanKey(t *testing.T) {
	buf := withBuffer(t)

	Debug(CatCache, "miss", "key")

	require.Contains(t, buf.String(), "key=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := withBuffer(t)

	ErrorErr(CatExport, "write failed", errors.New("disk full"), "path", "/tmp/x.db")
	ErrorErr(CatExport, "nil error", nil)

	out := buf.String()
	require.Contains(t, out, "[ERROR] [export] write failed path=/tmp/x.db error=disk full")
	require.Contains(t, out, "error=<nil>")
}

func TestLog_MinLevel(t *testing.T) {
	buf := withBuffer(t)
	SetMinLevel(LevelWarn)

	Info(CatCLI, "hidden")
	Warn(CatCLI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] [cli] shown")
}

func TestLog_Disabled(t *testing.T) {
	buf := withBuffer(t)
	SetEnabled(false)

	Error(CatConfig, "suppressed")

	require.Empty(t, buf.String())
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	prev := defaultLogger
	defaultLogger = nil
	t.Cleanup(func() { defaultLogger = prev })

	require.NotPanics(t, func() {
		Info(CatCLI, "nobody listening")
		SetEnabled(true)
		SetMinLevel(LevelError)
	})
}

func TestInit_WritesToFile(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatTrace, "provider started")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [trace] provider started")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"":        LevelDebug,
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for input, want := range tests {
		got, err := ParseLevel(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, got)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
