package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/physconst"
)

// Registry builds the default registry.
func Registry(t *testing.T) *particle.Registry {
	t.Helper()
	return NewBuilder(t).Build()
}

// RegistryFor builds the default registry against release.
func RegistryFor(t *testing.T, release physconst.Release) *particle.Registry {
	t.Helper()
	return NewBuilder(t).WithRelease(release).Build()
}

// Get returns the record for symbol, failing the test if it is missing.
func Get(t *testing.T, reg *particle.Registry, symbol string) *particle.Particle {
	t.Helper()
	p, err := reg.Get(symbol)
	require.NoError(t, err)
	return p
}

// WriteFile writes content to name inside a fresh temp directory and returns
// the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
