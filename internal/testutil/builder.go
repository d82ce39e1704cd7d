// Package testutil provides registry fixtures for tests.
package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/physconst"
)

// Builder accumulates fixture settings and builds a registry from them.
type Builder struct {
	t         *testing.T
	constants particle.Constants
	rules     []particle.Rule
	opts      []particle.BuildOption
}

// NewBuilder starts from the default taxonomy, rules and release.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{
		t:         t,
		constants: physconst.Default(),
		rules:     particle.DefaultRules(),
	}
}

// WithRelease builds against a CODATA release.
func (b *Builder) WithRelease(release physconst.Release) *Builder {
	b.t.Helper()
	consts, err := physconst.ForRelease(string(release))
	require.NoError(b.t, err)
	b.constants = consts
	return b
}

// WithConstants builds against hand-set constants.
func (b *Builder) WithConstants(c particle.Constants) *Builder {
	b.constants = c
	return b
}

// WithoutRules drops the named rules, keeping the order of the rest.
func (b *Builder) WithoutRules(names ...string) *Builder {
	b.rules = slices.DeleteFunc(b.rules, func(r particle.Rule) bool {
		return slices.Contains(names, r.Name)
	})
	return b
}

// WithObserver reports every rule run to fn.
func (b *Builder) WithObserver(fn particle.RuleObserver) *Builder {
	b.opts = append(b.opts, particle.WithRuleObserver(fn))
	return b
}

// TryBuild builds the registry, returning any build error.
func (b *Builder) TryBuild() (*particle.Registry, error) {
	return particle.BuildWithRules(particle.NewTaxonomy(), b.constants, b.rules, b.opts...)
}

// Build builds the registry and fails the test on error.
func (b *Builder) Build() *particle.Registry {
	b.t.Helper()
	reg, err := b.TryBuild()
	require.NoError(b.t, err)
	return reg
}
