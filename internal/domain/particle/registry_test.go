package particle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Get_NotFound(t *testing.T) {
	reg := buildTestRegistry(t)

	p, err := reg.Get("H")

	require.Nil(t, p)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), `"H"`)
}

func TestRegistry_Lookup(t *testing.T) {
	reg := buildTestRegistry(t)

	p, ok := reg.Lookup("nu_tau")
	require.True(t, ok)
	require.Equal(t, "tau neutrino", p.Name())

	_, ok = reg.Lookup("nu_x")
	require.False(t, ok)
}

func TestRegistry_List_CanonicalOrder(t *testing.T) {
	reg := buildTestRegistry(t)

	list := reg.List()

	require.Len(t, list, 16)
	require.Equal(t, "e-", list[0].Symbol())
	require.Equal(t, "e+", list[1].Symbol())
	require.Equal(t, "antineutron", list[15].Symbol())
	require.Equal(t, reg.Symbols()[12], "p+")
}

func TestRegistry_Symbols_ReturnsCopy(t *testing.T) {
	reg := buildTestRegistry(t)

	symbols := reg.Symbols()
	symbols[0] = "changed"

	require.Equal(t, "e-", reg.Symbols()[0])
}

func TestRegistry_InCategory(t *testing.T) {
	reg := buildTestRegistry(t)

	neutrinos, err := reg.InCategory(CategoryNeutrino)
	require.NoError(t, err)
	var symbols []string
	for _, p := range neutrinos {
		symbols = append(symbols, p.Symbol())
	}
	require.Equal(t, []string{"nu_e", "nu_mu", "nu_tau"}, symbols)
}

func TestRegistry_InCategory_BosonIsEmptyNotError(t *testing.T) {
	reg := buildTestRegistry(t)

	bosons, err := reg.InCategory(CategoryBoson)

	require.NoError(t, err)
	require.NotNil(t, bosons)
	require.Empty(t, bosons)
}

func TestRegistry_InCategory_Unknown(t *testing.T) {
	reg := buildTestRegistry(t)

	_, err := reg.InCategory(Category("hadron"))

	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRegistry_Taxonomy(t *testing.T) {
	tax := NewTaxonomy()
	reg, err := Build(tax, &fakeConstants{})
	require.NoError(t, err)

	require.Same(t, tax, reg.Taxonomy())
}

func TestParticle_Equal(t *testing.T) {
	reg := buildTestRegistry(t)
	e := mustGet(t, reg, "e-")
	p := mustGet(t, reg, "e+")

	require.True(t, e.Equal(e))
	require.False(t, e.Equal(p))
	require.False(t, e.Equal(nil))
	require.True(t, (*Particle)(nil).Equal(nil))
}
