package physconst

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/domain/quantity"
)

// Compile-time check that Set can feed the registry builder.
var _ particle.Constants = Set{}

func TestReleases(t *testing.T) {
	require.Equal(t, []Release{CODATA2014, CODATA2018}, Releases())
}

func TestForRelease(t *testing.T) {
	tests := []struct {
		input string
		want  Release
	}{
		{"CODATA2014", CODATA2014},
		{"codata2018", CODATA2018},
		{"2018", CODATA2018},
		{" 2014 ", CODATA2014},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ForRelease(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, s.Release())
		})
	}
}

func TestForRelease_Unknown(t *testing.T) {
	for _, name := range []string{"", "2010", "latest"} {
		_, err := ForRelease(name)
		require.ErrorIs(t, err, ErrUnknownRelease, "name %q", name)
	}
}

func TestDefault(t *testing.T) {
	s := Default()

	require.Equal(t, DefaultRelease, s.Release())
	require.Equal(t, quantity.Kilograms(9.10938356e-31), s.ElectronMass())
	require.Equal(t, quantity.Kilograms(1.672621898e-27), s.ProtonMass())
	require.Equal(t, quantity.Kilograms(1.674927471e-27), s.NeutronMass())
}

func TestSets_AllKilograms(t *testing.T) {
	for _, r := range Releases() {
		s, err := ForRelease(string(r))
		require.NoError(t, err)
		for _, q := range []quantity.Quantity{s.ElectronMass(), s.ProtonMass(), s.NeutronMass()} {
			require.Equal(t, quantity.Kilogram, q.Unit)
			require.Greater(t, q.Value, 0.0)
		}
		require.Less(t, s.ElectronMass().Value, s.ProtonMass().Value)
		require.Less(t, s.ProtonMass().Value, s.NeutronMass().Value)
	}
}

func TestBuildsRegistry(t *testing.T) {
	reg, err := particle.Build(particle.NewTaxonomy(), Default())
	require.NoError(t, err)

	p, err := reg.Get("p+")
	require.NoError(t, err)
	require.Equal(t, particle.KnownMass(Default().ProtonMass()), p.Mass())
}
