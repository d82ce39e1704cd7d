package particle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/particlezoo/internal/domain/quantity"
)

func TestSpin(t *testing.T) {
	require.Equal(t, "1/2", SpinHalf.String())
	require.Equal(t, 0.5, SpinHalf.Float64())
	require.Equal(t, "0", SpinZero.String())
	require.Equal(t, 0.0, SpinZero.Float64())
	require.Equal(t, 0.0, Spin{}.Float64())
}

func TestMass_Sentinel(t *testing.T) {
	unknown := UnknownMass()
	require.False(t, unknown.Known())
	_, ok := unknown.Value()
	require.False(t, ok)
	require.Equal(t, "unknown", unknown.String())

	known := KnownMass(quantity.Kilograms(1.5))
	require.True(t, known.Known())
	q, ok := known.Value()
	require.True(t, ok)
	require.Equal(t, 1.5, q.Value)
	require.Equal(t, "1.5 kg", known.String())
}

func TestMass_KnownZeroIsNotUnknown(t *testing.T) {
	require.NotEqual(t, UnknownMass(), KnownMass(quantity.Kilograms(0)))
}

func TestHalfLife_Sentinel(t *testing.T) {
	stable := Stable()
	require.True(t, stable.IsStable())
	_, ok := stable.Value()
	require.False(t, ok)
	require.Equal(t, "inf s", stable.String())

	decays := DecaysAfter(quantity.Seconds(881.5))
	require.False(t, decays.IsStable())
	q, ok := decays.Value()
	require.True(t, ok)
	require.Equal(t, quantity.Seconds(881.5), q)
	require.Equal(t, "881.5 s", decays.String())
}

func TestClass_Valid(t *testing.T) {
	for _, c := range []Class{ClassLepton, ClassAntilepton, ClassBaryon, ClassAntibaryon} {
		require.True(t, c.Valid(), "class %s", c)
	}
	require.False(t, Class("").Valid())
	require.False(t, Class("meson").Valid())
}

func TestField_String(t *testing.T) {
	require.Equal(t, "none", Field(0).String())
	require.Equal(t, "name", FieldName.String())
	require.Equal(t, "lepton number, half-life", (FieldHalfLife | FieldLeptonNumber).String())
}

func TestField_Fields(t *testing.T) {
	require.Empty(t, Field(0).Fields())
	require.Equal(t, []Field{FieldCharge, FieldMass}, (FieldMass | FieldCharge).Fields())
}
