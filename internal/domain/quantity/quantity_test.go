package quantity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	q := Of(881.5, Second)

	require.Equal(t, 881.5, q.Value)
	require.Equal(t, Second, q.Unit)
}

func TestShorthands(t *testing.T) {
	require.Equal(t, Of(1.5, Kilogram), Kilograms(1.5))
	require.Equal(t, Of(2, Second), Seconds(2))
}

func TestQuantity_String(t *testing.T) {
	require.Equal(t, "881.5 s", Seconds(881.5).String())
	require.Equal(t, "1.883531594e-28 kg", Kilograms(1.883531594e-28).String())
}

func TestQuantity_IsZero(t *testing.T) {
	require.True(t, Quantity{}.IsZero())
	require.False(t, Seconds(0).IsZero(), "a unit-tagged zero is still a measured value")
}
