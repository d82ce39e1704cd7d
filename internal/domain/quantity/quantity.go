// Package quantity holds the opaque value+unit pair used for physical constants.
// Values are stored and compared, never converted or combined.
package quantity

import (
	"fmt"
	"strconv"
)

// Unit tags the physical dimension of a Quantity.
type Unit string

const (
	Kilogram Unit = "kg"
	Second   Unit = "s"
)

// Quantity is a numeric value with its unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Of creates a quantity.
func Of(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// Kilograms is shorthand for Of(value, Kilogram).
func Kilograms(value float64) Quantity {
	return Of(value, Kilogram)
}

// Seconds is shorthand for Of(value, Second).
func Seconds(value float64) Quantity {
	return Of(value, Second)
}

// IsZero reports whether q is the zero Quantity (no value and no unit).
func (q Quantity) IsZero() bool {
	return q.Value == 0 && q.Unit == ""
}

// String formats the quantity as "<value> <unit>", e.g. "881.5 s".
func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", strconv.FormatFloat(q.Value, 'g', -1, 64), q.Unit)
}
