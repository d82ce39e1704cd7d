package particle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/particlezoo/internal/domain/quantity"
)

// ErrUnknownCategory is returned when a category name is not one of the ten classifications.
var ErrUnknownCategory = errors.New("unknown particle category")

// Category names a taxonomic classification.
type Category string

const (
	CategoryLepton       Category = "lepton"
	CategoryAntilepton   Category = "antilepton"
	CategoryBaryon       Category = "baryon"
	CategoryAntibaryon   Category = "antibaryon"
	CategoryFermion      Category = "fermion"
	CategoryBoson        Category = "boson"
	CategoryNeutrino     Category = "neutrino"
	CategoryAntineutrino Category = "antineutrino"
	CategoryMatter       Category = "matter"
	CategoryAntimatter   Category = "antimatter"
)

// AllCategories returns every category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryLepton,
		CategoryAntilepton,
		CategoryBaryon,
		CategoryAntibaryon,
		CategoryFermion,
		CategoryBoson,
		CategoryNeutrino,
		CategoryAntineutrino,
		CategoryMatter,
		CategoryAntimatter,
	}
}

// ParseCategory converts a user-supplied name to a Category.
// Matching is case-insensitive and accepts the plural form ("leptons").
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllCategories() {
		if name == string(c) || name == string(c)+"s" {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Class is the single base classification recorded on a particle.
type Class string

const (
	ClassLepton     Class = "lepton"
	ClassAntilepton Class = "antilepton"
	ClassBaryon     Class = "baryon"
	ClassAntibaryon Class = "antibaryon"
)

// Valid reports whether c is one of the four classes.
func (c Class) Valid() bool {
	switch c {
	case ClassLepton, ClassAntilepton, ClassBaryon, ClassAntibaryon:
		return true
	}
	return false
}

// Spin is an intrinsic angular momentum expressed as a rational num/den.
type Spin struct {
	num int
	den int
}

var (
	SpinZero = Spin{num: 0, den: 1}
	SpinHalf = Spin{num: 1, den: 2}
)

// Float64 returns the spin as a float (0.5 for fermions).
func (s Spin) Float64() float64 {
	if s.den == 0 {
		return 0
	}
	return float64(s.num) / float64(s.den)
}

func (s Spin) String() string {
	if s.den == 1 || s.num == 0 {
		return fmt.Sprintf("%d", s.num)
	}
	return fmt.Sprintf("%d/%d", s.num, s.den)
}

// Mass is either a measured quantity or the explicit unknown sentinel.
// The zero value is the unknown sentinel, never a numeric zero mass.
type Mass struct {
	value quantity.Quantity
	known bool
}

// KnownMass wraps a measured mass.
func KnownMass(q quantity.Quantity) Mass {
	return Mass{value: q, known: true}
}

// UnknownMass is the sentinel for a non-zero but experimentally unresolved mass.
func UnknownMass() Mass {
	return Mass{}
}

// Known reports whether the mass has a measured value.
func (m Mass) Known() bool {
	return m.known
}

// Value returns the measured quantity. ok is false for the unknown sentinel.
func (m Mass) Value() (q quantity.Quantity, ok bool) {
	return m.value, m.known
}

func (m Mass) String() string {
	if !m.known {
		return "unknown"
	}
	return m.value.String()
}

// HalfLife is either a finite measured half-life or the stable (infinite) sentinel.
type HalfLife struct {
	value  quantity.Quantity
	stable bool
}

// DecaysAfter wraps a finite half-life.
func DecaysAfter(q quantity.Quantity) HalfLife {
	return HalfLife{value: q}
}

// Stable is the infinite half-life sentinel.
func Stable() HalfLife {
	return HalfLife{stable: true}
}

// IsStable reports whether the particle does not decay.
func (h HalfLife) IsStable() bool {
	return h.stable
}

// Value returns the finite half-life. ok is false for stable particles.
func (h HalfLife) Value() (q quantity.Quantity, ok bool) {
	return h.value, !h.stable
}

func (h HalfLife) String() string {
	if h.stable {
		return "inf s"
	}
	return h.value.String()
}

// Field identifies one property of a particle record.
type Field uint16

const (
	FieldName Field = 1 << iota
	FieldClass
	FieldSpin
	FieldCharge
	FieldLeptonNumber
	FieldBaryonNumber
	FieldGeneration
	FieldMass
	FieldHalfLife
	FieldAntimatter
)

var fieldNames = []struct {
	field Field
	name  string
}{
	{FieldName, "name"},
	{FieldClass, "class"},
	{FieldSpin, "spin"},
	{FieldCharge, "charge"},
	{FieldLeptonNumber, "lepton number"},
	{FieldBaryonNumber, "baryon number"},
	{FieldGeneration, "generation"},
	{FieldMass, "mass"},
	{FieldHalfLife, "half-life"},
	{FieldAntimatter, "antimatter"},
}

// Fields splits a bit set into its individual fields, in declaration order.
func (f Field) Fields() []Field {
	var out []Field
	for _, fn := range fieldNames {
		if f&fn.field != 0 {
			out = append(out, fn.field)
		}
	}
	return out
}

func (f Field) String() string {
	names := make([]string, 0, len(fieldNames))
	for _, fn := range fieldNames {
		if f&fn.field != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
