package particle

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
)

// Difference is one field that differs between two registries. A symbol
// present on only one side is reported with Field 0 and "absent" on the
// other side.
type Difference struct {
	Symbol string
	Field  particle.Field
	From   string
	To     string
}

const absent = "absent"

// Compare lists field differences from a to b. Symbols follow a's canonical
// order, then any symbols only b has.
func Compare(_ context.Context, a, b particle.Provider) []Difference {
	var diffs []Difference
	seen := make(map[string]bool)

	for _, pa := range a.List() {
		seen[pa.Symbol()] = true
		pb, ok := b.Lookup(pa.Symbol())
		if !ok {
			diffs = append(diffs, Difference{Symbol: pa.Symbol(), From: "present", To: absent})
			continue
		}
		diffs = append(diffs, compareRecords(pa, pb)...)
	}
	for _, pb := range b.List() {
		if !seen[pb.Symbol()] {
			diffs = append(diffs, Difference{Symbol: pb.Symbol(), From: absent, To: "present"})
		}
	}
	return diffs
}

var allFields = particle.FieldName | particle.FieldClass | particle.FieldSpin |
	particle.FieldCharge | particle.FieldLeptonNumber | particle.FieldBaryonNumber |
	particle.FieldGeneration | particle.FieldMass | particle.FieldHalfLife | particle.FieldAntimatter

func compareRecords(a, b *particle.Particle) []Difference {
	if a.Equal(b) {
		return nil
	}
	var diffs []Difference
	for _, f := range allFields.Fields() {
		from, to := FieldValue(a, f), FieldValue(b, f)
		if from != to {
			diffs = append(diffs, Difference{Symbol: a.Symbol(), Field: f, From: from, To: to})
		}
	}
	return diffs
}

// FieldValue renders one field of p for display.
func FieldValue(p *particle.Particle, f particle.Field) string {
	switch f {
	case particle.FieldName:
		return p.Name()
	case particle.FieldClass:
		return string(p.Class())
	case particle.FieldSpin:
		return p.Spin().String()
	case particle.FieldCharge:
		return strconv.Itoa(p.Charge())
	case particle.FieldLeptonNumber:
		return strconv.Itoa(p.LeptonNumber())
	case particle.FieldBaryonNumber:
		return strconv.Itoa(p.BaryonNumber())
	case particle.FieldGeneration:
		if g, ok := p.Generation(); ok {
			return strconv.Itoa(g)
		}
		return "-"
	case particle.FieldMass:
		return p.Mass().String()
	case particle.FieldHalfLife:
		return p.HalfLife().String()
	case particle.FieldAntimatter:
		return strconv.FormatBool(p.IsAntimatter())
	default:
		return fmt.Sprintf("<%s>", f)
	}
}
