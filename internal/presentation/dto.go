package presentation

import (
	"time"

	"github.com/zjrosen/particlezoo/internal/application/particle"
	domain "github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/domain/quantity"
	"github.com/zjrosen/particlezoo/internal/physconst"
)

// ParticleDTO represents a particle record for presentation
type ParticleDTO struct {
	Symbol       string      `json:"symbol" yaml:"symbol"`
	Name         string      `json:"name" yaml:"name"`
	Class        string      `json:"class" yaml:"class"`
	Spin         string      `json:"spin" yaml:"spin"`
	Charge       int         `json:"charge" yaml:"charge"`
	LeptonNumber int         `json:"lepton_number" yaml:"lepton_number"`
	BaryonNumber int         `json:"baryon_number" yaml:"baryon_number"`
	Generation   *int        `json:"generation,omitempty" yaml:"generation,omitempty"`
	Mass         MassDTO     `json:"mass" yaml:"mass"`
	HalfLife     HalfLifeDTO `json:"half_life" yaml:"half_life"`
	Antimatter   bool        `json:"antimatter" yaml:"antimatter"`
	Categories   []string    `json:"categories" yaml:"categories"`
}

// MassDTO carries either a value or unknown=true. It never carries a zero
// standing in for "unknown".
type MassDTO struct {
	Value   *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Unit    string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Unknown bool     `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

// HalfLifeDTO carries either a value or stable=true.
type HalfLifeDTO struct {
	Value  *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Unit   string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Stable bool     `json:"stable,omitempty" yaml:"stable,omitempty"`
}

// TaxonomyDTO is one classification and its members
type TaxonomyDTO struct {
	Category string   `json:"category" yaml:"category"`
	Symbols  []string `json:"symbols" yaml:"symbols"`
}

// DifferenceDTO is one field that changed between two registries
type DifferenceDTO struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Field  string `json:"field" yaml:"field"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
}

// ReleaseDTO is one constants release and the masses it supplies
type ReleaseDTO struct {
	Release      string  `json:"release" yaml:"release"`
	ElectronMass float64 `json:"electron_mass" yaml:"electron_mass"`
	ProtonMass   float64 `json:"proton_mass" yaml:"proton_mass"`
	NeutronMass  float64 `json:"neutron_mass" yaml:"neutron_mass"`
	Current      bool    `json:"current" yaml:"current"`
}

// SnapshotDTO summarizes one exported registry
type SnapshotDTO struct {
	ID        string    `json:"id" yaml:"id"`
	Release   string    `json:"release" yaml:"release"`
	Particles int       `json:"particles" yaml:"particles"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// FromDomainParticle converts a domain particle to a DTO. t supplies the
// categories the symbol belongs to and may be nil.
func FromDomainParticle(p *domain.Particle, t *domain.Taxonomy) ParticleDTO {
	dto := ParticleDTO{
		Symbol:       p.Symbol(),
		Name:         p.Name(),
		Class:        string(p.Class()),
		Spin:         p.Spin().String(),
		Charge:       p.Charge(),
		LeptonNumber: p.LeptonNumber(),
		BaryonNumber: p.BaryonNumber(),
		Antimatter:   p.IsAntimatter(),
		Categories:   []string{},
	}

	if g, ok := p.Generation(); ok {
		dto.Generation = &g
	}

	if q, ok := p.Mass().Value(); ok {
		dto.Mass = MassDTO{Value: valueOf(q), Unit: string(q.Unit)}
	} else {
		dto.Mass = MassDTO{Unknown: true}
	}

	if q, ok := p.HalfLife().Value(); ok {
		dto.HalfLife = HalfLifeDTO{Value: valueOf(q), Unit: string(q.Unit)}
	} else {
		dto.HalfLife = HalfLifeDTO{Stable: true}
	}

	if t != nil {
		for _, c := range t.CategoriesOf(p.Symbol()) {
			dto.Categories = append(dto.Categories, string(c))
		}
	}

	return dto
}

func valueOf(q quantity.Quantity) *float64 {
	v := q.Value
	return &v
}

// FromDomainParticles converts a listing, preserving order.
func FromDomainParticles(ps []*domain.Particle, t *domain.Taxonomy) []ParticleDTO {
	out := make([]ParticleDTO, len(ps))
	for i, p := range ps {
		out[i] = FromDomainParticle(p, t)
	}
	return out
}

// FromCategory pairs a category with its members.
func FromCategory(c domain.Category, members domain.SymbolSet) TaxonomyDTO {
	return TaxonomyDTO{Category: string(c), Symbols: members.Symbols()}
}

// FromDifferences converts registry differences to DTOs.
func FromDifferences(diffs []particle.Difference) []DifferenceDTO {
	out := make([]DifferenceDTO, len(diffs))
	for i, d := range diffs {
		field := d.Field.String()
		if d.Field == 0 {
			field = "record"
		}
		out[i] = DifferenceDTO{Symbol: d.Symbol, Field: field, From: d.From, To: d.To}
	}
	return out
}

// FromReleases lists every constants release, marking current.
func FromReleases(current physconst.Release) []ReleaseDTO {
	out := make([]ReleaseDTO, 0, len(physconst.Releases()))
	for _, r := range physconst.Releases() {
		set, err := physconst.ForRelease(string(r))
		if err != nil {
			continue
		}
		out = append(out, ReleaseDTO{
			Release:      string(r),
			ElectronMass: set.ElectronMass().Value,
			ProtonMass:   set.ProtonMass().Value,
			NeutronMass:  set.NeutronMass().Value,
			Current:      r == current,
		})
	}
	return out
}
