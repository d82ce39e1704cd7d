package particle

import (
	"strings"

	"github.com/zjrosen/particlezoo/internal/domain/quantity"
)

// Constants supplies the externally sourced physical constants.
type Constants interface {
	ElectronMass() quantity.Quantity
	ProtonMass() quantity.Quantity
	NeutronMass() quantity.Quantity
}

// Symbol→name table. Its order is the canonical listing order of the registry.
var symbolNames = []struct {
	symbol string
	name   string
}{
	{"e-", "electron"},
	{"e+", "positron"},
	{"mu-", "muon"},
	{"mu+", "antimuon"},
	{"tau-", "tau"},
	{"tau+", "antitau"},
	{"nu_e", "electron neutrino"},
	{"anti_nu_e", "electron antineutrino"},
	{"nu_mu", "muon neutrino"},
	{"anti_nu_mu", "muon antineutrino"},
	{"nu_tau", "tau neutrino"},
	{"anti_nu_tau", "tau antineutrino"},
	{"p+", "proton"},
	{"p-", "antiproton"},
	{"n", "neutron"},
	{"antineutron", "antineutron"},
}

// Lepton families, keyed by the substring that identifies them in a symbol.
// A nil halfLife leaves the record to the stable-default rule.
var leptonFamilies = []struct {
	marker        string
	generation    int
	fromConstants bool // mass is Constants.ElectronMass
	mass          quantity.Quantity
	halfLife      *HalfLife
}{
	{marker: "e", generation: 1, fromConstants: true},
	{marker: "mu", generation: 2, mass: quantity.Kilograms(1.883_531_594e-28), halfLife: decaying(quantity.Seconds(2.1969811e-6))},
	{marker: "tau", generation: 3, mass: quantity.Kilograms(3.167_47e-27), halfLife: decaying(quantity.Seconds(2.906e-13))},
}

func decaying(q quantity.Quantity) *HalfLife {
	h := DecaysAfter(q)
	return &h
}

// Free-neutron half-life.
var neutronHalfLife = quantity.Seconds(881.5)

var (
	protonFamily  = NewSymbolSet("p+", "p-")
	neutronFamily = NewSymbolSet("n", "antineutron")
)

// leptonFamily returns the index into leptonFamilies whose marker appears in symbol.
// ok is false unless exactly one marker matches.
func leptonFamily(symbol string) (index int, ok bool) {
	index = -1
	for i, f := range leptonFamilies {
		if strings.Contains(symbol, f.marker) {
			if index >= 0 {
				return -1, false
			}
			index = i
		}
	}
	return index, index >= 0
}

// env is what a rule can read besides the draft it writes.
type env struct {
	taxonomy  *Taxonomy
	constants Constants
}

// Rule is one derivation pass: a selector over the taxonomy and an assignment
// applied to every selected symbol. Rules run in slice order and a later rule
// may overwrite a field written by an earlier one.
type Rule struct {
	Name      string
	Rationale string
	selector  func(t *Taxonomy) SymbolSet
	assign    func(e env, symbol string, d *draft)
}

// DefaultRules returns the derivation passes in the order they must run.
// The returned slice is a fresh copy and may be reordered by the caller.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:      "names",
			Rationale: "every symbol has a fixed human-readable name",
			selector:  (*Taxonomy).Everything,
			assign: func(_ env, symbol string, d *draft) {
				for _, sn := range symbolNames {
					if sn.symbol == symbol {
						d.setName(sn.name)
						return
					}
				}
			},
		},
		{
			Name:      "fermion-spin",
			Rationale: "all modelled fermions are spin-1/2",
			selector:  (*Taxonomy).Fermions,
			assign:    func(_ env, _ string, d *draft) { d.setSpin(SpinHalf) },
		},
		{
			Name:      "boson-spin",
			Rationale: "bosons are spin-0; the set is currently empty",
			selector:  (*Taxonomy).Bosons,
			assign:    func(_ env, _ string, d *draft) { d.setSpin(SpinZero) },
		},
		{
			Name:      "leptons",
			Rationale: "class and quantum numbers follow from membership; neutrinos are neutral",
			selector:  (*Taxonomy).Leptons,
			assign: func(e env, symbol string, d *draft) {
				d.setClass(ClassLepton)
				d.setLeptonNumber(1)
				d.setBaryonNumber(0)
				if e.taxonomy.Neutrinos().Contains(symbol) {
					d.setCharge(0)
				} else {
					d.setCharge(-1)
				}
			},
		},
		{
			Name:      "antileptons",
			Rationale: "mirror of leptons with opposite lepton number and charge",
			selector:  (*Taxonomy).Antileptons,
			assign: func(e env, symbol string, d *draft) {
				d.setClass(ClassAntilepton)
				d.setLeptonNumber(-1)
				d.setBaryonNumber(0)
				if e.taxonomy.Antineutrinos().Contains(symbol) {
					d.setCharge(0)
				} else {
					d.setCharge(1)
				}
			},
		},
		{
			Name:      "baryons",
			Rationale: "class and quantum numbers follow from membership",
			selector:  (*Taxonomy).Baryons,
			assign: func(_ env, _ string, d *draft) {
				d.setClass(ClassBaryon)
				d.setLeptonNumber(0)
				d.setBaryonNumber(1)
			},
		},
		{
			Name:      "antibaryons",
			Rationale: "class and quantum numbers follow from membership",
			selector:  (*Taxonomy).Antibaryons,
			assign: func(_ env, _ string, d *draft) {
				d.setClass(ClassAntibaryon)
				d.setLeptonNumber(0)
				d.setBaryonNumber(-1)
			},
		},
		{
			Name:      "lepton-generation",
			Rationale: "the family marker in the symbol (e, mu, tau) gives the generation",
			selector:  chargedAndNeutralLeptons,
			assign: func(_ env, symbol string, d *draft) {
				if i, ok := leptonFamily(symbol); ok {
					d.setGeneration(leptonFamilies[i].generation)
				}
			},
		},
		{
			Name:      "charged-lepton-mass",
			Rationale: "electron mass is a fundamental constant; muon and tau carry measured mass and half-life",
			selector: func(t *Taxonomy) SymbolSet {
				neutral := t.Neutrinos().Union(t.Antineutrinos())
				return chargedAndNeutralLeptons(t).Filter(func(s string) bool { return !neutral.Contains(s) })
			},
			assign: func(e env, symbol string, d *draft) {
				i, ok := leptonFamily(symbol)
				if !ok {
					return
				}
				f := leptonFamilies[i]
				if f.fromConstants {
					d.setMass(KnownMass(e.constants.ElectronMass()))
				} else {
					d.setMass(KnownMass(f.mass))
				}
				if f.halfLife != nil {
					d.setHalfLife(*f.halfLife)
				}
			},
		},
		{
			Name:      "neutrino-mass",
			Rationale: "neutrino masses are non-zero but unresolved, so they are unknown rather than zero",
			selector: func(t *Taxonomy) SymbolSet {
				return t.Neutrinos().Union(t.Antineutrinos())
			},
			assign: func(_ env, _ string, d *draft) { d.setMass(UnknownMass()) },
		},
		{
			Name:      "proton",
			Rationale: "overrides the charge of p+ and p-, which no class-level rule assigns",
			selector:  familySelector(protonFamily),
			assign: func(e env, symbol string, d *draft) {
				d.setMass(KnownMass(e.constants.ProtonMass()))
				if e.taxonomy.Matter().Contains(symbol) {
					d.setCharge(1)
				} else {
					d.setCharge(-1)
				}
			},
		},
		{
			Name:      "neutron",
			Rationale: "free neutrons decay; both neutron and antineutron are neutral",
			selector:  familySelector(neutronFamily),
			assign: func(e env, _ string, d *draft) {
				d.setMass(KnownMass(e.constants.NeutronMass()))
				d.setHalfLife(DecaysAfter(neutronHalfLife))
				d.setCharge(0)
			},
		},
		{
			Name:      "stable-default",
			Rationale: "anything without a measured half-life by now does not decay",
			selector:  (*Taxonomy).Everything,
			assign: func(_ env, _ string, d *draft) {
				if !d.has(FieldHalfLife) {
					d.setHalfLife(Stable())
				}
			},
		},
		{
			Name:      "matter",
			Rationale: "antimatter flag follows membership",
			selector:  (*Taxonomy).Matter,
			assign:    func(_ env, _ string, d *draft) { d.setAntimatter(false) },
		},
		{
			Name:      "antimatter",
			Rationale: "antimatter flag follows membership",
			selector:  (*Taxonomy).Antimatter,
			assign:    func(_ env, _ string, d *draft) { d.setAntimatter(true) },
		},
	}
}

func chargedAndNeutralLeptons(t *Taxonomy) SymbolSet {
	return t.Leptons().Union(t.Antileptons())
}

// familySelector restricts a fixed family to the symbols the taxonomy knows.
func familySelector(family SymbolSet) func(t *Taxonomy) SymbolSet {
	return func(t *Taxonomy) SymbolSet {
		return t.Everything().Intersect(family)
	}
}

// requiredFields returns the fields every record for symbol must carry.
func requiredFields(t *Taxonomy, symbol string) Field {
	required := FieldName | FieldClass | FieldSpin | FieldCharge |
		FieldLeptonNumber | FieldBaryonNumber | FieldMass | FieldHalfLife | FieldAntimatter
	if chargedAndNeutralLeptons(t).Contains(symbol) {
		required |= FieldGeneration
	}
	return required
}
