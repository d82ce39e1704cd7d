package particle

import (
	"fmt"
	"strings"
)

// Base classification literals.
var (
	leptonSymbols     = []string{"e-", "mu-", "tau-", "nu_e", "nu_mu", "nu_tau"}
	antileptonSymbols = []string{"e+", "mu+", "tau+", "anti_nu_e", "anti_nu_mu", "anti_nu_tau"}
	baryonSymbols     = []string{"p+", "n"}
	antibaryonSymbols = []string{"p-", "antineutron"}
)

// neutrinoMarker appears in every neutrino and antineutrino symbol and in no other lepton.
const neutrinoMarker = "nu"

// Taxonomy holds the named classification sets.
// It is never mutated after NewTaxonomy returns.
type Taxonomy struct {
	sets       map[Category]SymbolSet
	everything SymbolSet
}

// NewTaxonomy builds the taxonomy from the fixed symbol literals.
func NewTaxonomy() *Taxonomy {
	return newTaxonomy(leptonSymbols, antileptonSymbols, baryonSymbols, antibaryonSymbols)
}

func newTaxonomy(leptons, antileptons, baryons, antibaryons []string) *Taxonomy {
	lepton := NewSymbolSet(leptons...)
	antilepton := NewSymbolSet(antileptons...)
	baryon := NewSymbolSet(baryons...)
	antibaryon := NewSymbolSet(antibaryons...)

	isNeutrino := func(symbol string) bool { return strings.Contains(symbol, neutrinoMarker) }

	matter := lepton.Union(baryon)
	antimatter := antilepton.Union(antibaryon)

	return &Taxonomy{
		sets: map[Category]SymbolSet{
			CategoryLepton:       lepton,
			CategoryAntilepton:   antilepton,
			CategoryBaryon:       baryon,
			CategoryAntibaryon:   antibaryon,
			CategoryFermion:      lepton.Union(antilepton, baryon, antibaryon),
			CategoryBoson:        NewSymbolSet(),
			CategoryNeutrino:     lepton.Filter(isNeutrino),
			CategoryAntineutrino: antilepton.Filter(isNeutrino),
			CategoryMatter:       matter,
			CategoryAntimatter:   antimatter,
		},
		everything: matter.Union(antimatter),
	}
}

// Category returns the set for c. The boson set is empty but still valid.
func (t *Taxonomy) Category(c Category) (SymbolSet, error) {
	set, ok := t.sets[c]
	if !ok {
		return SymbolSet{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return set, nil
}

// CategoriesOf lists every category containing symbol, in AllCategories order.
func (t *Taxonomy) CategoriesOf(symbol string) []Category {
	var out []Category
	for _, c := range AllCategories() {
		if t.sets[c].Contains(symbol) {
			out = append(out, c)
		}
	}
	return out
}

// Leptons returns the six matter leptons.
func (t *Taxonomy) Leptons() SymbolSet { return t.sets[CategoryLepton] }

// Antileptons returns the six antileptons.
func (t *Taxonomy) Antileptons() SymbolSet { return t.sets[CategoryAntilepton] }

// Baryons returns the proton and neutron.
func (t *Taxonomy) Baryons() SymbolSet { return t.sets[CategoryBaryon] }

// Antibaryons returns the antiproton and antineutron.
func (t *Taxonomy) Antibaryons() SymbolSet { return t.sets[CategoryAntibaryon] }

// Fermions returns every lepton, antilepton, baryon and antibaryon.
func (t *Taxonomy) Fermions() SymbolSet { return t.sets[CategoryFermion] }

// Bosons returns the boson category, which is empty.
func (t *Taxonomy) Bosons() SymbolSet { return t.sets[CategoryBoson] }

// Neutrinos returns the leptons whose symbol contains "nu".
func (t *Taxonomy) Neutrinos() SymbolSet { return t.sets[CategoryNeutrino] }

// Antineutrinos returns the antileptons whose symbol contains "nu".
func (t *Taxonomy) Antineutrinos() SymbolSet { return t.sets[CategoryAntineutrino] }

// Matter returns leptons and baryons.
func (t *Taxonomy) Matter() SymbolSet { return t.sets[CategoryMatter] }

// Antimatter returns antileptons and antibaryons.
func (t *Taxonomy) Antimatter() SymbolSet { return t.sets[CategoryAntimatter] }

// Everything returns matter ∪ antimatter, the symbol domain of the registry.
func (t *Taxonomy) Everything() SymbolSet {
	return t.everything
}
