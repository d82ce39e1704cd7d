package particle

import (
	"errors"
	"fmt"
)

// Builder errors
var (
	ErrIncomplete   = errors.New("particle record incomplete after build")
	ErrNilTaxonomy  = errors.New("taxonomy cannot be nil")
	ErrNilConstants = errors.New("constants cannot be nil")
)

// IncompleteError reports a symbol whose record is missing required fields
// once every rule has run.
type IncompleteError struct {
	Symbol  string
	Missing Field
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: %q missing %s", ErrIncomplete, e.Symbol, e.Missing)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// RuleObserver is told the name of each rule after it runs and how many
// symbols it assigned.
type RuleObserver func(rule string, assigned int)

type buildConfig struct {
	observe RuleObserver
}

// BuildOption configures a build.
type BuildOption func(*buildConfig)

// WithRuleObserver reports every applied rule to fn.
func WithRuleObserver(fn RuleObserver) BuildOption {
	return func(bc *buildConfig) {
		bc.observe = fn
	}
}

// Build derives every particle record from the taxonomy using DefaultRules.
func Build(t *Taxonomy, c Constants, opts ...BuildOption) (*Registry, error) {
	return BuildWithRules(t, c, DefaultRules(), opts...)
}

// MustBuild is Build that panics on a construction defect.
func MustBuild(t *Taxonomy, c Constants) *Registry {
	reg, err := Build(t, c)
	if err != nil {
		panic(fmt.Sprintf("particle: %v", err))
	}
	return reg
}

// BuildWithRules initializes an empty draft for every symbol in t.Everything(),
// applies rules in order and verifies completeness. No registry is returned
// if any record is missing a required field.
func BuildWithRules(t *Taxonomy, c Constants, rules []Rule, opts ...BuildOption) (*Registry, error) {
	if t == nil {
		return nil, ErrNilTaxonomy
	}
	if c == nil {
		return nil, ErrNilConstants
	}

	var bc buildConfig
	for _, opt := range opts {
		opt(&bc)
	}

	e := env{taxonomy: t, constants: c}

	drafts := make(map[string]*draft, t.Everything().Len())
	for _, symbol := range t.Everything().Symbols() {
		drafts[symbol] = newDraft(symbol)
	}

	for _, rule := range rules {
		if rule.selector == nil || rule.assign == nil {
			continue
		}
		assigned := 0
		for _, symbol := range rule.selector(t).Symbols() {
			d, ok := drafts[symbol]
			if !ok {
				continue
			}
			rule.assign(e, symbol, d)
			assigned++
		}
		if bc.observe != nil {
			bc.observe(rule.Name, assigned)
		}
	}

	order := canonicalOrder(t)
	particles := make(map[string]*Particle, len(drafts))
	for _, symbol := range order {
		d := drafts[symbol]
		if missing := d.missing(requiredFields(t, symbol)); missing != 0 {
			return nil, &IncompleteError{Symbol: symbol, Missing: missing}
		}
		particles[symbol] = d.finalize()
	}

	return newRegistry(t, particles, order), nil
}

// canonicalOrder lists everything in name-table order, followed by any
// symbols the table does not cover, alphabetically.
func canonicalOrder(t *Taxonomy) []string {
	all := t.Everything()
	order := make([]string, 0, all.Len())
	seen := make(map[string]bool, all.Len())
	for _, sn := range symbolNames {
		if all.Contains(sn.symbol) {
			order = append(order, sn.symbol)
			seen[sn.symbol] = true
		}
	}
	for _, symbol := range all.Symbols() {
		if !seen[symbol] {
			order = append(order, symbol)
		}
	}
	return order
}
