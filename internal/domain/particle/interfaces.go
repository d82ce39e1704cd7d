package particle

// Provider defines read-only access to a particle registry.
// This interface enables dependency injection and facilitates testing by
// allowing mock implementations to be substituted for the concrete Registry.
type Provider interface {
	// Get returns the record for symbol.
	// Returns ErrNotFound if the symbol is outside the registry domain.
	Get(symbol string) (*Particle, error)

	// Lookup returns the record for symbol and whether it exists.
	Lookup(symbol string) (*Particle, bool)

	// List returns every record in canonical order.
	List() []*Particle

	// InCategory returns the records belonging to a taxonomy category.
	// Returns ErrUnknownCategory for names outside the ten classifications.
	InCategory(c Category) ([]*Particle, error)

	// Taxonomy returns the classification sets the registry was built from.
	Taxonomy() *Taxonomy
}

// Compile-time check that Registry implements Provider.
var _ Provider = (*Registry)(nil)
