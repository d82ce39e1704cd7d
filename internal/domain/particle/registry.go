package particle

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when a symbol is outside the registry domain.
var ErrNotFound = errors.New("particle not found")

// Registry is the immutable symbol→Particle mapping produced by Build.
type Registry struct {
	taxonomy  *Taxonomy
	particles map[string]*Particle
	order     []string
}

func newRegistry(t *Taxonomy, particles map[string]*Particle, order []string) *Registry {
	return &Registry{
		taxonomy:  t,
		particles: particles,
		order:     order,
	}
}

// Get returns the record for symbol, or ErrNotFound.
func (r *Registry) Get(symbol string) (*Particle, error) {
	p, ok := r.particles[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}
	return p, nil
}

// Lookup returns the record for symbol and whether it exists.
func (r *Registry) Lookup(symbol string) (*Particle, bool) {
	p, ok := r.particles[symbol]
	return p, ok
}

// List returns every record in canonical order.
func (r *Registry) List() []*Particle {
	out := make([]*Particle, len(r.order))
	for i, symbol := range r.order {
		out[i] = r.particles[symbol]
	}
	return out
}

// Symbols returns every symbol in canonical order.
func (r *Registry) Symbols() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.order)
}

// InCategory returns the records whose symbol belongs to c, in canonical order.
// An empty category (boson) yields an empty, non-nil slice.
func (r *Registry) InCategory(c Category) ([]*Particle, error) {
	set, err := r.taxonomy.Category(c)
	if err != nil {
		return nil, err
	}
	out := make([]*Particle, 0, set.Len())
	for _, symbol := range r.order {
		if set.Contains(symbol) {
			out = append(out, r.particles[symbol])
		}
	}
	return out, nil
}

// Taxonomy returns the taxonomy the registry was built from.
func (r *Registry) Taxonomy() *Taxonomy {
	return r.taxonomy
}

// Lazy returns a function that builds the registry on first call and returns
// the same result on every later call. Concurrent first calls build once.
func Lazy(t *Taxonomy, c Constants) func() (*Registry, error) {
	return sync.OnceValues(func() (*Registry, error) {
		return Build(t, c)
	})
}
