// Package particle implements the domain layer for the fundamental-particle registry.
//
// This package follows the same layering as the rest of the domain code:
//   - Contains only pure Go code with standard library imports (plus the quantity value type)
//   - Defines value objects (SymbolSet, Spin, Mass, HalfLife) and the Particle entity
//   - Implements the taxonomy set algebra and the ordered derivation of particle records
//   - Has no knowledge of infrastructure concerns (config, caching, databases, output)
//
// # Taxonomy
//
// Taxonomy holds the ten named, possibly overlapping classifications of particle
// symbols. The four base sets (lepton, antilepton, baryon, antibaryon) are literals;
// the rest are computed by set algebra:
//
//	fermion    = lepton ∪ antilepton ∪ baryon ∪ antibaryon
//	boson      = ∅ (a legal, present category with no members)
//	matter     = lepton ∪ baryon
//	antimatter = antilepton ∪ antibaryon
//	everything = matter ∪ antimatter
//
// # Registry Builder
//
// Build applies an ordered list of Rules to a draft record per symbol. Later
// rules may overwrite fields set by earlier, more generic rules (the proton
// charge is the canonical example), so the order returned by DefaultRules is
// part of the contract. After the last rule a completeness check runs and any
// record with a missing field aborts the build with an IncompleteError.
//
// # Registry Collection
//
// Registry is the finished, immutable symbol→Particle mapping. Provider is the
// read-only interface it implements, enabling dependency injection in the
// application layer.
//
// # Import Aliasing
//
// The application layer has a package with the same name. When importing both,
// use aliasing to disambiguate:
//
//	import (
//	    domain "github.com/zjrosen/particlezoo/internal/domain/particle"
//	    app "github.com/zjrosen/particlezoo/internal/application/particle"
//	)
package particle
