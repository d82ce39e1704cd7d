package particle

// Particle is the finalized property record for one symbol.
// Records are created by Build and never modified afterwards.
type Particle struct {
	symbol       string
	name         string
	class        Class
	spin         Spin
	charge       int
	leptonNumber int
	baryonNumber int
	generation   int // 0 when not a lepton or antilepton
	mass         Mass
	halfLife     HalfLife
	antimatter   bool
}

// Symbol returns the registry key, e.g. "e-".
func (p *Particle) Symbol() string {
	return p.symbol
}

// Name returns the human-readable name, e.g. "electron".
func (p *Particle) Name() string {
	return p.name
}

// Class returns the base classification.
func (p *Particle) Class() Class {
	return p.class
}

// Spin returns the intrinsic spin.
func (p *Particle) Spin() Spin {
	return p.spin
}

// Charge returns the electric charge in elementary-charge units.
func (p *Particle) Charge() int {
	return p.charge
}

// LeptonNumber returns -1, 0 or 1.
func (p *Particle) LeptonNumber() int {
	return p.leptonNumber
}

// BaryonNumber returns -1, 0 or 1.
func (p *Particle) BaryonNumber() int {
	return p.baryonNumber
}

// Generation returns the lepton family index (1, 2 or 3).
// ok is false for baryons and antibaryons.
func (p *Particle) Generation() (generation int, ok bool) {
	return p.generation, p.generation != 0
}

// Mass returns the mass, possibly the unknown sentinel.
func (p *Particle) Mass() Mass {
	return p.mass
}

// HalfLife returns the half-life, possibly the stable sentinel.
func (p *Particle) HalfLife() HalfLife {
	return p.halfLife
}

// IsAntimatter reports whether the particle is an antiparticle.
func (p *Particle) IsAntimatter() bool {
	return p.antimatter
}

// Equal compares two records field for field.
func (p *Particle) Equal(other *Particle) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// draft is the mutable record the rules write into while building.
// set tracks which fields have been assigned so completeness can be checked.
type draft struct {
	Particle
	set Field
}

func newDraft(symbol string) *draft {
	return &draft{Particle: Particle{symbol: symbol}}
}

func (d *draft) setName(name string) {
	d.name = name
	d.set |= FieldName
}

func (d *draft) setClass(c Class) {
	d.class = c
	d.set |= FieldClass
}

func (d *draft) setSpin(s Spin) {
	d.spin = s
	d.set |= FieldSpin
}

func (d *draft) setCharge(q int) {
	d.charge = q
	d.set |= FieldCharge
}

func (d *draft) setLeptonNumber(n int) {
	d.leptonNumber = n
	d.set |= FieldLeptonNumber
}

func (d *draft) setBaryonNumber(n int) {
	d.baryonNumber = n
	d.set |= FieldBaryonNumber
}

func (d *draft) setGeneration(g int) {
	d.generation = g
	d.set |= FieldGeneration
}

func (d *draft) setMass(m Mass) {
	d.mass = m
	d.set |= FieldMass
}

func (d *draft) setHalfLife(h HalfLife) {
	d.halfLife = h
	d.set |= FieldHalfLife
}

func (d *draft) setAntimatter(a bool) {
	d.antimatter = a
	d.set |= FieldAntimatter
}

func (d *draft) has(f Field) bool {
	return d.set&f == f
}

// missing returns the required fields not yet assigned.
func (d *draft) missing(required Field) Field {
	return required &^ d.set
}

func (d *draft) finalize() *Particle {
	p := d.Particle
	return &p
}
