package sqlite

import (
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
)

// SnapshotModel represents the database row for the snapshots table.
type SnapshotModel struct {
	ID            string
	Release       string
	ParticleCount int
	CreatedAt     int64 // Unix timestamp
}

// ParticleModel represents the database row for the particles table.
// Nullable columns are pointers: an unknown mass, a stable half-life and a
// missing generation are stored as NULL, never as zero.
type ParticleModel struct {
	SnapshotID    string
	Position      int
	Symbol        string
	Name          string
	Class         string
	Spin          string
	Charge        int
	LeptonNumber  int
	BaryonNumber  int
	Generation    *int64   // nullable
	MassValue     *float64 // nullable
	MassUnit      *string  // nullable
	HalfLifeValue *float64 // nullable
	HalfLifeUnit  *string  // nullable
	Antimatter    bool
}

// Snapshot is a stored registry with its memberships.
type Snapshot struct {
	ID         uuid.UUID
	Release    string
	CreatedAt  time.Time
	Particles  []ParticleModel
	Categories map[string][]string // category -> symbols, sorted
}

// SnapshotSummary is one row of ListSnapshots.
type SnapshotSummary struct {
	ID            uuid.UUID
	Release       string
	ParticleCount int
	CreatedAt     time.Time
}

// toParticleModel converts a domain Particle to a database row.
func toParticleModel(snapshotID string, position int, p *particle.Particle) ParticleModel {
	m := ParticleModel{
		SnapshotID:   snapshotID,
		Position:     position,
		Symbol:       p.Symbol(),
		Name:         p.Name(),
		Class:        string(p.Class()),
		Spin:         p.Spin().String(),
		Charge:       p.Charge(),
		LeptonNumber: p.LeptonNumber(),
		BaryonNumber: p.BaryonNumber(),
		Antimatter:   p.IsAntimatter(),
	}
	if g, ok := p.Generation(); ok {
		gen := int64(g)
		m.Generation = &gen
	}
	if q, ok := p.Mass().Value(); ok {
		value, unit := q.Value, string(q.Unit)
		m.MassValue = &value
		m.MassUnit = &unit
	}
	if q, ok := p.HalfLife().Value(); ok {
		value, unit := q.Value, string(q.Unit)
		m.HalfLifeValue = &value
		m.HalfLifeUnit = &unit
	}
	return m
}

// toSummary converts a snapshots row, tolerating a malformed id as uuid.Nil.
func (m SnapshotModel) toSummary() SnapshotSummary {
	id, _ := uuid.Parse(m.ID)
	return SnapshotSummary{
		ID:            id,
		Release:       m.Release,
		ParticleCount: m.ParticleCount,
		CreatedAt:     time.Unix(m.CreatedAt, 0).UTC(),
	}
}
