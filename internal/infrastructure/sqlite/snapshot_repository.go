package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/log"
)

// ErrSnapshotNotFound is returned when no snapshot has the requested id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

const particleColumns = `snapshot_id, position, symbol, name, class, spin, charge, lepton_number, baryon_number,
	generation, mass_value, mass_unit, half_life_value, half_life_unit, antimatter`

// SnapshotRepository stores and reads registry snapshots.
type SnapshotRepository struct {
	db  *sql.DB
	now func() time.Time
}

func newSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db, now: time.Now}
}

// scanParticle scans a row into a ParticleModel.
func scanParticle(scanner interface{ Scan(...any) error }) (ParticleModel, error) {
	var m ParticleModel
	err := scanner.Scan(
		&m.SnapshotID, &m.Position, &m.Symbol, &m.Name, &m.Class, &m.Spin,
		&m.Charge, &m.LeptonNumber, &m.BaryonNumber,
		&m.Generation, &m.MassValue, &m.MassUnit, &m.HalfLifeValue, &m.HalfLifeUnit,
		&m.Antimatter,
	)
	return m, err
}

// Save writes every record of reg, plus its category memberships, under a
// new snapshot id in a single transaction.
func (r *SnapshotRepository) Save(ctx context.Context, reg *particle.Registry, release string) (uuid.UUID, error) {
	id := uuid.New()
	sid := id.String()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, release, particle_count, created_at) VALUES (?, ?, ?, ?)`,
		sid, release, reg.Len(), r.now().Unix(),
	); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for i, p := range reg.List() {
		m := toParticleModel(sid, i, p)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO particles (`+particleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.SnapshotID, m.Position, m.Symbol, m.Name, m.Class, m.Spin,
			m.Charge, m.LeptonNumber, m.BaryonNumber,
			m.Generation, m.MassValue, m.MassUnit, m.HalfLifeValue, m.HalfLifeUnit,
			m.Antimatter,
		); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert particle %s: %w", m.Symbol, err)
		}
	}

	for _, c := range particle.AllCategories() {
		set, err := reg.Taxonomy().Category(c)
		if err != nil {
			return uuid.Nil, err
		}
		for _, symbol := range set.Symbols() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO particle_categories (snapshot_id, category, symbol) VALUES (?, ?, ?)`,
				sid, string(c), symbol,
			); err != nil {
				return uuid.Nil, fmt.Errorf("failed to insert category %s: %w", c, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	log.Info(log.CatExport, "saved snapshot", "id", sid, "release", release, "particles", reg.Len())
	return id, nil
}

// Find loads a snapshot with its records in canonical order.
// Returns ErrSnapshotNotFound if no snapshot has id.
func (r *SnapshotRepository) Find(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	var model SnapshotModel
	err := r.db.QueryRowContext(ctx,
		`SELECT id, release, particle_count, created_at FROM snapshots WHERE id = ?`, id.String(),
	).Scan(&model.ID, &model.Release, &model.ParticleCount, &model.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshot: %w", err)
	}

	snap := &Snapshot{
		ID:         id,
		Release:    model.Release,
		CreatedAt:  time.Unix(model.CreatedAt, 0).UTC(),
		Particles:  make([]ParticleModel, 0, model.ParticleCount),
		Categories: make(map[string][]string),
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+particleColumns+` FROM particles WHERE snapshot_id = ? ORDER BY position`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query particles: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		m, err := scanParticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan particle: %w", err)
		}
		snap.Particles = append(snap.Particles, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate particles: %w", err)
	}

	catRows, err := r.db.QueryContext(ctx,
		`SELECT category, symbol FROM particle_categories WHERE snapshot_id = ? ORDER BY category, symbol`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = catRows.Close() }()
	for catRows.Next() {
		var category, symbol string
		if err := catRows.Scan(&category, &symbol); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		snap.Categories[category] = append(snap.Categories[category], symbol)
	}
	if err := catRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return snap, nil
}

// List returns every snapshot, newest first. Saves within the same second
// are ordered by insertion (rowid).
func (r *SnapshotRepository) List(ctx context.Context) ([]SnapshotSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, release, particle_count, created_at FROM snapshots ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]SnapshotSummary, 0)
	for rows.Next() {
		var m SnapshotModel
		if err := rows.Scan(&m.ID, &m.Release, &m.ParticleCount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		out = append(out, m.toSummary())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return out, nil
}

// Delete removes a snapshot and its records.
// Returns ErrSnapshotNotFound if no snapshot has id.
func (r *SnapshotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	log.Info(log.CatExport, "deleted snapshot", "id", id.String())
	return nil
}
