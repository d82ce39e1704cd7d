package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/particlezoo/internal/physconst"
	"github.com/zjrosen/particlezoo/internal/testutil"
)

func findModel(t *testing.T, snap *Snapshot, symbol string) ParticleModel {
	t.Helper()
	for _, m := range snap.Particles {
		if m.Symbol == symbol {
			return m
		}
	}
	t.Fatalf("symbol %s not in snapshot", symbol)
	return ParticleModel{}
}

func TestSnapshotRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestDB(t).Snapshots()
	repo.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	reg := testutil.RegistryFor(t, physconst.CODATA2018)

	id, err := repo.Save(ctx, reg, "CODATA2018")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	snap, err := repo.Find(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, snap.ID)
	require.Equal(t, "CODATA2018", snap.Release)
	require.Equal(t, time.Unix(1_700_000_000, 0).UTC(), snap.CreatedAt)
	require.Len(t, snap.Particles, reg.Len())

	for i, symbol := range reg.Symbols() {
		require.Equal(t, symbol, snap.Particles[i].Symbol, "canonical order preserved")
	}

	e := findModel(t, snap, "e-")
	require.Equal(t, "electron", e.Name)
	require.Equal(t, "1/2", e.Spin)
	require.Equal(t, -1, e.Charge)
	require.NotNil(t, e.MassValue)
	require.Equal(t, 9.1093837015e-31, *e.MassValue)
	require.Equal(t, "kg", *e.MassUnit)
	require.Nil(t, e.HalfLifeValue, "stable is NULL")
	require.EqualValues(t, 1, *e.Generation)
	require.False(t, e.Antimatter)

	nu := findModel(t, snap, "anti_nu_e")
	require.Nil(t, nu.MassValue, "unknown mass is NULL")
	require.True(t, nu.Antimatter)

	n := findModel(t, snap, "n")
	require.Nil(t, n.Generation)
	require.Equal(t, 881.5, *n.HalfLifeValue)
	require.Equal(t, "s", *n.HalfLifeUnit)

	require.Equal(t, []string{"n", "p+"}, snap.Categories["baryon"])
	require.Len(t, snap.Categories["fermion"], 16)
	_, hasBoson := snap.Categories["boson"]
	require.False(t, hasBoson, "empty categories have no rows")
}

func TestSnapshotRepository_FindMissing(t *testing.T) {
	repo := newTestDB(t).Snapshots()

	_, err := repo.Find(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSnapshotRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestDB(t).Snapshots()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	repo.now = func() time.Time { return time.Unix(100, 0) }
	older, err := repo.Save(ctx, testutil.RegistryFor(t, physconst.CODATA2014), "CODATA2014")
	require.NoError(t, err)

	repo.now = func() time.Time { return time.Unix(200, 0) }
	newer, err := repo.Save(ctx, testutil.RegistryFor(t, physconst.CODATA2018), "CODATA2018")
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newer, list[0].ID)
	require.Equal(t, "CODATA2018", list[0].Release)
	require.Equal(t, 16, list[0].ParticleCount)
	require.Equal(t, older, list[1].ID)
}

func TestSnapshotRepository_ListSameSecondNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestDB(t).Snapshots()
	repo.now = func() time.Time { return time.Unix(100, 0) }

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		id, err := repo.Save(ctx, testutil.RegistryFor(t, physconst.CODATA2014), "CODATA2014")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(ids))
	for i, s := range list {
		require.Equal(t, ids[len(ids)-1-i], s.ID, "position %d", i)
	}
}

func TestSnapshotRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := db.Snapshots()

	id, err := repo.Save(ctx, testutil.RegistryFor(t, physconst.CODATA2014), "CODATA2014")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Find(ctx, id)
	require.ErrorIs(t, err, ErrSnapshotNotFound)

	var remaining int
	require.NoError(t, db.conn.QueryRow("SELECT COUNT(*) FROM particles").Scan(&remaining))
	require.Zero(t, remaining, "particles cascade with their snapshot")

	require.ErrorIs(t, repo.Delete(ctx, id), ErrSnapshotNotFound)
}

func TestSnapshotRepository_SaveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := newTestDB(t).Snapshots()
	_, err := repo.Save(ctx, testutil.RegistryFor(t, physconst.CODATA2014), "CODATA2014")
	require.Error(t, err)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}
