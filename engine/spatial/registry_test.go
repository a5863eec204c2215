package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
)

func entry(x, z float64, team core.Team, kind EntityKind, hp int) Entry {
	return Entry{
		Position:  geom.V3(x, 0, z),
		Team:      team,
		Kind:      kind,
		Health:    hp,
		MaxHealth: hp,
		HasHealth: true,
		Alive:     true,
	}
}

func TestEntitiesInRangeFiltersByDistanceAndTeam(t *testing.T) {
	r := NewRegistry()
	r.Register("minion-1", entry(1, 0, core.TeamEnemy, KindMinion, 100))
	r.Register("minion-2", entry(50, 50, core.TeamEnemy, KindMinion, 100))
	r.Register("minion-3", entry(2, 0, core.TeamAlly, KindMinion, 100))

	got := r.EntitiesInRange(geom.V3(0, 0, 0), 10, ExcludeTeam(core.TeamAlly))
	require.Len(t, got, 1)
	assert.Equal(t, "minion-1", got[0].ID)
}

func TestEntitiesInRangeOrdering(t *testing.T) {
	r := NewRegistry()
	r.Register("minion-1", entry(1, 0, core.TeamEnemy, KindMinion, 80))
	r.Register("minion-2", entry(2, 0, core.TeamEnemy, KindMinion, 20))
	r.Register("player-9", entry(3, 0, core.TeamEnemy, KindPlayer, 200))
	r.Register("tower-4", entry(4, 0, core.TeamEnemy, KindTower, 300))

	got := r.EntitiesInRange(geom.V3(0, 0, 0), 10, nil)
	require.Len(t, got, 4)

	// Players first, then everything else by remaining health.
	assert.Equal(t, "player-9", got[0].ID)
	assert.Equal(t, "minion-2", got[1].ID)
	assert.Equal(t, "minion-1", got[2].ID)
	assert.Equal(t, "tower-4", got[3].ID)
}

func TestEntitiesInRangeSkipsDead(t *testing.T) {
	r := NewRegistry()
	e := entry(1, 0, core.TeamEnemy, KindMinion, 0)
	e.Alive = false
	r.Register("minion-1", e)

	assert.Empty(t, r.EntitiesInRange(geom.V3(0, 0, 0), 10, nil))
}

func TestRangeIsPlanar(t *testing.T) {
	r := NewRegistry()
	e := entry(3, 0, core.TeamEnemy, KindMinion, 100)
	e.Position.Y = 500 // height must not affect range checks
	r.Register("minion-1", e)

	assert.Len(t, r.EntitiesInRange(geom.V3(0, 0, 0), 5, nil), 1)
}

func TestUpdateUnknownIDNoOps(t *testing.T) {
	r := NewRegistry()
	r.UpdatePosition("ghost-1", geom.V3(1, 2, 3))
	hp := 5
	r.UpdateMetadata("ghost-1", Metadata{Health: &hp})
	r.Remove("ghost-1")
	assert.Zero(t, r.Len())
}

func TestUpdateMetadataMergesPartially(t *testing.T) {
	r := NewRegistry()
	r.Register("minion-1", entry(0, 0, core.TeamEnemy, KindMinion, 100))

	hp := 40
	r.UpdateMetadata("minion-1", Metadata{Health: &hp})

	e, ok := r.Get("minion-1")
	require.True(t, ok)
	assert.Equal(t, 40, e.Health)
	assert.Equal(t, 100, e.MaxHealth, "unset fields keep their value")
	assert.Equal(t, core.TeamEnemy, e.Team)
}

func TestRemoveIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register("minion-1", entry(0, 0, core.TeamEnemy, KindMinion, 100))
	r.Remove("minion-1")
	r.Remove("minion-1")
	assert.Zero(t, r.Len())
}
