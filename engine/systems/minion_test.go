package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanecraft/moba-engine/engine/config"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

func newMinionWorld() (*core.World, *spatial.Registry, *core.EventBus, *MinionSystem) {
	w := core.NewWorld(60)
	reg := spatial.NewRegistry()
	BindRegistry(w, reg)
	bus := core.NewEventBus()
	ms := NewMinionSystem(reg, bus, config.Default().Minion)
	w.AddSystem(ms)
	w.AddSystem(NewProjectileSystem(bus))
	w.AddSystem(NewRegistrySyncSystem(reg))
	return w, reg, bus, ms
}

func minion(w *core.World, id core.EntityID) *core.Minion {
	return w.Get(id, core.CompMinion).(*core.Minion)
}

func TestMinionAdvancesWithoutHostiles(t *testing.T) {
	w, reg, _, _ := newMinionWorld()
	id := spawnMinion(w, reg, core.TeamAlly, geom.V3(0, 0, 0))

	step(w, 10)
	m := minion(w, id)
	assert.Equal(t, core.MinionAdvancing, m.State)
	assert.Zero(t, m.TargetID)
	assert.NotNil(t, w.Get(id, core.CompMovable).(*core.Movable).Target)
}

func TestMinionEngagesHostileInRange(t *testing.T) {
	w, reg, _, _ := newMinionWorld()
	ally := spawnMinion(w, reg, core.TeamAlly, geom.V3(0, 0, 0))
	enemy := spawnMinion(w, reg, core.TeamEnemy, geom.V3(4, 0, 0))
	w.Get(enemy, core.CompMovable).(*core.Movable).Target = nil

	step(w, 1)
	m := minion(w, ally)
	assert.Equal(t, enemy, m.TargetID)
	assert.Equal(t, core.MinionAttacking, m.State, "first shot fires immediately")
	assert.Nil(t, w.Get(ally, core.CompMovable).(*core.Movable).Target, "stands still while fighting")
	assert.False(t, w.Get(ally, core.CompWeapon).(*core.Weapon).Ready())

	step(w, 1)
	assert.Equal(t, core.MinionEngaging, minion(w, ally).State, "waits out the cooldown engaged")
}

func TestMinionIgnoresHostileOutOfRange(t *testing.T) {
	w, reg, _, _ := newMinionWorld()
	ally := spawnMinion(w, reg, core.TeamAlly, geom.V3(0, 0, 0))
	spawnMinion(w, reg, core.TeamEnemy, geom.V3(30, 0, 0))

	step(w, 1)
	assert.Zero(t, minion(w, ally).TargetID)
}

func TestMinionPrefersNearestHostile(t *testing.T) {
	w, reg, _, _ := newMinionWorld()
	ally := spawnMinion(w, reg, core.TeamAlly, geom.V3(0, 0, 0))
	spawnMinion(w, reg, core.TeamEnemy, geom.V3(4, 0, 0))
	near := spawnMinion(w, reg, core.TeamEnemy, geom.V3(2, 0, 0))

	step(w, 1)
	assert.Equal(t, near, minion(w, ally).TargetID)
}

func TestMinionResumesAdvanceWhenTargetDies(t *testing.T) {
	w, reg, bus, _ := newMinionWorld()
	ally := spawnMinion(w, reg, core.TeamAlly, geom.V3(0, 0, 0))
	enemy := spawnMinion(w, reg, core.TeamEnemy, geom.V3(4, 0, 0))
	w.Get(enemy, core.CompMovable).(*core.Movable).Target = nil

	step(w, 1)
	require.Equal(t, enemy, minion(w, ally).TargetID)

	ApplyDamage(w, enemy, 100, bus)
	step(w, 2)

	m := minion(w, ally)
	assert.Zero(t, m.TargetID)
	assert.Equal(t, core.MinionAdvancing, m.State)
	mov := w.Get(ally, core.CompMovable).(*core.Movable)
	require.NotNil(t, mov.Target)
	assert.Equal(t, m.Goal, *mov.Target)
}

func TestMinionAggroesMonumentFromExtendedRange(t *testing.T) {
	w, reg, _, _ := newMinionWorld()
	ally := spawnMinion(w, reg, core.TeamAlly, geom.V3(0, 0, 0))
	mon := spawnMonument(w, reg, core.TeamEnemy, geom.V3(12, 0, 0))
	// A plain unit at the same distance is out of reach
	far := spawnMinion(w, reg, core.TeamEnemy, geom.V3(0, 0, 12))
	w.Get(far, core.CompMovable).(*core.Movable).Target = nil

	step(w, 1)
	assert.Equal(t, mon, minion(w, ally).TargetID)
}

func TestMinionDeathRemovesEntityAndRegistryEntry(t *testing.T) {
	w, reg, bus, ms := newMinionWorld()
	var destroyed []core.Team
	ms.OnDestroy = func(_ core.EntityID, team core.Team) {
		destroyed = append(destroyed, team)
	}
	id := spawnMinion(w, reg, core.TeamEnemy, geom.V3(0, 0, 0))
	key := RegistryKey("minion", id)

	ApplyDamage(w, id, 100, bus)
	step(w, 1)

	assert.False(t, w.Alive(id))
	_, ok := reg.Get(key)
	assert.False(t, ok)
	assert.Equal(t, []core.Team{core.TeamEnemy}, destroyed)
	assert.NotEmpty(t, w.Query(core.CompEffect), "death leaves an explosion behind")
}

func TestOpposingMinionsFightToTheDeath(t *testing.T) {
	w, reg, _, _ := newMinionWorld()
	a := spawnMinion(w, reg, core.TeamAlly, geom.V3(0, 0, 0))
	b := spawnMinion(w, reg, core.TeamEnemy, geom.V3(4, 0, 0))
	w.Get(a, core.CompMovable).(*core.Movable).Target = nil
	w.Get(b, core.CompMovable).(*core.Movable).Target = nil

	// 100 health at 10 damage per second, plus flight time
	step(w, 60*12)

	assert.False(t, w.Alive(a))
	assert.False(t, w.Alive(b))
	assert.Empty(t, w.Query(core.CompMinion))
}
