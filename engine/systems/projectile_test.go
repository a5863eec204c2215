package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

func newProjectileWorld() (*core.World, *spatial.Registry, *core.EventBus) {
	w := core.NewWorld(60)
	bus := core.NewEventBus()
	w.AddSystem(NewProjectileSystem(bus))
	return w, spatial.NewRegistry(), bus
}

func TestProjectileHitsStationaryTarget(t *testing.T) {
	w, reg, bus := newProjectileWorld()
	target := spawnMinion(w, reg, core.TeamEnemy, geom.V3(10, 0, 0))
	w.Get(target, core.CompMovable).(*core.Movable).Target = nil

	FireProjectile(w, bus, 0, target, geom.V3(0, 0, 0), geom.V3(10, 0, 0), 18, 40, 1.0, core.TeamAlly)

	// 10 units at 18/s lands in well under a second
	step(w, 60)
	assert.Equal(t, 60, health(w, target).Current)
	assert.Zero(t, len(w.Query(core.CompProjectile)), "shot consumed on impact")
}

func TestProjectileMissesTargetThatMovedAway(t *testing.T) {
	w, reg, bus := newProjectileWorld()
	target := spawnMinion(w, reg, core.TeamEnemy, geom.V3(10, 0, 0))
	w.Get(target, core.CompMovable).(*core.Movable).Target = nil

	FireProjectile(w, bus, 0, target, geom.V3(0, 0, 0), geom.V3(10, 0, 0), 18, 40, 1.0, core.TeamAlly)

	// Teleport the target outside the blast radius before arrival
	position(w, target).Pos = geom.V3(10, 0, 5)

	step(w, 60)
	assert.Equal(t, 100, health(w, target).Current, "a dodged shot deals nothing")
}

func TestProjectileOnDeadTargetIsSafe(t *testing.T) {
	w, reg, bus := newProjectileWorld()
	target := spawnMinion(w, reg, core.TeamEnemy, geom.V3(10, 0, 0))
	w.Get(target, core.CompMovable).(*core.Movable).Target = nil

	FireProjectile(w, bus, 0, target, geom.V3(0, 0, 0), geom.V3(10, 0, 0), 18, 40, 1.0, core.TeamAlly)
	w.Destroy(target)

	step(w, 60) // must not panic, and the shot still resolves
	assert.Empty(t, w.Query(core.CompProjectile))
}

func TestProjectileImpactIsBroadcast(t *testing.T) {
	w, _, bus := newProjectileWorld()

	var impacts []core.ImpactPayload
	bus.On(core.EvtProjectileImpact, func(e core.Event) {
		impacts = append(impacts, e.Payload.(core.ImpactPayload))
	})

	FireProjectile(w, bus, 0, 0, geom.V3(0, 0, 0), geom.V3(6, 0, 0), 18, 25, 1.5, core.TeamEnemy)
	step(w, 30)
	bus.Dispatch()

	require.Len(t, impacts, 1)
	assert.Equal(t, geom.V3(6, 0, 0), impacts[0].Pos)
	assert.Equal(t, core.TeamEnemy, impacts[0].Team)
	assert.Equal(t, 25, impacts[0].Damage)
	assert.Equal(t, 1.5, impacts[0].Blast)
}

func TestProjectileFlightIsStraight(t *testing.T) {
	w, _, bus := newProjectileWorld()

	id := FireProjectile(w, bus, 0, 0, geom.V3(0, 0, 0), geom.V3(18, 0, 0), 18, 10, 1.0, core.TeamAlly)
	step(w, 30) // half a second at 18/s covers 9 units

	pos := position(w, id).Pos
	assert.InDelta(t, 9.0, pos.X, 0.01)
	assert.InDelta(t, 0.0, pos.Z, 1e-9)
}
