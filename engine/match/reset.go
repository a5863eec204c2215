package match

import (
	"go.uber.org/zap"

	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

// Reset returns the match to its initial state without rebuilding the
// world: transient entities are cleared, persistent ones are restored
// in place, and the wave timer starts over.
func (m *Match) Reset() {
	w := m.Loop.World

	// Minions, projectiles and effects simply leave the world.
	for _, id := range w.Query(core.CompMinion) {
		w.Destroy(id)
	}
	for _, id := range w.Query(core.CompProjectile) {
		w.Destroy(id)
	}
	for _, id := range w.Query(core.CompEffect) {
		w.Destroy(id)
	}
	w.Flush()
	m.minionCount[core.TeamAlly] = 0
	m.minionCount[core.TeamEnemy] = 0

	for _, team := range core.Teams() {
		m.restoreStructure(m.shells[team])
		m.restoreStructure(m.monuments[team])
		for _, id := range m.towers[team] {
			m.restoreTower(id)
		}
	}
	m.restorePlayer()

	m.waveLeft = m.cfg.Match.WaveIntervalTicks
	m.over = false
	m.winner = core.TeamAlly
	m.Loop.Play()
	m.Bus.Emit(core.Event{Type: core.EvtMatchReset, Tick: w.TickCount})
	m.log.Info("match reset", zap.Uint64("tick", w.TickCount))
}

func (m *Match) restoreStructure(id core.EntityID) {
	w := m.Loop.World
	w.Get(id, core.CompHealth).(*core.Health).Restore()
	w.Get(id, core.CompVisual).(*core.Visual).Restore()
	m.refreshRegistry(id)
}

func (m *Match) restoreTower(id core.EntityID) {
	w := m.Loop.World
	m.restoreStructure(id)
	t := w.Get(id, core.CompTower).(*core.Tower)
	t.StartDetection()
	t.Alert = false
	w.Get(id, core.CompWeapon).(*core.Weapon).CooldownLeft = 0
}

func (m *Match) restorePlayer() {
	w := m.Loop.World
	id := m.player
	w.Get(id, core.CompHealth).(*core.Health).Restore()
	w.Get(id, core.CompVisual).(*core.Visual).Restore()

	av := w.Get(id, core.CompAvatar).(*core.Avatar)
	av.RespawnLeft = 0
	av.Sprinting = false

	pos := w.Get(id, core.CompPosition).(*core.Position)
	pos.Pos = av.Spawn
	pos.Pos.Y = m.Map.GroundHeight(pos.Pos.X, pos.Pos.Z)

	mov := w.Get(id, core.CompMovable).(*core.Movable)
	mov.Target = nil
	m.refreshRegistry(id)
}

// refreshRegistry re-syncs one entity's entry after a restore, so
// scans that run before the next sync pass already see it alive.
func (m *Match) refreshRegistry(id core.EntityID) {
	w := m.Loop.World
	tc := w.Get(id, core.CompTracked)
	if tc == nil {
		return
	}
	key := tc.(*core.Tracked).Key
	pos := w.Get(id, core.CompPosition).(*core.Position)
	h := w.Get(id, core.CompHealth).(*core.Health)
	alive := h.Alive()
	m.Registry.UpdatePosition(key, pos.Pos)
	m.Registry.UpdateMetadata(key, spatial.Metadata{
		Health: &h.Current,
		Alive:  &alive,
	})
}
