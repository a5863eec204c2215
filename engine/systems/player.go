package systems

import (
	"github.com/lanecraft/moba-engine/engine/arena"
	"github.com/lanecraft/moba-engine/engine/config"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
)

// PlayerSystem owns avatar death and respawn. Avatars take combat
// damage exclusively through the projectile impact broadcast: any
// opposing impact within its blast radius hits them, which covers
// both aimed shots and splash with one rule.
type PlayerSystem struct {
	Map *arena.Map
	Bus *core.EventBus
	Cfg config.Player
}

func NewPlayerSystem(w *core.World, m *arena.Map, bus *core.EventBus, cfg config.Player) *PlayerSystem {
	s := &PlayerSystem{Map: m, Bus: bus, Cfg: cfg}
	bus.On(core.EvtProjectileImpact, func(e core.Event) {
		s.onImpact(w, e.Payload.(core.ImpactPayload))
	})
	return s
}

func (s *PlayerSystem) Priority() int { return 30 }

func (s *PlayerSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompAvatar, core.CompHealth, core.CompPosition) {
		av := w.Get(id, core.CompAvatar).(*core.Avatar)
		hp := w.Get(id, core.CompHealth).(*core.Health)

		if hp.Destroyed && av.RespawnLeft == 0 {
			s.die(w, id, av)
			continue
		}
		if av.RespawnLeft > 0 {
			av.RespawnLeft--
			if av.RespawnLeft == 0 {
				s.respawn(w, id, av)
			}
		}
	}
}

func (s *PlayerSystem) die(w *core.World, id core.EntityID, av *core.Avatar) {
	av.RespawnLeft = av.RespawnTicks
	av.Sprinting = false
	if mov := w.Get(id, core.CompMovable); mov != nil {
		mov.(*core.Movable).Target = nil
	}
	s.Bus.Emit(core.Event{Type: core.EvtPlayerDied, Tick: w.TickCount, Payload: id})
}

func (s *PlayerSystem) respawn(w *core.World, id core.EntityID, av *core.Avatar) {
	hp := w.Get(id, core.CompHealth).(*core.Health)
	hp.Restore()
	if vc := w.Get(id, core.CompVisual); vc != nil {
		vc.(*core.Visual).Restore()
	}
	pos := w.Get(id, core.CompPosition).(*core.Position)
	pos.Pos = av.Spawn
	pos.Pos.Y = s.Map.GroundHeight(pos.Pos.X, pos.Pos.Z)
	s.Bus.Emit(core.Event{Type: core.EvtPlayerRespawned, Tick: w.TickCount, Payload: id})
}

func (s *PlayerSystem) onImpact(w *core.World, imp core.ImpactPayload) {
	for _, id := range w.Query(core.CompAvatar, core.CompHealth, core.CompPosition) {
		av := w.Get(id, core.CompAvatar).(*core.Avatar)
		if av.Dead() {
			continue
		}
		team := w.Get(id, core.CompOwner).(*core.Owner).Team
		if team == imp.Team {
			continue
		}
		pos := w.Get(id, core.CompPosition).(*core.Position)
		if geom.DistXZ(pos.Pos, imp.Pos) > imp.Blast {
			continue
		}
		if dealt := ApplyDamage(w, id, imp.Damage, s.Bus); dealt > 0 {
			SpawnDamageNumber(w, pos.Pos, dealt)
		}
	}
}

// MoveTo issues a click-to-move order, clamped to the playable area.
// Orders are ignored while dead.
func (s *PlayerSystem) MoveTo(w *core.World, id core.EntityID, point geom.Vec3) {
	av := w.Get(id, core.CompAvatar)
	if av == nil || av.(*core.Avatar).Dead() {
		return
	}
	mov := w.Get(id, core.CompMovable)
	if mov == nil {
		return
	}
	p := s.Map.Clamp(point)
	mov.(*core.Movable).Target = &p
}

// SetSprint toggles the speed boost for subsequent movement.
func (s *PlayerSystem) SetSprint(w *core.World, id core.EntityID, on bool) {
	if av := w.Get(id, core.CompAvatar); av != nil {
		av.(*core.Avatar).Sprinting = on
	}
}
