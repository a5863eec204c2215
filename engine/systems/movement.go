package systems

import (
	"github.com/lanecraft/moba-engine/engine/arena"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
)

// MovementSystem steers every Movable toward its current target point.
// Ground units follow the terrain height under them so base ramps work
// without any vertical physics.
type MovementSystem struct {
	Map      *arena.Map
	ArriveAt float64 // stop-and-clear radius around the target
}

func NewMovementSystem(m *arena.Map, arriveAt float64) *MovementSystem {
	return &MovementSystem{Map: m, ArriveAt: arriveAt}
}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompMovable, core.CompPosition) {
		mov := w.Get(id, core.CompMovable).(*core.Movable)
		if mov.Target == nil {
			continue
		}
		pos := w.Get(id, core.CompPosition).(*core.Position)
		target := *mov.Target

		speed := mov.Speed
		var av *core.Avatar
		if ac := w.Get(id, core.CompAvatar); ac != nil {
			av = ac.(*core.Avatar)
			if av.Dead() {
				continue
			}
			if av.Sprinting {
				speed *= av.SprintMult
			}
		}

		dist := geom.DistXZ(pos.Pos, target)
		step := speed * dt
		if dist <= s.ArriveAt || dist <= step {
			pos.Pos.X = target.X
			pos.Pos.Z = target.Z
			pos.Pos.Y = s.Map.GroundHeight(pos.Pos.X, pos.Pos.Z)
			mov.Target = nil
			continue
		}

		next := pos.Pos.Lerp(target, step/dist)

		// Static obstacles block the avatar outright; a rejected step
		// also cancels the order so the unit does not grind against
		// the wall.
		if av != nil && s.Map.Blocked(next, av.Radius) {
			mov.Target = nil
			continue
		}

		pos.Pos.X = next.X
		pos.Pos.Z = next.Z
		pos.Pos.Y = s.Map.GroundHeight(pos.Pos.X, pos.Pos.Z)
		pos.Face(target)
	}
}
