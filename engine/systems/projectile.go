package systems

import (
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
)

// ProjectileSystem advances in-flight shots toward the position their
// target occupied at fire time. Shots are not homing: if the target
// has moved outside the blast radius by the time the shot lands, it
// whiffs. Impacts are also broadcast so splash damage can be resolved
// by whoever listens.
type ProjectileSystem struct {
	Bus *core.EventBus
}

func NewProjectileSystem(bus *core.EventBus) *ProjectileSystem {
	return &ProjectileSystem{Bus: bus}
}

func (s *ProjectileSystem) Priority() int { return 40 }

func (s *ProjectileSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompProjectile, core.CompPosition) {
		proj := w.Get(id, core.CompProjectile).(*core.Projectile)
		pos := w.Get(id, core.CompPosition).(*core.Position)

		step := proj.Speed * dt
		dist := pos.Pos.Sub(proj.Impact).Len()
		if dist > step {
			dir := proj.Impact.Sub(pos.Pos).Normalize()
			pos.Pos = pos.Pos.Add(dir.Scale(step))
			continue
		}

		// Arrived this tick
		pos.Pos = proj.Impact
		s.Bus.Emit(core.Event{
			Type: core.EvtProjectileImpact, Tick: w.TickCount,
			Payload: core.ImpactPayload{
				Pos:    proj.Impact,
				Team:   proj.Team,
				Damage: proj.Damage,
				Blast:  proj.Blast,
			},
		})
		s.resolveHit(w, proj)
		SpawnExplosion(w, proj.Impact, 0.6)
		w.Destroy(id)
	}
}

// resolveHit applies the direct damage to the referenced target.
// Avatars are excluded here: they take splash through the impact
// broadcast, which covers the direct hit as well.
func (s *ProjectileSystem) resolveHit(w *core.World, proj *core.Projectile) {
	id := proj.TargetID
	if id == 0 || !w.Alive(id) {
		return
	}
	if w.Get(id, core.CompAvatar) != nil {
		return
	}
	tp := w.Get(id, core.CompPosition)
	if tp == nil {
		return
	}
	if geom.DistXZ(tp.(*core.Position).Pos, proj.Impact) > proj.Blast {
		return
	}
	if dealt := ApplyDamage(w, id, proj.Damage, s.Bus); dealt > 0 {
		SpawnDamageNumber(w, tp.(*core.Position).Pos, dealt)
	}
}

// FireProjectile spawns a shot from source toward the target's current
// position, which is frozen as the impact point.
func FireProjectile(w *core.World, bus *core.EventBus, sourceID, targetID core.EntityID, from, at geom.Vec3, speed float64, damage int, blast float64, team core.Team) core.EntityID {
	id := w.Spawn()
	pos := &core.Position{Pos: from}
	pos.Face(at)
	w.Attach(id, pos)
	w.Attach(id, &core.Projectile{
		SourceID: sourceID,
		TargetID: targetID,
		Impact:   at,
		Speed:    speed,
		Damage:   damage,
		Blast:    blast,
		Team:     team,
	})
	v := core.NewVisual(0xFFE080FF, 0.9)
	v.Scale = 0.25
	v.BaseScale = 0.25
	w.Attach(id, v)
	bus.Emit(core.Event{Type: core.EvtProjectileFired, Tick: w.TickCount, Payload: id})
	return id
}
