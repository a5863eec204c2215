package systems

import (
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
)

// EffectSystem advances short-lived visuals (explosions, floating
// damage numbers) and prunes the finished ones. Effects carry their
// own elapsed/duration state; nothing reschedules itself.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem { return &EffectSystem{} }

func (s *EffectSystem) Priority() int { return 60 }

func (s *EffectSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompEffect, core.CompPosition) {
		fx := w.Get(id, core.CompEffect).(*core.Effect)
		fx.Elapsed += dt
		if fx.Finished() {
			w.Destroy(id)
			continue
		}

		t := fx.Elapsed / fx.Duration
		v := w.Get(id, core.CompVisual).(*core.Visual)
		pos := w.Get(id, core.CompPosition).(*core.Position)
		switch fx.Kind {
		case core.FxExplosion:
			v.Scale = v.BaseScale * (1 + 2*t)
			v.Emissive = v.BaseEmissive * (1 - t)
		case core.FxDamageNumber:
			pos.Pos.Y += 2 * dt
			v.Emissive = v.BaseEmissive * (1 - t)
		}
	}
}

// SpawnExplosion drops a one-shot blast flash at a world point.
func SpawnExplosion(w *core.World, at geom.Vec3, scale float64) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Position{Pos: at})
	v := core.NewVisual(0xFF8020FF, 1.0)
	v.Scale = scale
	v.BaseScale = scale
	w.Attach(id, v)
	w.Attach(id, &core.Effect{Kind: core.FxExplosion, Duration: 0.4})
	return id
}

// SpawnDamageNumber floats the dealt amount above the victim.
func SpawnDamageNumber(w *core.World, at geom.Vec3, amount int) core.EntityID {
	id := w.Spawn()
	p := at
	p.Y += 1.5
	w.Attach(id, &core.Position{Pos: p})
	w.Attach(id, core.NewVisual(0xFFFFFFFF, 1.0))
	w.Attach(id, &core.Effect{Kind: core.FxDamageNumber, Duration: 0.8, Value: amount})
	return id
}
