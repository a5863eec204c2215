package systems

import (
	"github.com/lanecraft/moba-engine/engine/config"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

const dt = 1.0 / 60

func step(w *core.World, n int) {
	for i := 0; i < n; i++ {
		w.Tick(dt)
	}
}

func track(w *core.World, reg *spatial.Registry, id core.EntityID, prefix string, kind spatial.EntityKind) {
	key := RegistryKey(prefix, id)
	w.Attach(id, &core.Tracked{Key: key})
	pos := w.Get(id, core.CompPosition).(*core.Position)
	team := w.Get(id, core.CompOwner).(*core.Owner).Team
	e := spatial.Entry{Position: pos.Pos, Team: team, Kind: kind, Alive: true}
	if hc := w.Get(id, core.CompHealth); hc != nil {
		h := hc.(*core.Health)
		e.Health = h.Current
		e.MaxHealth = h.Max
		e.HasHealth = true
	}
	reg.Register(key, e)
}

func spawnMinion(w *core.World, reg *spatial.Registry, team core.Team, at geom.Vec3) core.EntityID {
	cfg := config.Default().Minion
	id := w.Spawn()
	goal := geom.V3(at.X+60, 0, at.Z)
	w.Attach(id, &core.Position{Pos: at})
	w.Attach(id, &core.Health{Current: cfg.MaxHealth, Max: cfg.MaxHealth})
	w.Attach(id, &core.Damageable{Scale: 1, Style: core.DestroyRemove})
	w.Attach(id, core.NewVisual(0xFFFFFFFF, 0.2))
	w.Attach(id, &core.Weapon{Damage: cfg.Damage, Range: cfg.AttackRange, CooldownTicks: cfg.CooldownTicks})
	target := goal
	w.Attach(id, &core.Movable{Speed: cfg.Speed, Target: &target})
	w.Attach(id, &core.Owner{Team: team})
	w.Attach(id, &core.Minion{State: core.MinionAdvancing, Goal: goal})
	track(w, reg, id, "minion", spatial.KindMinion)
	return id
}

func spawnTower(w *core.World, reg *spatial.Registry, team core.Team, at geom.Vec3) core.EntityID {
	cfg := config.Default().Tower
	id := w.Spawn()
	w.Attach(id, &core.Position{Pos: at})
	w.Attach(id, &core.Health{Current: cfg.MaxHealth, Max: cfg.MaxHealth})
	w.Attach(id, &core.Damageable{Scale: 1, Style: core.DestroyCollapse})
	w.Attach(id, core.NewVisual(0xFFFFFFFF, 0.5))
	w.Attach(id, &core.Weapon{Damage: cfg.Damage, Range: cfg.ShootingRange, CooldownTicks: cfg.CooldownTicks})
	w.Attach(id, &core.Owner{Team: team})
	w.Attach(id, &core.Tower{Detecting: true, DetectTicks: cfg.DetectTicks, DetectLeft: cfg.DetectTicks})
	track(w, reg, id, "tower", spatial.KindTower)
	return id
}

func spawnAvatar(w *core.World, reg *spatial.Registry, team core.Team, at geom.Vec3) core.EntityID {
	cfg := config.Default().Player
	id := w.Spawn()
	w.Attach(id, &core.Position{Pos: at})
	w.Attach(id, &core.Health{Current: cfg.MaxHealth, Max: cfg.MaxHealth})
	w.Attach(id, &core.Damageable{Scale: 1, Style: core.DestroyHide})
	w.Attach(id, core.NewVisual(0xFFFFFFFF, 0.4))
	w.Attach(id, &core.Movable{Speed: cfg.Speed})
	w.Attach(id, &core.Owner{Team: team})
	w.Attach(id, &core.Avatar{
		Radius:       cfg.Radius,
		SprintMult:   cfg.SprintMult,
		Spawn:        at,
		RespawnTicks: cfg.RespawnTicks,
	})
	track(w, reg, id, "player", spatial.KindPlayer)
	return id
}

func spawnMonument(w *core.World, reg *spatial.Registry, team core.Team, at geom.Vec3) core.EntityID {
	cfg := config.Default().Base
	id := w.Spawn()
	w.Attach(id, &core.Position{Pos: at})
	w.Attach(id, &core.Health{Current: cfg.MonumentHealth, Max: cfg.MonumentHealth})
	w.Attach(id, &core.Damageable{Scale: cfg.MonumentScale, Style: core.DestroyCollapse})
	w.Attach(id, core.NewVisual(0xFFFFFFFF, 0.8))
	w.Attach(id, &core.Owner{Team: team})
	w.Attach(id, &core.Structure{Kind: core.StructureMonument})
	track(w, reg, id, "monument", spatial.KindStructure)
	return id
}

func health(w *core.World, id core.EntityID) *core.Health {
	return w.Get(id, core.CompHealth).(*core.Health)
}

func position(w *core.World, id core.EntityID) *core.Position {
	return w.Get(id, core.CompPosition).(*core.Position)
}
