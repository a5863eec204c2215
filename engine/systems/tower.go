package systems

import (
	"github.com/lanecraft/moba-engine/engine/config"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

// TowerSystem drives the stationary defenders. A tower only looks for
// targets on its periodic scan tick, not every simulation tick, so
// fire timing depends on where a hostile falls inside the scan window.
// The weapon cooldown counts down every tick regardless.
type TowerSystem struct {
	Registry *spatial.Registry
	Bus      *core.EventBus
	Cfg      config.Tower
}

func NewTowerSystem(reg *spatial.Registry, bus *core.EventBus, cfg config.Tower) *TowerSystem {
	return &TowerSystem{Registry: reg, Bus: bus, Cfg: cfg}
}

func (s *TowerSystem) Priority() int { return 22 }

func (s *TowerSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompTower, core.CompPosition, core.CompHealth) {
		t := w.Get(id, core.CompTower).(*core.Tower)
		hp := w.Get(id, core.CompHealth).(*core.Health)

		if hp.Destroyed {
			// The wreck stays in the world but never scans again
			t.StopDetection()
			continue
		}

		weap := w.Get(id, core.CompWeapon).(*core.Weapon)
		weap.CoolDown()

		if !t.Detecting {
			t.Alert = false
			continue
		}

		t.DetectLeft--
		if t.DetectLeft > 0 {
			continue
		}
		t.DetectLeft = t.DetectTicks

		pos := w.Get(id, core.CompPosition).(*core.Position)
		team := w.Get(id, core.CompOwner).(*core.Owner).Team
		results := s.Registry.EntitiesInRange(pos.Pos, weap.Range, spatial.ExcludeTeam(team))
		t.Alert = len(results) > 0
		if len(results) == 0 || !weap.Ready() {
			continue
		}

		// The registry orders results players-first, then by remaining
		// health; the tower simply takes the head of the list.
		target := core.EntityID(0)
		for _, r := range results {
			if tid := EntityFromKey(r.ID); tid != 0 && w.Alive(tid) {
				target = tid
				break
			}
		}
		if target == 0 {
			continue
		}

		tpos := w.Get(target, core.CompPosition)
		if tpos == nil {
			continue
		}
		at := tpos.(*core.Position).Pos
		pos.Face(at)
		FireProjectile(w, s.Bus, id, target, pos.Pos, at,
			s.Cfg.ProjectileSpeed, weap.Damage, 1.2, team)
		weap.Rearm()
	}
}
