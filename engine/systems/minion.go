package systems

import (
	"github.com/lanecraft/moba-engine/engine/config"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

// engageLeeway widens the drop-target check past the acquisition
// radius so a target wobbling on the range boundary does not flap the
// state machine every tick.
const engageLeeway = 1.0

// MinionSystem drives the lane-pushing unit agent:
//
//	ADVANCING -> ENGAGING <-> ATTACKING -> DEAD
//
// Advancing minions walk their lane goal. A hostile inside attack
// range (monuments get an extended radius) pulls them into engaging;
// firing costs a cooldown and transitions to attacking. Losing the
// target resumes the advance. Death removes the entity from the world
// and from the spatial registry in the same tick.
type MinionSystem struct {
	Registry *spatial.Registry
	Bus      *core.EventBus
	Cfg      config.Minion

	// OnDestroy reports a minion leaving the world, for per-team
	// population bookkeeping.
	OnDestroy func(id core.EntityID, team core.Team)
}

func NewMinionSystem(reg *spatial.Registry, bus *core.EventBus, cfg config.Minion) *MinionSystem {
	return &MinionSystem{Registry: reg, Bus: bus, Cfg: cfg}
}

func (s *MinionSystem) Priority() int { return 20 }

func (s *MinionSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompMinion, core.CompPosition, core.CompHealth) {
		m := w.Get(id, core.CompMinion).(*core.Minion)
		pos := w.Get(id, core.CompPosition).(*core.Position)
		hp := w.Get(id, core.CompHealth).(*core.Health)
		weap := w.Get(id, core.CompWeapon).(*core.Weapon)
		mov := w.Get(id, core.CompMovable).(*core.Movable)
		team := w.Get(id, core.CompOwner).(*core.Owner).Team

		if hp.Destroyed {
			if m.State != core.MinionDead {
				s.kill(w, id, m, pos, team)
			}
			continue
		}

		weap.CoolDown()

		if m.TargetID != 0 && !s.targetValid(w, id, m.TargetID, pos, weap.Range) {
			m.TargetID = 0
			m.State = core.MinionAdvancing
			goal := m.Goal
			mov.Target = &goal
		}

		if m.TargetID == 0 {
			if tid := s.acquire(w, id, pos, team, weap.Range); tid != 0 {
				m.TargetID = tid
				m.State = core.MinionEngaging
				mov.Target = nil // hold position while fighting
			}
		}

		if m.TargetID == 0 {
			continue
		}

		tc := w.Get(m.TargetID, core.CompPosition)
		if tc == nil {
			m.TargetID = 0
			continue
		}
		tpos := tc.(*core.Position)
		pos.Face(tpos.Pos)
		if weap.Ready() {
			FireProjectile(w, s.Bus, id, m.TargetID, pos.Pos, tpos.Pos,
				s.Cfg.ProjectileSpeed, weap.Damage, 1.0, team)
			weap.Rearm()
			m.State = core.MinionAttacking
		} else {
			m.State = core.MinionEngaging
		}
	}
}

func (s *MinionSystem) kill(w *core.World, id core.EntityID, m *core.Minion, pos *core.Position, team core.Team) {
	m.State = core.MinionDead
	SpawnExplosion(w, pos.Pos, 1.2)
	w.Destroy(id)
	if s.OnDestroy != nil {
		s.OnDestroy(id, team)
	}
}

// targetValid keeps a combat target only while it exists, lives, and
// stays inside the engagement leash.
func (s *MinionSystem) targetValid(w *core.World, self, target core.EntityID, pos *core.Position, atkRange float64) bool {
	if !w.Alive(target) {
		return false
	}
	thp := w.Get(target, core.CompHealth)
	if thp == nil || thp.(*core.Health).Destroyed {
		return false
	}
	if av := w.Get(target, core.CompAvatar); av != nil && av.(*core.Avatar).Dead() {
		return false
	}
	tpos := w.Get(target, core.CompPosition)
	if tpos == nil {
		return false
	}
	leash := atkRange + engageLeeway
	if s.isMonument(w, target) {
		leash += s.Cfg.MonumentExtra
	}
	return pos.DistanceTo(tpos.(*core.Position)) <= leash
}

// acquire scans the registry for hostiles. Monuments aggro from
// further out than anything else; among the eligible, the nearest
// wins.
func (s *MinionSystem) acquire(w *core.World, self core.EntityID, pos *core.Position, team core.Team, atkRange float64) core.EntityID {
	results := s.Registry.EntitiesInRange(pos.Pos, atkRange+s.Cfg.MonumentExtra, spatial.ExcludeTeam(team))

	best := core.EntityID(0)
	bestDist := 0.0
	for _, r := range results {
		d := geom.DistXZ(pos.Pos, r.Entry.Position)
		reach := atkRange
		if r.Entry.Kind == spatial.KindStructure {
			reach += s.Cfg.MonumentExtra
		}
		if d > reach {
			continue
		}
		tid := EntityFromKey(r.ID)
		if tid == 0 || tid == self {
			continue
		}
		if best == 0 || d < bestDist {
			best = tid
			bestDist = d
		}
	}
	return best
}

func (s *MinionSystem) isMonument(w *core.World, id core.EntityID) bool {
	sc := w.Get(id, core.CompStructure)
	return sc != nil && sc.(*core.Structure).Kind == core.StructureMonument
}
