package match

import (
	"go.uber.org/zap"

	"github.com/lanecraft/moba-engine/engine/arena"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/spatial"
	"github.com/lanecraft/moba-engine/engine/systems"
)

// Render-boundary palette: ally renders blue, enemy red. The
// simulation itself never branches on color.
var teamColor = [2]uint32{
	core.TeamAlly:  0x3060E0FF,
	core.TeamEnemy: 0xE03030FF,
}

// waveSystem counts the fixed interval down and spawns the next wave
// for both teams at once.
type waveSystem struct {
	m *Match
}

func (s *waveSystem) Priority() int { return 5 }

func (s *waveSystem) Update(w *core.World, dt float64) {
	if s.m.over {
		return
	}
	s.m.waveLeft--
	if s.m.waveLeft > 0 {
		return
	}
	s.m.waveLeft = s.m.cfg.Match.WaveIntervalTicks
	s.m.SpawnWave()
}

// SpawnWave spawns a full wave: the configured number of minions per
// lane for each team. A small fraction of spawns roll as monument
// rushers that skip lane pushing entirely.
func (m *Match) SpawnWave() {
	for _, team := range core.Teams() {
		for _, lane := range m.Map.Lanes {
			for i := 0; i < m.cfg.Match.MinionsPerWave; i++ {
				rush := m.rng.Float64() < m.cfg.Match.RushChance
				m.spawnMinion(team, lane, rush)
			}
		}
	}
	m.log.Info("wave spawned",
		zap.Int("ally", m.minionCount[core.TeamAlly]),
		zap.Int("enemy", m.minionCount[core.TeamEnemy]),
		zap.Uint64("tick", m.Loop.CurrentTick()))
}

func (m *Match) spawnMinion(team core.Team, lane arena.Lane, rush bool) core.EntityID {
	w := m.Loop.World
	cfg := m.cfg.Minion

	id := w.Spawn()
	sp := lane.Spawn(team)
	j := m.cfg.Match.SpawnJitter
	sp.X += (m.rng.Float64()*2 - 1) * j
	sp.Z += (m.rng.Float64()*2 - 1) * j
	sp = m.Map.Clamp(sp)
	sp.Y = m.Map.GroundHeight(sp.X, sp.Z)

	goal := lane.Goal(team)
	if rush {
		goal = m.Map.MonumentPos[team.Opponent()]
	}

	pos := &core.Position{Pos: sp}
	pos.Face(goal)
	w.Attach(id, pos)
	w.Attach(id, &core.Health{Current: cfg.MaxHealth, Max: cfg.MaxHealth})
	w.Attach(id, &core.Damageable{Scale: 1, Style: core.DestroyRemove})
	w.Attach(id, core.NewVisual(teamColor[team], 0.2))
	w.Attach(id, &core.Weapon{
		Damage:        cfg.Damage,
		Range:         cfg.AttackRange,
		CooldownTicks: cfg.CooldownTicks,
	})
	target := goal
	w.Attach(id, &core.Movable{Speed: cfg.Speed, Target: &target})
	w.Attach(id, &core.Owner{Team: team})
	w.Attach(id, &core.Minion{State: core.MinionAdvancing, Goal: goal, Lane: lane.Name})

	key := systems.RegistryKey("minion", id)
	w.Attach(id, &core.Tracked{Key: key})
	m.Registry.Register(key, spatial.Entry{
		Position:  sp,
		Team:      team,
		Kind:      spatial.KindMinion,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		HasHealth: true,
		Alive:     true,
	})

	m.minionCount[team]++
	m.Bus.Emit(core.Event{Type: core.EvtMinionSpawned, Tick: w.TickCount, Payload: id})
	return id
}

// spawnBase places one team's base: the cosmetic outer shell and the
// monument inside it. Only the monument is targetable, and it takes
// reduced damage so games do not end off a stray wave.
func (m *Match) spawnBase(team core.Team) {
	w := m.Loop.World
	center := m.Map.BaseCenter[team]
	center.Y = m.Map.PlatformHeight

	shell := w.Spawn()
	w.Attach(shell, &core.Position{Pos: center})
	w.Attach(shell, &core.Health{Current: m.cfg.Base.ShellHealth, Max: m.cfg.Base.ShellHealth})
	w.Attach(shell, &core.Damageable{Scale: 1, Style: core.DestroyCollapse})
	sv := core.NewVisual(teamColor[team], 0.1)
	sv.Scale = 3
	sv.BaseScale = 3
	w.Attach(shell, sv)
	w.Attach(shell, &core.Owner{Team: team})
	w.Attach(shell, &core.Structure{Kind: core.StructureBase})
	m.shells[team] = shell

	mon := w.Spawn()
	mp := m.Map.MonumentPos[team]
	mp.Y = m.Map.PlatformHeight
	w.Attach(mon, &core.Position{Pos: mp})
	w.Attach(mon, &core.Health{Current: m.cfg.Base.MonumentHealth, Max: m.cfg.Base.MonumentHealth})
	w.Attach(mon, &core.Damageable{Scale: m.cfg.Base.MonumentScale, Style: core.DestroyCollapse})
	w.Attach(mon, core.NewVisual(teamColor[team], 0.8))
	w.Attach(mon, &core.Owner{Team: team})
	w.Attach(mon, &core.Structure{Kind: core.StructureMonument})

	key := systems.RegistryKey("monument", mon)
	w.Attach(mon, &core.Tracked{Key: key})
	m.Registry.Register(key, spatial.Entry{
		Position:  mp,
		Team:      team,
		Kind:      spatial.KindStructure,
		Health:    m.cfg.Base.MonumentHealth,
		MaxHealth: m.cfg.Base.MonumentHealth,
		HasHealth: true,
		Alive:     true,
	})
	m.monuments[team] = mon
}

func (m *Match) spawnTowers(team core.Team) {
	w := m.Loop.World
	cfg := m.cfg.Tower
	for _, p := range m.Map.TowerPos[team] {
		id := w.Spawn()
		p.Y = m.Map.GroundHeight(p.X, p.Z)
		w.Attach(id, &core.Position{Pos: p})
		w.Attach(id, &core.Health{Current: cfg.MaxHealth, Max: cfg.MaxHealth})
		w.Attach(id, &core.Damageable{Scale: 1, Style: core.DestroyCollapse})
		tv := core.NewVisual(teamColor[team], 0.5)
		tv.Scale = 1.6
		tv.BaseScale = 1.6
		w.Attach(id, tv)
		w.Attach(id, &core.Weapon{
			Damage:        cfg.Damage,
			Range:         cfg.ShootingRange,
			CooldownTicks: cfg.CooldownTicks,
		})
		w.Attach(id, &core.Owner{Team: team})
		w.Attach(id, &core.Tower{
			Detecting:   true,
			DetectTicks: cfg.DetectTicks,
			DetectLeft:  cfg.DetectTicks,
		})

		key := systems.RegistryKey("tower", id)
		w.Attach(id, &core.Tracked{Key: key})
		m.Registry.Register(key, spatial.Entry{
			Position:  p,
			Team:      team,
			Kind:      spatial.KindTower,
			Health:    cfg.MaxHealth,
			MaxHealth: cfg.MaxHealth,
			HasHealth: true,
			Alive:     true,
		})
		m.towers[team] = append(m.towers[team], id)
	}
}

func (m *Match) spawnPlayer(team core.Team) {
	w := m.Loop.World
	cfg := m.cfg.Player

	id := w.Spawn()
	sp := m.Map.PlayerSpawn[team]
	sp.Y = m.Map.GroundHeight(sp.X, sp.Z)
	w.Attach(id, &core.Position{Pos: sp})
	w.Attach(id, &core.Health{Current: cfg.MaxHealth, Max: cfg.MaxHealth})
	w.Attach(id, &core.Damageable{Scale: 1, Style: core.DestroyHide})
	w.Attach(id, core.NewVisual(teamColor[team], 0.4))
	w.Attach(id, &core.Movable{Speed: cfg.Speed})
	w.Attach(id, &core.Owner{Team: team})
	w.Attach(id, &core.Avatar{
		Radius:       cfg.Radius,
		SprintMult:   cfg.SprintMult,
		Spawn:        sp,
		RespawnTicks: cfg.RespawnTicks,
	})

	key := systems.RegistryKey("player", id)
	w.Attach(id, &core.Tracked{Key: key})
	m.Registry.Register(key, spatial.Entry{
		Position:  sp,
		Team:      team,
		Kind:      spatial.KindPlayer,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		HasHealth: true,
		Alive:     true,
	})
	m.player = id
}
