// Package match is the orchestrator: it owns the world, the event
// bus, the spatial registry and the wave schedule, and it is the only
// place the win condition is decided.
package match

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/lanecraft/moba-engine/engine/arena"
	"github.com/lanecraft/moba-engine/engine/config"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
	"github.com/lanecraft/moba-engine/engine/spatial"
	"github.com/lanecraft/moba-engine/engine/systems"
)

// Match wires every agent together for one running game. All access
// is single-goroutine: either the render loop or the headless runner
// drives it, never both.
type Match struct {
	Loop     *core.GameLoop
	Bus      *core.EventBus
	Registry *spatial.Registry
	Map      *arena.Map

	cfg *config.Config
	log *zap.Logger
	rng *rand.Rand

	players *systems.PlayerSystem

	player    core.EntityID
	monuments [2]core.EntityID
	shells    [2]core.EntityID
	towers    [2][]core.EntityID

	minionCount [2]int
	waveLeft    int

	over   bool
	winner core.Team
}

// New builds a match on the standard arena and spawns the persistent
// entities: both bases, their towers, and the player avatar on the
// ally team. The first wave timer starts immediately.
func New(cfg *config.Config, log *zap.Logger) *Match {
	m := &Match{
		Loop:     core.NewGameLoop(cfg.Match.TickRate),
		Bus:      core.NewEventBus(),
		Registry: spatial.NewRegistry(),
		Map:      arena.Standard(),
		cfg:      cfg,
		log:      log,
		rng:      rand.New(rand.NewSource(rand.Int63())),
		waveLeft: cfg.Match.WaveIntervalTicks,
	}
	m.Map.PlatformHeight = cfg.Base.PlatformHeight
	m.Map.RampWidth = cfg.Base.RampWidth

	w := m.Loop.World
	systems.BindRegistry(w, m.Registry)
	w.AddSystem(&waveSystem{m: m})
	w.AddSystem(systems.NewMovementSystem(m.Map, cfg.Player.ArriveEps))

	minions := systems.NewMinionSystem(m.Registry, m.Bus, cfg.Minion)
	minions.OnDestroy = func(_ core.EntityID, team core.Team) {
		m.minionCount[team]--
	}
	w.AddSystem(minions)

	w.AddSystem(systems.NewTowerSystem(m.Registry, m.Bus, cfg.Tower))
	m.players = systems.NewPlayerSystem(w, m.Map, m.Bus, cfg.Player)
	w.AddSystem(m.players)
	w.AddSystem(systems.NewProjectileSystem(m.Bus))
	w.AddSystem(systems.NewEffectSystem())
	w.AddSystem(systems.NewRegistrySyncSystem(m.Registry))
	w.AddSystem(&dispatchSystem{bus: m.Bus})

	m.Bus.On(core.EvtUnitDestroyed, m.onDestroyed)

	for _, team := range core.Teams() {
		m.spawnBase(team)
		m.spawnTowers(team)
	}
	m.spawnPlayer(core.TeamAlly)

	m.Loop.Play()
	return m
}

// Step advances exactly n fixed ticks. Test and headless drivers call
// this; the render loop calls Update instead.
func (m *Match) Step(n int) { m.Loop.Step(n) }

// Update advances the simulation by wall-clock time and returns the
// render interpolation alpha.
func (m *Match) Update() float64 { return m.Loop.Update() }

// Outcome reports whether the match has been decided and which team
// won the moment a monument fell.
func (m *Match) Outcome() (over bool, winner core.Team) {
	return m.over, m.winner
}

// MinionCount returns how many of a team's minions are alive.
func (m *Match) MinionCount(t core.Team) int { return m.minionCount[t] }

// Player returns the avatar's entity id.
func (m *Match) Player() core.EntityID { return m.player }

// MoveTo issues a click-to-move order for the avatar.
func (m *Match) MoveTo(x, z float64) {
	if m.over {
		return
	}
	m.players.MoveTo(m.Loop.World, m.player, geom.V3(x, 0, z))
}

// SetSprint toggles the avatar's speed boost.
func (m *Match) SetSprint(on bool) {
	m.players.SetSprint(m.Loop.World, m.player, on)
}

// SetPlayerTeam flips the avatar to the given team in place. Agent
// state survives; only allegiance, spawn point and colors change.
func (m *Match) SetPlayerTeam(t core.Team) {
	w := m.Loop.World
	own := w.Get(m.player, core.CompOwner).(*core.Owner)
	if own.Team == t {
		return
	}
	own.Team = t

	av := w.Get(m.player, core.CompAvatar).(*core.Avatar)
	av.Spawn = m.Map.PlayerSpawn[t]

	// Re-color in place; BaseColor too, so respawn restores the new
	// allegiance instead of the old one.
	vis := w.Get(m.player, core.CompVisual).(*core.Visual)
	vis.Color = teamColor[t]
	vis.BaseColor = teamColor[t]

	key := w.Get(m.player, core.CompTracked).(*core.Tracked).Key
	m.Registry.UpdateMetadata(key, spatial.Metadata{Team: &t})
	m.log.Info("player switched team", zap.String("team", t.String()))
}

// onDestroyed watches for a monument falling, which ends the match on
// the spot. Every other destruction is the owning agent's business.
func (m *Match) onDestroyed(e core.Event) {
	p := e.Payload.(core.DestroyedPayload)
	w := m.Loop.World

	sc := w.Get(p.ID, core.CompStructure)
	if sc == nil || sc.(*core.Structure).Kind != core.StructureMonument {
		return
	}
	m.Bus.Emit(core.Event{Type: core.EvtMonumentDestroyed, Tick: e.Tick, Payload: p})
	if m.over {
		return
	}
	m.over = true
	m.winner = p.Team.Opponent()
	m.Loop.State = core.StateGameOver
	m.Bus.Emit(core.Event{
		Type: core.EvtMatchOver, Tick: e.Tick,
		Payload: core.MatchOverPayload{Winner: m.winner},
	})
	m.log.Info("match over",
		zap.String("winner", m.winner.String()),
		zap.Uint64("tick", e.Tick))
}

// dispatchSystem drains the event queue at the end of every tick, so
// handlers always observe the tick's final state.
type dispatchSystem struct {
	bus *core.EventBus
}

func (s *dispatchSystem) Priority() int               { return 95 }
func (s *dispatchSystem) Update(*core.World, float64) { s.bus.Dispatch() }
