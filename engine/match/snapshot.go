package match

import (
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

// HUD is a render-facing snapshot of match state, rebuilt on demand
// so the renderer never reaches into live components.
type HUD struct {
	Player    PlayerHUD
	Monuments [2]MonumentHUD
	Minions   [2]int
	Over      bool
	Winner    core.Team
	Tick      uint64
}

type PlayerHUD struct {
	Health    int
	MaxHealth int
	Level     core.BarLevel
	Dead      bool
	RespawnIn float64 // seconds, 0 when alive
	Team      core.Team
}

type MonumentHUD struct {
	Health    int
	MaxHealth int
	Level     core.BarLevel
	Destroyed bool
}

// Dot is one minimap marker.
type Dot struct {
	X, Z float64
	Team core.Team
	Kind spatial.EntityKind
}

// Snapshot assembles the HUD from current world state.
func (m *Match) Snapshot() HUD {
	w := m.Loop.World
	hud := HUD{Tick: w.TickCount, Over: m.over, Winner: m.winner}

	hp := w.Get(m.player, core.CompHealth).(*core.Health)
	av := w.Get(m.player, core.CompAvatar).(*core.Avatar)
	hud.Player = PlayerHUD{
		Health:    hp.Current,
		MaxHealth: hp.Max,
		Level:     core.HealthBarLevel(hp.Ratio()),
		Dead:      av.Dead(),
		RespawnIn: float64(av.RespawnLeft) / m.cfg.Match.TickRate,
		Team:      w.Get(m.player, core.CompOwner).(*core.Owner).Team,
	}

	for _, team := range core.Teams() {
		mh := w.Get(m.monuments[team], core.CompHealth).(*core.Health)
		hud.Monuments[team] = MonumentHUD{
			Health:    mh.Current,
			MaxHealth: mh.Max,
			Level:     core.HealthBarLevel(mh.Ratio()),
			Destroyed: mh.Destroyed,
		}
		hud.Minions[team] = m.minionCount[team]
	}
	return hud
}

// Minimap lists a marker for every live registry entry. The query
// radius covers the whole arena from its center.
func (m *Match) Minimap() []Dot {
	center := geom.V3(m.Map.Width/2, 0, m.Map.Depth/2)
	var dots []Dot
	for _, r := range m.Registry.EntitiesInRange(center, m.Map.Width+m.Map.Depth, nil) {
		dots = append(dots, Dot{
			X:    r.Entry.Position.X,
			Z:    r.Entry.Position.Z,
			Team: r.Entry.Team,
			Kind: r.Entry.Kind,
		})
	}
	return dots
}
