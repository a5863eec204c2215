// Package arena describes the static battlefield: bounds, lanes,
// base placements and the obstacles movement has to respect. It holds
// no per-match state; agents consume it read-only.
package arena

import (
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
)

// Lane is a spawn/goal descriptor between the two bases. It is
// consumed once per wave spawn; minions own their goal afterwards.
type Lane struct {
	Name       string
	AllySpawn  geom.Vec3
	EnemySpawn geom.Vec3
}

// Spawn returns the lane's spawn point for a team
func (l Lane) Spawn(t core.Team) geom.Vec3 {
	if t == core.TeamAlly {
		return l.AllySpawn
	}
	return l.EnemySpawn
}

// Goal returns the lane end a team's minions push toward
func (l Lane) Goal(t core.Team) geom.Vec3 {
	if t == core.TeamAlly {
		return l.EnemySpawn
	}
	return l.AllySpawn
}

// Circle is a round static obstacle (trees, bushes)
type Circle struct {
	Center geom.Vec3
	Radius float64
}

// Rect is an axis-aligned static obstacle (rocks, walls)
type Rect struct {
	Center geom.Vec3
	HalfW  float64 // X half-extent
	HalfD  float64 // Z half-extent
}

// Map is the battlefield description. Team-indexed arrays use
// core.Team as the index.
type Map struct {
	Width, Depth float64
	Margin       float64 // playable-area inset from the edges

	Lanes []Lane

	BaseCenter     [2]geom.Vec3
	MonumentPos    [2]geom.Vec3
	PlayerSpawn    [2]geom.Vec3
	TowerPos       [2][]geom.Vec3
	PlatformRadius float64
	PlatformHeight float64
	RampWidth      float64 // height transition zone around the platform

	Circles []Circle
	Rects   []Rect
}

// Standard builds the two-base mirrored arena: ally base bottom-left,
// enemy base top-right, three lanes between them.
func Standard() *Map {
	m := &Map{
		Width:  100,
		Depth:  100,
		Margin: 1,

		PlatformRadius: 8,
		PlatformHeight: 1.2,
		RampWidth:      5,
	}
	m.BaseCenter[core.TeamAlly] = geom.V3(12, 0, 12)
	m.BaseCenter[core.TeamEnemy] = m.mirror(m.BaseCenter[core.TeamAlly])
	m.MonumentPos[core.TeamAlly] = geom.V3(12, 0, 12)
	m.MonumentPos[core.TeamEnemy] = m.mirror(m.MonumentPos[core.TeamAlly])
	m.PlayerSpawn[core.TeamAlly] = geom.V3(18, 0, 18)
	m.PlayerSpawn[core.TeamEnemy] = m.mirror(m.PlayerSpawn[core.TeamAlly])

	m.Lanes = []Lane{
		{Name: "top", AllySpawn: geom.V3(12, 0, 22), EnemySpawn: geom.V3(78, 0, 88)},
		{Name: "mid", AllySpawn: geom.V3(18, 0, 18), EnemySpawn: geom.V3(82, 0, 82)},
		{Name: "bottom", AllySpawn: geom.V3(22, 0, 12), EnemySpawn: geom.V3(88, 0, 78)},
	}

	allyTowers := []geom.Vec3{
		geom.V3(22, 0, 38), // top
		geom.V3(30, 0, 30), // mid
		geom.V3(38, 0, 22), // bottom
	}
	m.TowerPos[core.TeamAlly] = allyTowers
	for _, p := range allyTowers {
		m.TowerPos[core.TeamEnemy] = append(m.TowerPos[core.TeamEnemy], m.mirror(p))
	}

	m.Circles = []Circle{
		{Center: geom.V3(40, 0, 60), Radius: 2},
		{Center: geom.V3(60, 0, 40), Radius: 2},
		{Center: geom.V3(26, 0, 62), Radius: 1.5},
		{Center: geom.V3(74, 0, 38), Radius: 1.5},
	}
	m.Rects = []Rect{
		{Center: geom.V3(50, 0, 14), HalfW: 4, HalfD: 1.5},
		{Center: geom.V3(50, 0, 86), HalfW: 4, HalfD: 1.5},
	}
	return m
}

func (m *Map) mirror(p geom.Vec3) geom.Vec3 {
	return geom.V3(m.Width-p.X, p.Y, m.Depth-p.Z)
}

// Clamp confines a point to the playable area
func (m *Map) Clamp(p geom.Vec3) geom.Vec3 {
	p.X = geom.Clamp(p.X, m.Margin, m.Width-m.Margin)
	p.Z = geom.Clamp(p.Z, m.Margin, m.Depth-m.Margin)
	return p
}

// Blocked reports whether a disc of the given radius at p overlaps
// any static obstacle. Sum-of-radii for circles, inflated bounds for
// rects; no sliding resolution, callers reject the whole step.
func (m *Map) Blocked(p geom.Vec3, radius float64) bool {
	for _, c := range m.Circles {
		if geom.DistXZ(p, c.Center) < c.Radius+radius {
			return true
		}
	}
	for _, r := range m.Rects {
		dx := p.X - r.Center.X
		if dx < 0 {
			dx = -dx
		}
		dz := p.Z - r.Center.Z
		if dz < 0 {
			dz = -dz
		}
		if dx < r.HalfW+radius && dz < r.HalfD+radius {
			return true
		}
	}
	return false
}

// GroundHeight returns the terrain height at a ground-plane point.
// Base platforms are raised; the ramp zone interpolates smoothly so
// units climb instead of snapping.
func (m *Map) GroundHeight(x, z float64) float64 {
	h := 0.0
	p := geom.V3(x, 0, z)
	for _, center := range m.BaseCenter {
		d := geom.DistXZ(p, center)
		switch {
		case d <= m.PlatformRadius:
			h = max(h, m.PlatformHeight)
		case d <= m.PlatformRadius+m.RampWidth:
			t := 1 - (d-m.PlatformRadius)/m.RampWidth
			h = max(h, m.PlatformHeight*t)
		}
	}
	return h
}
