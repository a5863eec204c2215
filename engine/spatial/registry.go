// Package spatial provides the shared index of entity positions and
// metadata that targeting queries run against. A registry is an owned
// instance injected into the agents that need it; nothing here is a
// package-level singleton, so concurrent matches and tests stay
// isolated. Accessed only from the simulation goroutine, so no locks.
package spatial

import (
	"sort"

	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
)

// EntityKind classifies registry entries for targeting priority
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindTower
	KindMinion
	KindStructure
)

// Entry is the registry's view of one entity. Position is a copy of
// the entity's transform, never an alias of it: movement only reaches
// the registry through an explicit update.
type Entry struct {
	Position  geom.Vec3
	Team      core.Team
	Kind      EntityKind
	Health    int
	MaxHealth int
	HasHealth bool
	Alive     bool
}

// Result pairs an entry with its id for range queries
type Result struct {
	ID    string
	Entry Entry
}

// Registry indexes entity positions and combat metadata by id.
// Whoever spawns an entity registers it; removal rides the world's
// removal hook so entries cannot outlive their entity.
type Registry struct {
	entries map[string]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register inserts or overwrites an entry
func (r *Registry) Register(id string, e Entry) {
	r.entries[id] = e
}

// UpdatePosition mutates only the position of an existing entry.
// Unknown ids no-op: a missing id usually means the entity already
// despawned this frame.
func (r *Registry) UpdatePosition(id string, pos geom.Vec3) {
	e, ok := r.entries[id]
	if !ok {
		return
	}
	e.Position = pos
	r.entries[id] = e
}

// Metadata holds the mutable non-position fields for partial updates
type Metadata struct {
	Team      *core.Team
	Health    *int
	MaxHealth *int
	Alive     *bool
}

// UpdateMetadata merges the set fields into an existing entry;
// unknown ids no-op.
func (r *Registry) UpdateMetadata(id string, m Metadata) {
	e, ok := r.entries[id]
	if !ok {
		return
	}
	if m.Team != nil {
		e.Team = *m.Team
	}
	if m.Health != nil {
		e.Health = *m.Health
		e.HasHealth = true
	}
	if m.MaxHealth != nil {
		e.MaxHealth = *m.MaxHealth
		e.HasHealth = true
	}
	if m.Alive != nil {
		e.Alive = *m.Alive
	}
	r.entries[id] = e
}

// Remove deletes an entry; idempotent
func (r *Registry) Remove(id string) {
	delete(r.entries, id)
}

// Get returns an entry by id
func (r *Registry) Get(id string) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Len returns the number of entries, alive or not
func (r *Registry) Len() int { return len(r.entries) }

// EntitiesInRange returns all alive entities within XZ distance
// radius of origin, optionally excluding one team (pass the querying
// agent's own team to fetch only enemies). Ordering is the targeting
// tie-break: player entities first, then ascending health among
// entries that report health, so towers hit players before minions
// and finish the weakest target first.
func (r *Registry) EntitiesInRange(origin geom.Vec3, radius float64, exclude *core.Team) []Result {
	var out []Result
	for id, e := range r.entries {
		if !e.Alive {
			continue
		}
		if exclude != nil && e.Team == *exclude {
			continue
		}
		if geom.DistXZ(origin, e.Position) > radius {
			continue
		}
		out = append(out, Result{ID: id, Entry: e})
	}
	// Deterministic base order before priority sorting
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Entry, out[j].Entry
		ap, bp := a.Kind == KindPlayer, b.Kind == KindPlayer
		if ap != bp {
			return ap
		}
		if a.HasHealth && b.HasHealth {
			return a.Health < b.Health
		}
		return a.HasHealth && !b.HasHealth
	})
	return out
}

// ExcludeTeam is a convenience for the exclude parameter
func ExcludeTeam(t core.Team) *core.Team { return &t }
