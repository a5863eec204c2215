package systems

import (
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

// BindRegistry drops a tracked entity's registry entry when the world
// removes the entity, so the index can never outlive its owner.
// Registration stays with whoever spawned the entity.
func BindRegistry(w *core.World, reg *spatial.Registry) {
	w.OnRemoved(func(id core.EntityID) {
		if tc := w.Get(id, core.CompTracked); tc != nil {
			reg.Remove(tc.(*core.Tracked).Key)
		}
	})
}

// RegistrySyncSystem pushes every tracked entity's position and health
// into the spatial registry at the end of the tick, so scans next tick
// see a consistent snapshot. Registration stays with the owning agent;
// this system only refreshes live entries.
type RegistrySyncSystem struct {
	Registry *spatial.Registry
}

func NewRegistrySyncSystem(reg *spatial.Registry) *RegistrySyncSystem {
	return &RegistrySyncSystem{Registry: reg}
}

func (s *RegistrySyncSystem) Priority() int { return 80 }

func (s *RegistrySyncSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompTracked, core.CompPosition) {
		key := w.Get(id, core.CompTracked).(*core.Tracked).Key
		pos := w.Get(id, core.CompPosition).(*core.Position)
		s.Registry.UpdatePosition(key, pos.Pos)

		if hc := w.Get(id, core.CompHealth); hc != nil {
			h := hc.(*core.Health)
			alive := h.Alive()
			if av := w.Get(id, core.CompAvatar); av != nil && av.(*core.Avatar).Dead() {
				alive = false
			}
			s.Registry.UpdateMetadata(key, spatial.Metadata{
				Health: &h.Current,
				Alive:  &alive,
			})
		}
	}
}
