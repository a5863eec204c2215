package systems

import (
	"strconv"
	"strings"

	"github.com/lanecraft/moba-engine/engine/core"
)

// ApplyDamage applies damage to an entity through its Damageable
// strategy. Damage on an already-destroyed entity is a no-op, health
// clamps at zero, and the destroyed transition fires exactly once.
// Returns the amount actually subtracted.
func ApplyDamage(w *core.World, id core.EntityID, baseDamage int, bus *core.EventBus) int {
	hp := w.Get(id, core.CompHealth)
	if hp == nil {
		return 0
	}
	h := hp.(*core.Health)
	if h.Destroyed {
		return 0
	}

	dmg := baseDamage
	if d := w.Get(id, core.CompDamageable); d != nil {
		dmg = int(float64(baseDamage) * d.(*core.Damageable).Scale)
	}
	if dmg < 0 {
		dmg = 0
	}
	if dmg > h.Current {
		dmg = h.Current
	}
	h.Current -= dmg

	if bus != nil && dmg > 0 {
		bus.Emit(core.Event{Type: core.EvtUnitDamaged, Tick: w.TickCount, Payload: id})
	}

	if h.Current == 0 && !h.Destroyed {
		h.Destroyed = true
		applyDestructionVisual(w, id)
		if bus != nil {
			team := core.TeamAlly
			if own := w.Get(id, core.CompOwner); own != nil {
				team = own.(*core.Owner).Team
			}
			bus.Emit(core.Event{
				Type: core.EvtUnitDestroyed, Tick: w.TickCount,
				Payload: core.DestroyedPayload{ID: id, Team: team},
			})
		}
	}
	return dmg
}

// applyDestructionVisual performs the one-shot visual state change.
// Only a match reset reverses it, via Visual.Restore.
func applyDestructionVisual(w *core.World, id core.EntityID) {
	vc := w.Get(id, core.CompVisual)
	if vc == nil {
		return
	}
	v := vc.(*core.Visual)

	style := core.DestroyRemove
	if d := w.Get(id, core.CompDamageable); d != nil {
		style = d.(*core.Damageable).Style
	}
	switch style {
	case core.DestroyCollapse:
		v.Color = darken(v.Color)
		v.Emissive = 0
		v.Scale = v.BaseScale * 0.45
	case core.DestroyHide:
		v.Visible = false
	case core.DestroyRemove:
		// Removal and the explosion effect belong to the owning agent
	}
}

// darken halves each color channel, keeping alpha
func darken(rgba uint32) uint32 {
	r := ((rgba >> 24) & 0xFF) / 2
	g := ((rgba >> 16) & 0xFF) / 2
	b := ((rgba >> 8) & 0xFF) / 2
	return r<<24 | g<<16 | b<<8 | rgba&0xFF
}

// RegistryKey builds the spatial registry id for an entity
func RegistryKey(prefix string, id core.EntityID) string {
	return prefix + "-" + strconv.FormatUint(uint64(id), 10)
}

// EntityFromKey recovers the entity id from a registry key, or 0 if
// the key does not parse. Callers treat 0 as "no target".
func EntityFromKey(key string) core.EntityID {
	i := strings.LastIndexByte(key, '-')
	if i < 0 {
		return 0
	}
	n, err := strconv.ParseUint(key[i+1:], 10, 64)
	if err != nil {
		return 0
	}
	return core.EntityID(n)
}
