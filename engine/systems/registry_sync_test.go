package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/geom"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

func TestWorldRemovalDropsRegistryEntry(t *testing.T) {
	w := core.NewWorld(60)
	reg := spatial.NewRegistry()
	BindRegistry(w, reg)

	id := spawnMinion(w, reg, core.TeamAlly, geom.V3(10, 0, 10))
	key := RegistryKey("minion", id)

	loose := w.Spawn()
	w.Attach(loose, &core.Position{})

	w.Destroy(id)
	w.Destroy(loose) // untracked removal must not touch the registry
	w.Flush()

	_, ok := reg.Get(key)
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
}
