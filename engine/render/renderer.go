package render

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lanecraft/moba-engine/engine/arena"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/match"
)

// Renderer draws the match top down with flat shapes: discs for
// units, rects for structures, bars above anything with a health
// pool.
type Renderer struct {
	Camera *Camera
}

func NewRenderer(screenW, screenH int, m *arena.Map) *Renderer {
	cam := NewCamera(screenW, screenH)
	cam.SetArenaBounds(m.Width, m.Depth)
	cam.CenterOn(m.Width/2, m.Depth/2)
	return &Renderer{Camera: cam}
}

// Draw renders the arena and every visible entity.
func (r *Renderer) Draw(screen *ebiten.Image, m *match.Match) {
	r.drawArena(screen, m.Map)
	r.drawEntities(screen, m)
}

func (r *Renderer) drawArena(screen *ebiten.Image, am *arena.Map) {
	screen.Fill(color.RGBA{24, 34, 24, 255})

	x0, y0 := r.Camera.WorldToScreen(0, 0)
	x1, y1 := r.Camera.WorldToScreen(am.Width, am.Depth)
	vector.DrawFilledRect(screen, float32(x0), float32(y0),
		float32(x1-x0), float32(y1-y0), color.RGBA{38, 52, 38, 255}, false)

	// Base platforms
	for _, c := range am.BaseCenter {
		sx, sy := r.Camera.WorldToScreen(c.X, c.Z)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy),
			float32(am.PlatformRadius*r.Camera.Zoom), color.RGBA{60, 60, 70, 255}, false)
	}

	// Static obstacles
	for _, c := range am.Circles {
		sx, sy := r.Camera.WorldToScreen(c.Center.X, c.Center.Z)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy),
			float32(c.Radius*r.Camera.Zoom), color.RGBA{30, 70, 30, 255}, false)
	}
	for _, rc := range am.Rects {
		sx, sy := r.Camera.WorldToScreen(rc.Center.X-rc.HalfW, rc.Center.Z-rc.HalfD)
		vector.DrawFilledRect(screen, float32(sx), float32(sy),
			float32(rc.HalfW*2*r.Camera.Zoom), float32(rc.HalfD*2*r.Camera.Zoom),
			color.RGBA{80, 72, 60, 255}, false)
	}
}

func (r *Renderer) drawEntities(screen *ebiten.Image, m *match.Match) {
	w := m.Loop.World
	for _, id := range w.Query(core.CompPosition, core.CompVisual) {
		v := w.Get(id, core.CompVisual).(*core.Visual)
		if !v.Visible {
			continue
		}
		pos := w.Get(id, core.CompPosition).(*core.Position)
		sx, sy := r.Camera.WorldToScreen(pos.Pos.X, pos.Pos.Z)
		radius := float32(v.Scale * r.Camera.Zoom * 0.6)

		if ec := w.Get(id, core.CompEffect); ec != nil {
			if label, ok := effectLabel(ec.(*core.Effect)); ok {
				ebitenutil.DebugPrintAt(screen, label, int(sx)-3*len(label), int(sy)-8)
				continue
			}
		}

		if w.Has(id, core.CompStructure) || w.Has(id, core.CompTower) {
			vector.DrawFilledRect(screen, float32(sx)-radius, float32(sy)-radius,
				radius*2, radius*2, rgba(v.Color), false)
		} else {
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius, rgba(v.Color), false)
		}

		if hc := w.Get(id, core.CompHealth); hc != nil {
			r.drawHealthBar(screen, float32(sx), float32(sy)-radius-6, hc.(*core.Health))
		}
	}
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, cx, cy float32, h *core.Health) {
	if h.Destroyed {
		return
	}
	const barW, barH = 24, 3
	ratio := h.Ratio()

	var fill color.RGBA
	switch core.HealthBarLevel(ratio) {
	case core.BarHealthy:
		fill = color.RGBA{40, 200, 60, 255}
	case core.BarWarning:
		fill = color.RGBA{230, 180, 30, 255}
	default:
		fill = color.RGBA{220, 40, 40, 255}
	}

	vector.DrawFilledRect(screen, cx-barW/2, cy, barW, barH, color.RGBA{0, 0, 0, 180}, false)
	vector.DrawFilledRect(screen, cx-barW/2, cy, float32(ratio)*barW, barH, fill, false)
}

// effectLabel returns the text an effect entity draws instead of a
// shape. Only floating damage numbers carry one.
func effectLabel(e *core.Effect) (string, bool) {
	if e.Kind != core.FxDamageNumber {
		return "", false
	}
	return strconv.Itoa(e.Value), true
}

func rgba(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}
