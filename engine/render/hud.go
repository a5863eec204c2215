package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/match"
	"github.com/lanecraft/moba-engine/engine/spatial"
)

const minimapSize = 120

// DrawHUD renders the overlay: top status bar, the minimap and the
// game-over banner.
func (r *Renderer) DrawHUD(screen *ebiten.Image, m *match.Match) {
	hud := m.Snapshot()

	vector.DrawFilledRect(screen, 0, 0, float32(r.Camera.ScreenW), 24,
		color.RGBA{0, 0, 0, 180}, false)
	status := fmt.Sprintf("HP %d/%d | ally monument %d | enemy monument %d | minions %d vs %d",
		hud.Player.Health, hud.Player.MaxHealth,
		hud.Monuments[core.TeamAlly].Health,
		hud.Monuments[core.TeamEnemy].Health,
		hud.Minions[core.TeamAlly], hud.Minions[core.TeamEnemy])
	if hud.Player.Dead {
		status = fmt.Sprintf("DEAD, respawn in %.1fs | %s", hud.Player.RespawnIn, status)
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 4)

	r.drawMinimap(screen, m)

	if hud.Over {
		r.drawBanner(screen, fmt.Sprintf("%s team wins! press R to restart", hud.Winner))
	}
}

func (r *Renderer) drawMinimap(screen *ebiten.Image, m *match.Match) {
	ox := float32(r.Camera.ScreenW - minimapSize - 10)
	oy := float32(r.Camera.ScreenH - minimapSize - 10)
	vector.DrawFilledRect(screen, ox, oy, minimapSize, minimapSize,
		color.RGBA{10, 16, 10, 220}, false)

	sx := minimapSize / float32(m.Map.Width)
	sy := minimapSize / float32(m.Map.Depth)
	for _, d := range m.Minimap() {
		c := color.RGBA{60, 110, 230, 255}
		if d.Team == core.TeamEnemy {
			c = color.RGBA{230, 60, 60, 255}
		}
		size := float32(2)
		if d.Kind == spatial.KindStructure || d.Kind == spatial.KindTower {
			size = 3
		}
		vector.DrawFilledRect(screen, ox+float32(d.X)*sx-size/2, oy+float32(d.Z)*sy-size/2,
			size, size, c, false)
	}
}

func (r *Renderer) drawBanner(screen *ebiten.Image, msg string) {
	w := float32(r.Camera.ScreenW)
	h := float32(r.Camera.ScreenH)
	vector.DrawFilledRect(screen, 0, h/2-30, w, 60, color.RGBA{0, 0, 0, 200}, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	x := (r.Camera.ScreenW - bounds.Dx()) / 2
	text.Draw(screen, msg, face, x, r.Camera.ScreenH/2+4, color.White)
}
