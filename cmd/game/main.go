package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lanecraft/moba-engine/engine/config"
	"github.com/lanecraft/moba-engine/engine/core"
	"github.com/lanecraft/moba-engine/engine/input"
	"github.com/lanecraft/moba-engine/engine/match"
	"github.com/lanecraft/moba-engine/engine/render"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Game implements ebiten.Game interface
type Game struct {
	match    *match.Match
	renderer *render.Renderer
	input    *input.State
	log      *zap.Logger
}

func NewGame(cfg *config.Config, log *zap.Logger) *Game {
	m := match.New(cfg, log)
	g := &Game{
		match:    m,
		renderer: render.NewRenderer(ScreenWidth, ScreenHeight, m.Map),
		input:    input.NewState(),
		log:      log,
	}
	g.renderer.Camera.CenterOn(m.Map.Width/2, m.Map.Depth/2)
	return g
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.PauseJustPressed {
		switch g.match.Loop.State {
		case core.StatePlaying:
			g.match.Loop.Pause()
		case core.StatePaused:
			g.match.Loop.Play()
		}
	}
	if g.input.ResetJustPressed {
		g.match.Reset()
	}
	if g.input.SwapJustPressed {
		team := core.TeamAlly
		hud := g.match.Snapshot()
		if hud.Player.Team == core.TeamAlly {
			team = core.TeamEnemy
		}
		g.match.SetPlayerTeam(team)
	}
	if g.input.ScrollY != 0 {
		g.renderer.Camera.SetZoom(g.renderer.Camera.Zoom + g.input.ScrollY)
	}

	g.match.SetSprint(g.input.Sprint)
	if mx, my, ok := g.input.MoveOrder(); ok {
		wx, wz := g.renderer.Camera.ScreenToWorld(mx, my)
		g.match.MoveTo(wx, wz)
	}

	g.match.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.match)
	g.renderer.DrawHUD(screen, g.match)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	configPath := flag.String("config", "config.toml", "path to the gameplay config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Lanecraft")
	if err := ebiten.RunGame(NewGame(cfg, log)); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}

func newLogger(cfg config.Logging) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
