package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/1siamBot/arc-engine/engine/arena"
	"github.com/1siamBot/arc-engine/engine/audio"
	"github.com/1siamBot/arc-engine/engine/config"
	"github.com/1siamBot/arc-engine/engine/core"
	"github.com/1siamBot/arc-engine/engine/input"
	"github.com/1siamBot/arc-engine/engine/logging"
	"github.com/1siamBot/arc-engine/engine/render3d"
	"github.com/1siamBot/arc-engine/engine/ui"
)

const recentLogLines = 6

// sim is what the fixed-step loop advances: the scene, then the events it raised
type sim struct {
	scene *core.Scene
	bus   *core.EventBus
}

func (s sim) Update(dt float64) {
	s.scene.Update(dt)
	s.bus.Dispatch()
}

// Game implements ebiten.Game
type Game struct {
	cfg    config.Config
	log    *zap.Logger
	recent *logging.Recent

	arena  *arena.Arena
	raster *render3d.Rasterizer
	loop   *core.GameLoop
	bus    *core.EventBus
	player *core.Player
	keys   *input.Keyboard
	hud    *ui.HUD
	audio  *audio.AudioManager
}

func NewGame(cfg config.Config, log *zap.Logger, recent *logging.Recent) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		log:    log,
		recent: recent,
		bus:    core.NewEventBus(),
		player: core.NewPlayer("Player 1", cfg.Arena.Lives),
		keys:   input.NewKeyboard(),
		hud:    ui.NewHUD(cfg.Window.Width, cfg.Window.Height),
	}

	a, err := arena.Build(cfg, log.Named("arena"), g.bus)
	if err != nil {
		return nil, fmt.Errorf("building arena: %w", err)
	}
	g.arena = a

	g.raster = render3d.NewRasterizer(cfg.Window.Width, cfg.Window.Height)
	g.raster.CullBackFaces = cfg.Window.CullBackFaces
	g.raster.Wireframe = cfg.Window.Wireframe
	a.Scene.AddShader("default", g.raster)

	g.loop = core.NewGameLoop(sim{scene: a.Scene, bus: g.bus}, cfg.Loop.TickRate)
	g.player.Listen(g.bus)
	g.bus.On(core.EvtGameOver, func(core.Event) {
		g.loop.Finish(core.StateGameOver)
		g.log.Info("Game over", zap.Int("score", g.player.Score))
	})
	g.bus.On(core.EvtGameWon, func(core.Event) {
		g.loop.Finish(core.StateWon)
		g.log.Info("Tower cleared", zap.Int("score", g.player.Score), zap.Int("lives", g.player.Lives))
	})

	if cfg.Audio.Enabled {
		g.audio = audio.NewAudioManager(cfg.Audio.SampleRate, cfg.Audio.Volume, log.Named("audio"))
		g.audio.Listen(g.bus)
	}

	g.loop.Play()
	return g, nil
}

func (g *Game) Update() error {
	for _, ev := range g.keys.Poll() {
		if err := g.handleKey(ev); err != nil {
			return err
		}
	}
	g.loop.Update()

	if g.audio != nil {
		if e := g.arena.Camera.Entity(); e != nil {
			g.audio.Listener = e.WorldPosition()
		}
	}
	return nil
}

// handleKey runs the game-level bindings; the rest goes to the scene while
// the game is running.
func (g *Game) handleKey(ev core.KeyEvent) error {
	if ev.Action == core.ActionPress {
		switch ev.Key {
		case core.KeyEscape:
			return ebiten.Termination
		case core.KeyP:
			g.loop.TogglePause()
			return nil
		case core.KeyEnter:
			g.restart()
			return nil
		case core.KeyF1:
			g.hud.ShowHelp = !g.hud.ShowHelp
			return nil
		case core.KeyF2:
			g.hud.ShowLog = !g.hud.ShowLog
			return nil
		}
	}
	if g.loop.State == core.StatePlaying {
		g.arena.Scene.HandleKey(ev)
	}
	return nil
}

// restart starts a new game once the current one is over
func (g *Game) restart() {
	switch g.loop.State {
	case core.StateGameOver, core.StateWon:
	default:
		return
	}
	g.arena.Restart()
	g.player.Reset(g.cfg.Arena.Lives)
	g.loop.Play()
	g.log.Info("Game restarted")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.raster.SetTarget(screen)
	render3d.DrawBackdrop(screen)

	status := ui.Status{
		Player:    g.player,
		State:     g.loop.State,
		Remaining: g.arena.Tower.Remaining(),
		Tick:      g.loop.CurrentTick(),
		Log:       g.recent.Lines(),
	}
	if err := g.arena.Scene.Render(); err != nil {
		status.Diagnostic = err.Error()
	}
	g.hud.Draw(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.raster.Width || outsideHeight != g.raster.Height {
		g.raster.Resize(outsideWidth, outsideHeight)
		g.arena.Camera.SetViewport(outsideWidth, outsideHeight)
		g.hud.ScreenW, g.hud.ScreenH = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

func main() {
	f, err := NewFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: Config could not be loaded:\n\t%s\n", err.Error())
		os.Exit(1)
	}
	if f.windowed {
		cfg.Window.Fullscreen = false
	}
	if f.wireframe {
		cfg.Window.Wireframe = true
	}
	if f.dev {
		cfg.Log.Dev = true
	}

	recent := logging.NewRecent(recentLogLines)
	log, err := logging.Init(logging.Options{
		Dev:   cfg.Log.Dev,
		Level: cfg.Log.Level,
		Extra: []zapcore.Core{recent.Core(zapcore.WarnLevel)},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: Logger could not be built:\n\t%s\n", err.Error())
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	game, err := NewGame(cfg, log, recent)
	if err != nil {
		log.Fatal("Failed to start", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("Game stopped", zap.Error(err))
	}
}
