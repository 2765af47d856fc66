package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/worldlevel/level"
	"github.com/milk9111/worldlevel/levels"
	"github.com/milk9111/worldlevel/obj"
	"github.com/milk9111/worldlevel/render"
	"github.com/milk9111/worldlevel/render/ebitenrender"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// zoneZoom is the camera zoom while the player is inside the highlighted zone.
	zoneZoom = 1.25
)

type Game struct {
	frames int

	levelName string
	levelPath string
	level     *level.Level
	cfg       level.Config
	inZone    bool

	input    *obj.Input
	player   *obj.Player
	camera   *obj.Camera
	renderer *ebitenrender.Renderer

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	watcher      *levels.Watcher
	clipboardOK  bool
	clipboardErr error
}

func NewGame(levelName string, watch bool) *Game {
	g := &Game{
		levelName: levelName,
		levelPath: levels.Path(levelName),
		input:     obj.NewInput(),
		renderer:  ebitenrender.New(nil),
	}
	cfg, err := g.readConfig()
	if err != nil {
		log.Printf("failed to load level %q, using defaults: %v", levelName, err)
		cfg = level.DefaultConfig()
	}
	g.applyConfig(cfg)
	g.pauseUI = NewPauseUI(g)

	if watch {
		dir := filepath.Dir(g.levelPath)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			w, err := levels.NewWatcher(dir)
			if err != nil {
				log.Printf("level watcher disabled: %v", err)
			} else {
				g.watcher = w
			}
		}
	}
	return g
}

func (g *Game) readConfig() (level.Config, error) {
	doc, err := levels.Resolve(g.levelName)
	if err != nil {
		return level.Config{}, err
	}
	cfg := level.LoadConfig(doc)
	if err := cfg.Validate(); err != nil {
		log.Printf("level %q: %v", g.levelName, err)
	}
	return cfg, nil
}

// reloadLevel rebuilds the level from disk. On failure the running level is
// kept.
func (g *Game) reloadLevel() error {
	cfg, err := g.readConfig()
	if err != nil {
		return err
	}
	g.applyConfig(cfg)
	return nil
}

// applyConfig swaps in a new level. The edge film restarts from zero while
// the player and camera keep their positions.
func (g *Game) applyConfig(cfg level.Config) {
	g.level = level.New(cfg)
	g.cfg = g.level.Config()
	g.inZone = false

	spawnX, spawnY := cfg.Width/2, cfg.Height/2
	if g.player == nil {
		g.player = obj.NewPlayer(spawnX, spawnY)
	}
	if g.camera == nil {
		g.camera = obj.NewCamera(baseWidth, baseHeight, cfg.CameraZoom, cfg.CameraLerp)
		g.camera.SnapTo(spawnX, spawnY)
	} else {
		g.camera.SetSmooth(cfg.CameraLerp)
		g.camera.SetZoomTarget(cfg.CameraZoom)
	}
}

// drainReloads applies pending level file changes on the game loop.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !g.watches(name) {
				continue
			}
			log.Printf("reloading level from %s", name)
			if err := g.reloadLevel(); err != nil {
				log.Printf("reload %s failed, keeping current level: %v", name, err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("level watcher: %v", err)
		default:
			return
		}
	}
}

// watches reports whether changed is the file the current level was
// resolved from.
func (g *Game) watches(changed string) bool {
	abs, err := filepath.Abs(changed)
	if err != nil {
		return false
	}
	return abs == g.levelPath
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	g.drainReloads()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.input.CopyPressed {
		g.copyStatus()
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++

	g.player.Update(g.input)
	g.level.Update(g.player.X, g.player.Y)

	if in := g.level.Contains(g.player.Pos()); in != g.inZone {
		g.inZone = in
		if in {
			g.camera.SetZoomTarget(zoneZoom)
		} else {
			g.camera.SetZoomTarget(g.level.CameraZoom())
		}
	}
	g.camera.Update(g.player.X, g.player.Y)

	return nil
}

func (g *Game) view() render.View {
	x, y := g.camera.ViewTopLeft()
	return render.View{X: x, Y: y, Zoom: g.camera.Zoom()}
}

func (g *Game) hudState() render.HUDState {
	x, y := g.camera.ViewTopLeft()
	return render.HUDState{
		Player:    g.player.Pos(),
		Camera:    level.Point{X: x, Y: y},
		Zoom:      g.camera.Zoom(),
		InZone:    g.inZone,
		EdgeAlpha: g.level.EdgeFilmAlpha(),
		Paused:    g.paused,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	r := g.renderer
	r.SetTarget(screen)

	v := g.view()
	render.DrawBackground(r)
	render.DrawWorld(r, g.cfg, v)
	g.player.Draw(r, v)
	render.DrawEdgeFilm(r, g.level.EdgeFilmAlpha())
	render.DrawHUD(r, render.HUDLines(g.cfg, g.hudState()))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// copyStatus puts the HUD status lines on the system clipboard.
func (g *Game) copyStatus() {
	if !g.clipboardOK && g.clipboardErr == nil {
		if err := clipboard.Init(); err != nil {
			g.clipboardErr = err
			log.Printf("clipboard unavailable: %v", err)
		} else {
			g.clipboardOK = true
		}
	}
	if !g.clipboardOK {
		return
	}

	lines := render.HUDLines(g.cfg, g.hudState())
	var out []byte
	for _, l := range lines[1:] {
		out = append(out, l...)
		out = append(out, '\n')
	}
	clipboard.Write(clipboard.FmtText, out)
}

func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		log.Printf("close level watcher: %v", err)
	}
	g.watcher = nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
