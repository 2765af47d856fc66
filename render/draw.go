package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/milk9111/worldlevel/common"
	"github.com/milk9111/worldlevel/level"
)

var (
	BackdropColor = color.Gray{Y: 220}
	GridColor     = color.Gray{Y: 245}
	ObstacleColor = color.NRGBA{R: 170, G: 190, B: 210, A: 255}
	ZoneColor     = color.NRGBA{R: 255, G: 0, B: 0, A: 80}
	FilmColor     = color.NRGBA{R: 20, G: 20, B: 20}
	HUDColor      = color.Gray{Y: 20}
)

const (
	gridLineWidth = 1
	// maxGridLines bounds the lines drawn per axis; a denser grid is skipped.
	maxGridLines = 4096
)

// gridLines is the number of lines at 0, step, 2*step, ... up to and
// including extent, or 0 when there would be none or too many.
func gridLines(extent, step float64) int {
	if !(step > 0) || !(extent >= 0) {
		return 0
	}
	n := math.Floor(extent/step) + 1
	if !(n <= maxGridLines) {
		return 0
	}
	return int(n)
}

// DrawBackground clears the area outside the world.
func DrawBackground(r Renderer) {
	r.Clear(BackdropColor)
}

// DrawWorld draws the world rectangle, its grid, the obstacles and the
// highlighted zone.
func DrawWorld(r Renderer, cfg level.Config, v View) {
	x0, y0 := v.ToScreen(0, 0)
	r.FillRect(x0, y0, v.Scale(cfg.Width), v.Scale(cfg.Height), cfg.Background)

	for i, n := 0, gridLines(cfg.Width, cfg.GridStep); i < n; i++ {
		x := float64(i) * cfg.GridStep
		sx0, sy0 := v.ToScreen(x, 0)
		sx1, sy1 := v.ToScreen(x, cfg.Height)
		r.StrokeLine(sx0, sy0, sx1, sy1, gridLineWidth, GridColor)
	}
	for i, n := 0, gridLines(cfg.Height, cfg.GridStep); i < n; i++ {
		y := float64(i) * cfg.GridStep
		sx0, sy0 := v.ToScreen(0, y)
		sx1, sy1 := v.ToScreen(cfg.Width, y)
		r.StrokeLine(sx0, sy0, sx1, sy1, gridLineWidth, GridColor)
	}

	for _, o := range cfg.Obstacles {
		ox, oy := v.ToScreen(o.X, o.Y)
		r.FillRoundedRect(ox, oy, v.Scale(o.W), v.Scale(o.H), v.Scale(o.CornerRadius), ObstacleColor)
	}

	zx, zy := v.ToScreen(cfg.Zone.X, cfg.Zone.Y)
	r.FillRect(zx, zy, v.Scale(cfg.Zone.Size), v.Scale(cfg.Zone.Size), ZoneColor)
}

// DrawEdgeFilm covers the whole screen with the edge film at the given
// alpha (0-255).
func DrawEdgeFilm(r Renderer, alpha float64) {
	a := uint8(math.Round(common.Clamp(alpha, 0, 255)))
	if a == 0 {
		return
	}
	w, h := r.Size()
	clr := FilmColor
	clr.A = a
	r.FillRect(0, 0, float32(w), float32(h), clr)
}

// HUDState is what the HUD reports besides the level config.
type HUDState struct {
	Player    level.Point
	Camera    level.Point
	Zoom      float64
	InZone    bool
	EdgeAlpha float64
	Paused    bool
}

// HUDLines composes the HUD text. Coordinates are truncated toward zero.
func HUDLines(cfg level.Config, st HUDState) []string {
	lines := []string{
		"World level: JSON world + smooth camera (lerp).",
		fmt.Sprintf("camLerp(JSON): %v  Player: %d,%d  Cam: %d,%d",
			cfg.CameraLerp,
			int(st.Player.X), int(st.Player.Y),
			int(st.Camera.X), int(st.Camera.Y)),
		fmt.Sprintf("Edge film: %.1f/%v  In square: %t  Zoom: %.2f",
			st.EdgeAlpha, cfg.EdgeFadeMaxAlpha, st.InZone, st.Zoom),
	}
	if st.Paused {
		lines = append(lines, "Paused")
	}
	return lines
}

const (
	hudX       = 12
	hudTop     = 20
	hudSpacing = 20
)

func DrawHUD(r Renderer, lines []string) {
	for i, line := range lines {
		r.DrawText(line, hudX, float64(hudTop+hudSpacing*i), HUDColor)
	}
}
