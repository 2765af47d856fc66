// Package render draws a level through a small set of primitives so the
// drawing code does not depend on a graphics engine.
package render

import (
	"image/color"
)

// Renderer is the set of primitives the level drawing needs. Coordinates are
// screen pixels.
type Renderer interface {
	Size() (width, height int)
	Clear(clr color.Color)
	FillRect(x, y, w, h float32, clr color.Color)
	FillRoundedRect(x, y, w, h, radius float32, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
	// DrawText draws s with its baseline at y.
	DrawText(s string, x, y float64, clr color.Color)
}

// View maps world coordinates to the screen: X/Y is the world-space top-left
// of the screen.
type View struct {
	X, Y float64
	Zoom float64
}

func (v View) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(x, y float64) (float32, float32) {
	z := v.zoom()
	return float32((x - v.X) * z), float32((y - v.Y) * z)
}

// Scale converts a world length to screen pixels.
func (v View) Scale(d float64) float32 {
	return float32(d * v.zoom())
}
