// Package ebitenrender implements render.Renderer on an ebiten image.
package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/worldlevel/render"
)

var _ render.Renderer = (*Renderer)(nil)

type Renderer struct {
	dst  *ebiten.Image
	face text.Face
}

func New(dst *ebiten.Image) *Renderer {
	return &Renderer{
		dst:  dst,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTarget switches the image subsequent calls draw on.
func (r *Renderer) SetTarget(dst *ebiten.Image) {
	r.dst = dst
}

func (r *Renderer) Size() (int, int) {
	b := r.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Renderer) Clear(clr color.Color) {
	r.dst.Fill(clr)
}

func (r *Renderer) FillRect(x, y, w, h float32, clr color.Color) {
	vector.FillRect(r.dst, x, y, w, h, clr, false)
}

// FillRoundedRect builds the shape from three rects and four corner circles.
// Overlaps double-blend, so callers should pass opaque colors.
func (r *Renderer) FillRoundedRect(x, y, w, h, radius float32, clr color.Color) {
	radius = min(radius, w/2, h/2)
	if radius <= 0 {
		r.FillRect(x, y, w, h, clr)
		return
	}
	vector.FillRect(r.dst, x+radius, y, w-2*radius, h, clr, false)
	vector.FillRect(r.dst, x, y+radius, radius, h-2*radius, clr, false)
	vector.FillRect(r.dst, x+w-radius, y+radius, radius, h-2*radius, clr, false)
	vector.FillCircle(r.dst, x+radius, y+radius, radius, clr, true)
	vector.FillCircle(r.dst, x+w-radius, y+radius, radius, clr, true)
	vector.FillCircle(r.dst, x+radius, y+h-radius, radius, clr, true)
	vector.FillCircle(r.dst, x+w-radius, y+h-radius, radius, clr, true)
}

func (r *Renderer) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(r.dst, x0, y0, x1, y1, width, clr, false)
}

func (r *Renderer) DrawText(s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-r.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.dst, s, r.face, op)
}
