package obj

import (
	"golang.org/x/image/colornames"

	"github.com/milk9111/worldlevel/level"
	"github.com/milk9111/worldlevel/render"
)

const (
	// DefaultPlayerSpeed is in world units per frame.
	DefaultPlayerSpeed = 6.0
	playerSize         = 24.0
)

// Player is a marker moved freely around the world. It is not clamped to the
// level bounds so it can walk into the edge film.
type Player struct {
	X, Y  float64
	Speed float64
}

func NewPlayer(x, y float64) *Player {
	return &Player{X: x, Y: y, Speed: DefaultPlayerSpeed}
}

func (p *Player) Update(in *Input) {
	if in == nil {
		return
	}
	p.X += in.MoveX * p.Speed
	p.Y += in.MoveY * p.Speed
}

func (p *Player) Pos() level.Point {
	return level.Point{X: p.X, Y: p.Y}
}

// Draw renders the player as a filled circle centered on its position.
func (p *Player) Draw(r render.Renderer, v render.View) {
	x, y := v.ToScreen(p.X-playerSize/2, p.Y-playerSize/2)
	s := v.Scale(playerSize)
	r.FillRoundedRect(x, y, s, s, s/2, colornames.Steelblue)
}
