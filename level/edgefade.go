package level

import (
	"github.com/milk9111/worldlevel/common"
)

// EdgeFade tracks the alpha of the film drawn over the screen as the player
// nears or crosses the world boundary.
//
// Update is a frame-count smoother: one call is one smoothing step. It must be
// called exactly once per rendered frame for EdgeFadeLerp to mean what it
// says; there is no delta time.
type EdgeFade struct {
	width, height float64
	distance      float64
	maxAlpha      float64
	lerp          float64

	alpha float64
}

func NewEdgeFade(cfg Config) *EdgeFade {
	return &EdgeFade{
		width:    cfg.Width,
		height:   cfg.Height,
		distance: cfg.EdgeFadeDistance,
		maxAlpha: cfg.EdgeFadeMaxAlpha,
		lerp:     cfg.EdgeFadeLerp,
	}
}

// Target returns the alpha the film is heading toward for a player at
// (px, py). It is zero while the nearest boundary is at least the fade
// distance away and reaches the max alpha on or past a boundary.
func (f *EdgeFade) Target(px, py float64) float64 {
	minD := min(px, f.width-px, py, f.height-py)
	if minD >= f.distance {
		return 0
	}
	// distance is not guarded against zero; float division keeps the
	// result clamped to either end.
	t := common.Clamp(1-minD/f.distance, 0, 1)
	return t * f.maxAlpha
}

// Update advances the film alpha one frame toward the target for (px, py).
func (f *EdgeFade) Update(px, py float64) {
	f.alpha = common.Lerp(f.alpha, f.Target(px, py), f.lerp)
}

func (f *EdgeFade) Alpha() float64 {
	return f.alpha
}

func (f *EdgeFade) Reset() {
	f.alpha = 0
}
