package obj

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/milk9111/worldlevel/common"
)

const (
	// frameDT is the tween step for one Update at the fixed 60 TPS loop.
	frameDT          = 1.0 / 60.0
	zoomTweenSeconds = 0.4
)

// Camera centers the view on a world coordinate and supports zoom.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.12
	smooth    float64
	zoomTween *gween.Tween
}

// NewCamera creates a camera with the given logical screen size, initial zoom
// and follow factor.
func NewCamera(screenW, screenH int, zoom, smooth float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom}
	c.SetSmooth(smooth)
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// SetZoomTarget eases the zoom toward z over a short tween. Non-positive
// values are ignored.
func (c *Camera) SetZoomTarget(z float64) {
	if z <= 0 {
		return
	}
	if c.zoomTween == nil && c.zoom == z {
		return
	}
	c.zoomTween = gween.New(float32(c.zoom), float32(z), zoomTweenSeconds, ease.OutQuad)
}

// Zooming reports whether a zoom tween is still running.
func (c *Camera) Zooming() bool {
	return c.zoomTween != nil
}

// Update advances the zoom tween one frame and moves the camera toward the
// target world coordinate. Call from the fixed-rate Update loop to get
// consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.zoomTween != nil {
		z, done := c.zoomTween.Update(frameDT)
		c.zoom = float64(z)
		if done {
			c.zoomTween = nil
		}
	}

	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
		return
	}
	c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
	c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
}

// SnapTo immediately centers the camera on the given world coordinates. Use
// this after a level load.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}
