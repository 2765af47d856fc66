package level

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/milk9111/worldlevel/common"
)

const (
	DefaultSchemaVersion    = 1
	DefaultWidth            = 2400.0
	DefaultHeight           = 1600.0
	DefaultGridStep         = 160.0
	DefaultCameraLerp       = 0.12
	DefaultCameraZoom       = 1.0
	DefaultEdgeFadeDistance = 160.0
	DefaultEdgeFadeMaxAlpha = 160.0
	DefaultEdgeFadeLerp     = 0.08
)

var (
	DefaultBackground = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	DefaultZone       = Zone{X: 800, Y: 600, Size: 400}
)

// Obstacle is an axis-aligned rounded rectangle. It is only drawn; nothing
// collides with it.
type Obstacle struct {
	X, Y         float64
	W, H         float64
	CornerRadius float64
}

// Config is the resolved, read-only description of a level.
type Config struct {
	SchemaVersion int

	Width    float64
	Height   float64
	GridStep float64
	// Background is the world fill. Alpha is always 255.
	Background color.RGBA

	Obstacles []Obstacle
	Zone      Zone

	// CameraLerp is the follow factor for the camera controller.
	CameraLerp float64
	// CameraZoom is the zoom the camera controller starts from.
	CameraZoom float64

	// EdgeFadeDistance is how far from a boundary, in world units, the
	// edge film starts to appear.
	EdgeFadeDistance float64
	// EdgeFadeMaxAlpha is the film alpha (0-255) at or past a boundary.
	EdgeFadeMaxAlpha float64
	// EdgeFadeLerp is the per-frame smoothing factor of the film alpha.
	EdgeFadeLerp float64
}

// DefaultConfig is the config of an empty document.
func DefaultConfig() Config {
	return LoadConfig(Document{})
}

// LoadConfig resolves every optional field of doc. It never fails and does
// not validate; see Validate.
func LoadConfig(doc Document) Config {
	cfg := Config{
		SchemaVersion:    DefaultSchemaVersion,
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		GridStep:         DefaultGridStep,
		Background:       DefaultBackground,
		Obstacles:        []Obstacle{},
		Zone:             DefaultZone,
		CameraLerp:       DefaultCameraLerp,
		CameraZoom:       DefaultCameraZoom,
		EdgeFadeDistance: DefaultEdgeFadeDistance,
		EdgeFadeMaxAlpha: DefaultEdgeFadeMaxAlpha,
		EdgeFadeLerp:     DefaultEdgeFadeLerp,
	}

	if doc.SchemaVersion != nil {
		cfg.SchemaVersion = *doc.SchemaVersion
	}

	if w := doc.World; w != nil {
		cfg.Width = orDefault(w.W, cfg.Width)
		cfg.Height = orDefault(w.H, cfg.Height)
		cfg.GridStep = orDefault(w.GridStep, cfg.GridStep)
		if len(w.BG) == 3 {
			cfg.Background = color.RGBA{R: channel(w.BG[0]), G: channel(w.BG[1]), B: channel(w.BG[2]), A: 255}
		}
	}

	for _, o := range doc.Obstacles {
		cfg.Obstacles = append(cfg.Obstacles, Obstacle{
			X:            orDefault(o.X, 0),
			Y:            orDefault(o.Y, 0),
			W:            orDefault(o.W, 0),
			H:            orDefault(o.H, 0),
			CornerRadius: orDefault(o.R, 0),
		})
	}

	if c := doc.Camera; c != nil {
		cfg.CameraLerp = orDefault(c.Lerp, cfg.CameraLerp)
		cfg.EdgeFadeDistance = orDefault(c.EdgeFadeDistance, cfg.EdgeFadeDistance)
		cfg.EdgeFadeMaxAlpha = orDefault(c.EdgeFadeMaxAlpha, cfg.EdgeFadeMaxAlpha)
		cfg.EdgeFadeLerp = orDefault(c.EdgeLerp, cfg.EdgeFadeLerp)
	}

	if sq := doc.BigSquare; sq != nil {
		cfg.Zone = Zone{
			X:    orDefault(sq.X, cfg.Zone.X),
			Y:    orDefault(sq.Y, cfg.Zone.Y),
			Size: orDefault(sq.Size, cfg.Zone.Size),
		}
	}

	return cfg
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	c.Obstacles = slices.Clone(c.Obstacles)
	if c.Obstacles == nil {
		c.Obstacles = []Obstacle{}
	}
	return c
}

// Validate reports values the edge film and camera cannot work with. Loading
// accepts them anyway.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.Width, c.Height))
	}
	if c.GridStep <= 0 {
		errs = append(errs, fmt.Errorf("gridStep must be positive, got %v", c.GridStep))
	}
	if c.EdgeFadeDistance <= 0 {
		errs = append(errs, fmt.Errorf("edgeFadeDistance must be positive, got %v", c.EdgeFadeDistance))
	}
	if c.EdgeFadeMaxAlpha < 0 || c.EdgeFadeMaxAlpha > 255 {
		errs = append(errs, fmt.Errorf("edgeFadeMaxAlpha must be in [0,255], got %v", c.EdgeFadeMaxAlpha))
	}
	if c.EdgeFadeLerp <= 0 || c.EdgeFadeLerp > 1 {
		errs = append(errs, fmt.Errorf("edgeLerp must be in (0,1], got %v", c.EdgeFadeLerp))
	}
	if c.CameraLerp <= 0 || c.CameraLerp > 1 {
		errs = append(errs, fmt.Errorf("camera lerp must be in (0,1], got %v", c.CameraLerp))
	}
	for i, o := range c.Obstacles {
		if o.CornerRadius < 0 {
			errs = append(errs, fmt.Errorf("obstacle %d: negative corner radius %v", i, o.CornerRadius))
		}
	}
	return errors.Join(errs...)
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func channel(v float64) uint8 {
	return uint8(math.Round(common.Clamp(v, 0, 255)))
}
