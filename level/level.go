// Package level holds a 2D world level: its resolved configuration, the
// highlighted zone and the edge film alpha derived from the player position
// each frame.
//
// A Level is not safe for concurrent use. The game loop owns it and calls
// Update once per frame.
package level

// Level composes a Config with the per-frame edge film state.
type Level struct {
	cfg  Config
	fade *EdgeFade
}

func New(cfg Config) *Level {
	cfg = cfg.Clone()
	return &Level{
		cfg:  cfg,
		fade: NewEdgeFade(cfg),
	}
}

// FromDocument resolves doc and builds a Level from it.
func FromDocument(doc Document) *Level {
	return New(LoadConfig(doc))
}

// Update recomputes the edge film for the player at (px, py). Call it once per
// frame.
func (l *Level) Update(px, py float64) {
	l.fade.Update(px, py)
}

// EdgeFilmAlpha is the current film alpha in [0, EdgeFadeMaxAlpha].
func (l *Level) EdgeFilmAlpha() float64 {
	return l.fade.Alpha()
}

// TargetAlpha is the alpha the film would settle at for a player held at
// (px, py).
func (l *Level) TargetAlpha(px, py float64) float64 {
	return l.fade.Target(px, py)
}

// Contains reports whether p is inside the highlighted zone.
func (l *Level) Contains(p Point) bool {
	return l.cfg.Zone.Contains(p)
}

// Config returns a copy of the level configuration.
func (l *Level) Config() Config {
	return l.cfg.Clone()
}

func (l *Level) Bounds() (w, h float64) {
	return l.cfg.Width, l.cfg.Height
}

func (l *Level) Zone() Zone {
	return l.cfg.Zone
}

func (l *Level) CameraLerp() float64 {
	return l.cfg.CameraLerp
}

func (l *Level) CameraZoom() float64 {
	return l.cfg.CameraZoom
}
