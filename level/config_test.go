package level

import (
	"image/color"
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	want := Config{
		SchemaVersion:    1,
		Width:            2400,
		Height:           1600,
		GridStep:         160,
		Background:       color.RGBA{R: 235, G: 235, B: 235, A: 255},
		Obstacles:        []Obstacle{},
		Zone:             Zone{X: 800, Y: 600, Size: 400},
		CameraLerp:       0.12,
		CameraZoom:       1,
		EdgeFadeDistance: 160,
		EdgeFadeMaxAlpha: 160,
		EdgeFadeLerp:     0.08,
	}

	cases := []struct {
		name string
		raw  string
		f    Format
	}{
		{"empty_json", `{}`, FormatJSON},
		{"empty_sections_json", `{"world":{},"camera":{},"bigSquare":{}}`, FormatJSON},
		{"unknown_keys_json", `{"title":"x","world":{"depth":3}}`, FormatJSON},
		{"empty_yaml", `{}`, FormatYAML},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(c.raw), c.f)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := LoadConfig(doc)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("defaults mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}

	if got := DefaultConfig(); !reflect.DeepEqual(got, want) {
		t.Fatalf("DefaultConfig mismatch: %+v", got)
	}
}

const sampleJSON = `{
  "schemaVersion": 2,
  "world": { "w": 3000, "bg": [10, 20, 30] },
  "obstacles": [
    { "x": 100, "y": 200, "w": 50, "h": 60, "r": 8 },
    { "x": 400, "y": 500, "w": 70, "h": 80 }
  ],
  "camera": { "lerp": 0.2, "edgeLerp": 0.5 },
  "bigSquare": { "x": 10, "size": 50 }
}`

const sampleYAML = `
schemaVersion: 2
world:
  w: 3000
  bg: [10, 20, 30]
obstacles:
  - {x: 100, y: 200, w: 50, h: 60, r: 8}
  - {x: 400, y: 500, w: 70, h: 80}
camera:
  lerp: 0.2
  edgeLerp: 0.5
bigSquare:
  x: 10
  size: 50
`

func TestLoadConfigPartialDocument(t *testing.T) {
	for _, c := range []struct {
		name string
		raw  string
		f    Format
	}{
		{"json", sampleJSON, FormatJSON},
		{"yaml", sampleYAML, FormatYAML},
	} {
		t.Run(c.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(c.raw), c.f)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			cfg := LoadConfig(doc)

			if cfg.SchemaVersion != 2 {
				t.Fatalf("expected schema 2, got %d", cfg.SchemaVersion)
			}
			if cfg.Width != 3000 || cfg.Height != DefaultHeight {
				t.Fatalf("expected 3000x%v, got %vx%v", DefaultHeight, cfg.Width, cfg.Height)
			}
			if cfg.GridStep != DefaultGridStep {
				t.Fatalf("gridStep should default, got %v", cfg.GridStep)
			}
			if cfg.Background != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
				t.Fatalf("unexpected background %v", cfg.Background)
			}
			wantObs := []Obstacle{
				{X: 100, Y: 200, W: 50, H: 60, CornerRadius: 8},
				{X: 400, Y: 500, W: 70, H: 80, CornerRadius: 0},
			}
			if !reflect.DeepEqual(cfg.Obstacles, wantObs) {
				t.Fatalf("obstacles mismatch: %+v", cfg.Obstacles)
			}
			if cfg.CameraLerp != 0.2 || cfg.EdgeFadeLerp != 0.5 {
				t.Fatalf("camera overrides not applied: %+v", cfg)
			}
			if cfg.EdgeFadeDistance != DefaultEdgeFadeDistance || cfg.EdgeFadeMaxAlpha != DefaultEdgeFadeMaxAlpha {
				t.Fatalf("edge fade fields should default: %+v", cfg)
			}
			if cfg.Zone != (Zone{X: 10, Y: 600, Size: 50}) {
				t.Fatalf("zone should resolve per field, got %+v", cfg.Zone)
			}
			if cfg.CameraZoom != 1 {
				t.Fatalf("camera zoom should start at 1, got %v", cfg.CameraZoom)
			}
		})
	}
}

func TestLoadConfigBackground(t *testing.T) {
	cases := []struct {
		name string
		bg   []float64
		want color.RGBA
	}{
		{"short_uses_default", []float64{1, 2}, DefaultBackground},
		{"long_uses_default", []float64{1, 2, 3, 4}, DefaultBackground},
		{"clamped", []float64{-5, 300, 127.6}, color.RGBA{R: 0, G: 255, B: 128, A: 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := LoadConfig(Document{World: &WorldDoc{BG: c.bg}})
			if cfg.Background != c.want {
				t.Fatalf("expected %v, got %v", c.want, cfg.Background)
			}
		})
	}
}

func TestLoadConfigAcceptsOutOfRange(t *testing.T) {
	d := -40.0
	cfg := LoadConfig(Document{Camera: &CameraDoc{EdgeFadeDistance: &d}})
	if cfg.EdgeFadeDistance != -40 {
		t.Fatalf("negative distance should be kept as-is, got %v", cfg.EdgeFadeDistance)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "edgeFadeDistance") {
		t.Fatalf("expected edgeFadeDistance validation error, got %v", err)
	}
}

func TestParseDocumentMalformed(t *testing.T) {
	if _, err := ParseDocument([]byte(`{"world":`), FormatJSON); err == nil {
		t.Fatalf("expected json error")
	}
	if _, err := ParseDocument([]byte("world: [1, 2"), FormatYAML); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"levels/default.json": FormatJSON,
		"arena.YAML":          FormatYAML,
		"arena.yml":           FormatYAML,
		"noext":               FormatJSON,
	}
	for path, want := range cases {
		if got := FormatFromPath(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.EdgeFadeDistance = 0
	cfg.EdgeFadeMaxAlpha = 300
	cfg.EdgeFadeLerp = 0
	cfg.Obstacles = []Obstacle{{CornerRadius: -1}}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, frag := range []string{"edgeFadeDistance", "edgeFadeMaxAlpha", "edgeLerp", "obstacle 0"} {
		if !strings.Contains(err.Error(), frag) {
			t.Fatalf("expected %q in %q", frag, err.Error())
		}
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Obstacles = append(cfg.Obstacles, Obstacle{X: 1})
	cp := cfg.Clone()
	cp.Obstacles[0].X = 99
	if cfg.Obstacles[0].X != 1 {
		t.Fatalf("clone shares obstacle storage")
	}
}

func TestConfigDocumentResolvesBack(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := LoadConfig(doc)
	if got := LoadConfig(cfg.Document()); !reflect.DeepEqual(got, cfg) {
		t.Fatalf("document did not resolve back:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestParseDocumentWrongTypedLeaves(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		f    Format
	}{
		{"json", `{
  "schemaVersion": 1.0,
  "world": {"w": "3000", "h": 900, "bg": [1, "x", 3], "gridStep": null},
  "obstacles": [{"x": 10, "y": "top", "w": 20, "h": 30}, "junk"],
  "camera": {"lerp": true, "edgeLerp": 0.5},
  "bigSquare": 42
}`, FormatJSON},
		{"yaml", `
schemaVersion: 1.0
world: {w: "3000", h: 900, bg: [1, x, 3], gridStep: ~}
obstacles:
  - {x: 10, y: top, w: 20, h: 30}
  - junk
camera: {lerp: true, edgeLerp: 0.5}
bigSquare: 42
`, FormatYAML},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(c.raw), c.f)
			if err != nil {
				t.Fatalf("wrong-typed leaves should not fail the document: %v", err)
			}
			cfg := LoadConfig(doc)
			if cfg.SchemaVersion != 1 {
				t.Fatalf("expected schema 1, got %d", cfg.SchemaVersion)
			}
			if cfg.Width != DefaultWidth || cfg.Height != 900 {
				t.Fatalf("expected %vx900, got %vx%v", DefaultWidth, cfg.Width, cfg.Height)
			}
			if cfg.GridStep != DefaultGridStep || cfg.Background != DefaultBackground {
				t.Fatalf("bad leaves should default: %+v", cfg)
			}
			want := []Obstacle{{X: 10, Y: 0, W: 20, H: 30}}
			if !reflect.DeepEqual(cfg.Obstacles, want) {
				t.Fatalf("obstacles mismatch: %+v", cfg.Obstacles)
			}
			if cfg.CameraLerp != DefaultCameraLerp || cfg.EdgeFadeLerp != 0.5 {
				t.Fatalf("camera leaves mismatch: %+v", cfg)
			}
			if cfg.Zone != DefaultZone {
				t.Fatalf("non-object bigSquare should default, got %+v", cfg.Zone)
			}
		})
	}
}

func TestParseDocumentNonObjectRoot(t *testing.T) {
	doc, err := ParseDocument([]byte(`[1, 2]`), FormatJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := LoadConfig(doc); !reflect.DeepEqual(got, DefaultConfig()) {
		t.Fatalf("expected defaults, got %+v", got)
	}
}
