package level

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a level. Every field is optional; a nil
// pointer means the key was absent and LoadConfig substitutes its default.
type Document struct {
	SchemaVersion *int          `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
	World         *WorldDoc     `json:"world,omitempty" yaml:"world,omitempty"`
	Obstacles     []ObstacleDoc `json:"obstacles,omitempty" yaml:"obstacles,omitempty"`
	Camera        *CameraDoc    `json:"camera,omitempty" yaml:"camera,omitempty"`
	BigSquare     *BigSquareDoc `json:"bigSquare,omitempty" yaml:"bigSquare,omitempty"`
}

type WorldDoc struct {
	W        *float64  `json:"w,omitempty" yaml:"w,omitempty"`
	H        *float64  `json:"h,omitempty" yaml:"h,omitempty"`
	BG       []float64 `json:"bg,omitempty" yaml:"bg,omitempty"`
	GridStep *float64  `json:"gridStep,omitempty" yaml:"gridStep,omitempty"`
}

type ObstacleDoc struct {
	X *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	W *float64 `json:"w,omitempty" yaml:"w,omitempty"`
	H *float64 `json:"h,omitempty" yaml:"h,omitempty"`
	// R is the corner radius.
	R *float64 `json:"r,omitempty" yaml:"r,omitempty"`
}

type CameraDoc struct {
	Lerp             *float64 `json:"lerp,omitempty" yaml:"lerp,omitempty"`
	EdgeFadeDistance *float64 `json:"edgeFadeDistance,omitempty" yaml:"edgeFadeDistance,omitempty"`
	EdgeFadeMaxAlpha *float64 `json:"edgeFadeMaxAlpha,omitempty" yaml:"edgeFadeMaxAlpha,omitempty"`
	EdgeLerp         *float64 `json:"edgeLerp,omitempty" yaml:"edgeLerp,omitempty"`
}

type BigSquareDoc struct {
	X    *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y    *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Size *float64 `json:"size,omitempty" yaml:"size,omitempty"`
}

// Format is the encoding of a level document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatFromPath picks the document format from the file extension. Anything
// that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseDocument decodes raw bytes into a Document. Only bytes that are not
// valid JSON/YAML are an error. A leaf of the wrong type is treated as absent
// so it resolves to its default without losing its siblings.
func ParseDocument(data []byte, f Format) (Document, error) {
	var raw any
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Document{}, fmt.Errorf("level: unmarshal yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return Document{}, fmt.Errorf("level: unmarshal json: %w", err)
		}
	}
	return documentFromTree(raw), nil
}

// Document returns a fully populated document that resolves back to c.
func (c Config) Document() Document {
	version := c.SchemaVersion
	doc := Document{
		SchemaVersion: &version,
		World: &WorldDoc{
			W:        ptr(c.Width),
			H:        ptr(c.Height),
			BG:       []float64{float64(c.Background.R), float64(c.Background.G), float64(c.Background.B)},
			GridStep: ptr(c.GridStep),
		},
		Camera: &CameraDoc{
			Lerp:             ptr(c.CameraLerp),
			EdgeFadeDistance: ptr(c.EdgeFadeDistance),
			EdgeFadeMaxAlpha: ptr(c.EdgeFadeMaxAlpha),
			EdgeLerp:         ptr(c.EdgeFadeLerp),
		},
		BigSquare: &BigSquareDoc{
			X:    ptr(c.Zone.X),
			Y:    ptr(c.Zone.Y),
			Size: ptr(c.Zone.Size),
		},
	}
	for _, o := range c.Obstacles {
		doc.Obstacles = append(doc.Obstacles, ObstacleDoc{
			X: ptr(o.X),
			Y: ptr(o.Y),
			W: ptr(o.W),
			H: ptr(o.H),
			R: ptr(o.CornerRadius),
		})
	}
	return doc
}

func ptr(v float64) *float64 {
	return &v
}
