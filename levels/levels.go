// Package levels loads level documents. A file under levels/ on disk wins
// over the copy embedded in the binary so levels can be edited while the
// game runs.
package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/worldlevel/level"
)

//go:embed *.json
var LevelsFS embed.FS

// Dir is the on-disk directory searched before the embedded files.
var Dir = "levels"

const DefaultName = "default.json"

// Load returns the raw bytes of the named level. The .json extension is
// optional.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := LevelsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return data, nil
}

// LoadDocument loads and decodes the named level.
func LoadDocument(name string) (level.Document, error) {
	data, err := Load(name)
	if err != nil {
		return level.Document{}, err
	}
	clean := cleanLevelPath(name)
	doc, err := level.ParseDocument(data, level.FormatFromPath(clean))
	if err != nil {
		return level.Document{}, fmt.Errorf("levels: parse %s: %w", clean, err)
	}
	return doc, nil
}

// LoadFile decodes a level document from an arbitrary path.
func LoadFile(path string) (level.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return level.Document{}, fmt.Errorf("levels: read %s: %w", path, err)
	}
	doc, err := level.ParseDocument(data, level.FormatFromPath(path))
	if err != nil {
		return level.Document{}, fmt.Errorf("levels: parse %s: %w", path, err)
	}
	return doc, nil
}

// Resolve loads name as a file path when it points at an existing file, and
// as a level name otherwise.
func Resolve(name string) (level.Document, error) {
	if name == "" {
		name = DefaultName
	}
	if isFile(name) {
		return LoadFile(name)
	}
	return LoadDocument(name)
}

// Path is the disk file Resolve reads for name: name itself when it is an
// existing file, otherwise its override location under Dir, which may not
// exist yet.
func Path(name string) string {
	if name == "" {
		name = DefaultName
	}
	p := filepath.Join(Dir, filepath.FromSlash(cleanLevelPath(name)))
	if isFile(name) {
		p = name
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func cleanLevelPath(name string) string {
	if name == "" {
		return DefaultName
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if !isLevelFile(s) {
		s += ".json"
	}
	return s
}

func isLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
