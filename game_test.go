package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/worldlevel/level"
	"github.com/milk9111/worldlevel/levels"
)

func TestGameWatchesResolvedLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "arena.json")
	if err := os.WriteFile(file, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		level   string
		changed string
		want    bool
	}{
		{"default_level", "", filepath.Join(levels.Dir, "default.json"), true},
		{"name_without_ext", "arena", filepath.Join(levels.Dir, "arena.json"), true},
		{"path_level", file, file, true},
		{"same_basename_elsewhere", file, filepath.Join(levels.Dir, "arena.json"), false},
		{"other_file", "arena", filepath.Join(levels.Dir, "default.json"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := &Game{levelName: c.level, levelPath: levels.Path(c.level)}
			if got := g.watches(c.changed); got != c.want {
				t.Fatalf("watches(%q) with level %q = %v, want %v", c.changed, c.level, got, c.want)
			}
		})
	}
}

func TestGameReloadKeepsLevelOnFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "arena.json")
	if err := os.WriteFile(file, []byte(`{"world":{"w":800}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	g := &Game{levelName: file, levelPath: levels.Path(file)}
	if err := g.reloadLevel(); err != nil {
		t.Fatalf("initial load: %v", err)
	}
	before := g.level
	if w, _ := g.level.Bounds(); w != 800 {
		t.Fatalf("expected width 800, got %v", w)
	}

	if err := os.WriteFile(file, []byte(`{"world":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.reloadLevel(); err == nil {
		t.Fatalf("expected an error for a half-written level")
	}
	if g.level != before {
		t.Fatalf("failed reload replaced the running level")
	}

	if err := os.WriteFile(file, []byte(`{"world":{"w":500}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.reloadLevel(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if w, _ := g.level.Bounds(); w != 500 {
		t.Fatalf("expected width 500 after reload, got %v", w)
	}
	if g.cfg.Width != 500 || g.level.Zone() != level.DefaultZone {
		t.Fatalf("game config not refreshed: %+v", g.cfg)
	}
}

func TestGameCloseStopsWatcher(t *testing.T) {
	w, err := levels.NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	g := &Game{watcher: w}
	g.Close()
	if g.watcher != nil {
		t.Fatalf("watcher should be released after Close")
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("watcher events should be closed")
	}
	g.Close()
}
