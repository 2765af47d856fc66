// Command levelinfo resolves a level document, prints it with every default
// filled in and simulates the edge film for a player held at one position.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/worldlevel/level"
	"github.com/milk9111/worldlevel/levels"
)

type options struct {
	frames int
	x, y   float64
}

func (o options) validate() error {
	if o.frames < 0 {
		return fmt.Errorf("-frames must be >= 0, got %d", o.frames)
	}
	return nil
}

func main() {
	var opts options
	levelName := flag.String("level", "", "level name in levels/ or a path to a level file")
	flag.IntVar(&opts.frames, "frames", 30, "frames of edge film smoothing to simulate")
	flag.Float64Var(&opts.x, "x", 0, "player x in world units")
	flag.Float64Var(&opts.y, "y", 800, "player y in world units")
	flag.Parse()

	if err := opts.validate(); err != nil {
		log.Fatalf("levelinfo: %v", err)
	}

	doc, err := levels.Resolve(*levelName)
	if err != nil {
		log.Fatalf("levelinfo: %v", err)
	}
	if err := report(os.Stdout, level.LoadConfig(doc), opts); err != nil {
		log.Fatalf("levelinfo: %v", err)
	}
}

func report(w io.Writer, cfg level.Config, opts options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Document()); err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode level: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(w, "# warning: %s\n", strings.ReplaceAll(err.Error(), "\n", "\n# warning: "))
	}

	lvl := level.New(cfg)
	p := level.Point{X: opts.x, Y: opts.y}
	fmt.Fprintf(w, "# player %v,%v  in square: %t  target alpha: %.3f\n",
		opts.x, opts.y, lvl.Contains(p), lvl.TargetAlpha(opts.x, opts.y))
	for i := 1; i <= opts.frames; i++ {
		lvl.Update(opts.x, opts.y)
		fmt.Fprintf(w, "# frame %3d  alpha %.3f\n", i, lvl.EdgeFilmAlpha())
	}
	return nil
}
