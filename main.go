package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional) or a path to a level file")
	watch := flag.Bool("watch", true, "reload the level when its file under levels/ changes")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("worldlevel")

	game := NewGame(*levelName, *watch)
	err := ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
