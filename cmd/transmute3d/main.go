package main

import (
	"flag"
	"log"

	"transmute3d/internal/game"
)

func main() {
	levels := flag.String("levels", "", "stage file to run instead of the built-in set (YAML)")
	watch := flag.Bool("watch", false, "reload the stage file whenever it changes on disk")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	g, err := game.New(game.Config{
		LevelPath: *levels,
		Watch:     *watch,
		Width:     int32(*width),
		Height:    int32(*height),
	})
	if err != nil {
		log.Fatalf("transmute3d: %v", err)
	}
	g.Run()
}
