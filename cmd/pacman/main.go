package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/absolutebasti/Pac-Man/internal/config"
	"github.com/absolutebasti/Pac-Man/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Pac-Man")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
