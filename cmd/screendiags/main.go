//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"screendiags/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)

	ebiten.SetWindowTitle("screendiags — F1 toggles the overlay")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.ScreenW*cfg.Scale, app.ScreenH*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
