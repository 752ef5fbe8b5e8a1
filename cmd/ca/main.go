//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tricell/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg.SimConfig(), cfg.Paused)
	if err != nil {
		log.Fatalf("create world: %v", err)
	}

	game := app.New(session, cfg.Scale)
	size := session.World().Size()

	ebiten.SetWindowTitle("tricell — " + session.World().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
