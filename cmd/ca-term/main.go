package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"tricell/internal/app"
	"tricell/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 80, 40
	cfg.TPS = 15
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg.SimConfig(), cfg.Paused)
	if err != nil {
		log.Fatalf("create world: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	err = term.New(screen, session, cfg.TPS).Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
