package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config := domain.DefaultGameConfig()
	useTerminal := flag.Bool("term", false, "run in the terminal instead of a window")
	flag.IntVar(&config.Width, "width", config.Width, "board width in cells")
	flag.IntVar(&config.Height, "height", config.Height, "board height in cells")
	flag.IntVar(&config.CellSize, "cell", config.CellSize, "cell size in pixels")
	flag.Float64Var(&config.TickInterval, "tick", config.TickInterval, "seconds per snake step")
	flag.Uint64Var(&config.Seed, "seed", config.Seed, "random seed for apple placement (0 = time based)")
	flag.StringVar(&config.Title, "title", config.Title, "window title")
	flag.Parse()

	application, err := app.NewApp(config)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var host app.Host
	if *useTerminal {
		// The terminal belongs to tcell while it runs.
		log.SetOutput(io.Discard)
		screen, err := tcell.NewScreen()
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to open terminal: %v", err)
		}
		host = terminal.NewHost(application.Config(), application.Machine(), screen)
	} else {
		engine, err := graphics.NewEngine(application.Config(), application.Machine())
		if err != nil {
			log.Fatalf("Failed to create engine: %v", err)
		}
		host = engine
	}

	if err := application.Run(ctx, host); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("UI error: %v", err)
	}
}
