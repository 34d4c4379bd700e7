// Command pongterm plays pong in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/pong"
	"github.com/phanxgames/pong/audio"
	"github.com/phanxgames/pong/ecs"
	"github.com/phanxgames/pong/spectate"
	"github.com/phanxgames/pong/term"
)

var (
	fixedSpeed = flag.Bool("fixed-speed", false, "keep the ball speed constant regardless of terminal width")
	seed       = flag.Uint64("seed", 0, "random seed for serves and bounces (0 picks one)")
	tps        = flag.Int("tps", 60, "frames per second")
	hold       = flag.Int("hold", 20, "frames an arrow press keeps the paddle moving")
	mute       = flag.Bool("mute", false, "disable sound")
	spectators = flag.String("spectate", "", "serve a websocket spectator feed on this address, e.g. :8080")
	logFile    = flag.String("log", "", "write log output to this file instead of discarding it")
)

func main() {
	flag.Parse()

	cfg := pong.DefaultConfig()
	cfg.ScaleSpeed = !*fixedSpeed
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	// The terminal owns stdout and stderr while the game runs.
	closeLog, err := redirectLog(*logFile)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	defer closeLog()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()

	m := pong.NewMatch(cfg, pong.NewRandomSource(*seed))
	world := donburi.NewWorld()
	opts := term.Options{TPS: *tps, HoldFrames: *hold, World: world}

	if !*mute {
		bank, err := audio.Init()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			ecs.Subscribe(world, bank.OnEvent)
		}
	}

	if *spectators != "" {
		hub := spectate.NewHub()
		srv := spectate.Serve(*spectators, hub)
		defer srv.Close()
		defer hub.Close()
		ecs.Subscribe(world, hub.PublishEvent)
		opts.OnFrame = func(s *pong.State) { hub.Publish(*s) }
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.New(screen, m, opts).Run(ctx); err != nil {
		log.Printf("run: %v", err)
	}
}

func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
