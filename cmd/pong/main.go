// Command pong plays pong in a window against a computer opponent.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/pong"
	"github.com/phanxgames/pong/audio"
	"github.com/phanxgames/pong/ecs"
	"github.com/phanxgames/pong/spectate"
	"github.com/phanxgames/pong/window"
)

var (
	width      = flag.Int("width", 800, "window width in pixels")
	height     = flag.Int("height", 600, "window height in pixels")
	fixedSpeed = flag.Bool("fixed-speed", false, "keep the ball speed constant regardless of window width")
	seed       = flag.Uint64("seed", 0, "random seed for serves and bounces (0 picks one)")
	showFPS    = flag.Bool("fps", false, "show an FPS/TPS overlay")
	debug      = flag.Bool("debug", false, "log per-frame timing to stderr")
	tps        = flag.Int("tps", 60, "frames per second")
	script     = flag.String("script", "", "JSON input script to replay")
	shots      = flag.String("screenshots", "screenshots", "directory for screenshots")
	mute       = flag.Bool("mute", false, "disable sound")
	spectators = flag.String("spectate", "", "serve a websocket spectator feed on this address, e.g. :8080")
)

func main() {
	flag.Parse()

	cfg := pong.DefaultConfig()
	cfg.ScaleSpeed = !*fixedSpeed
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	m := pong.NewMatch(cfg, pong.NewRandomSource(*seed))
	world := donburi.NewWorld()

	rc := window.RunConfig{
		Title:         "Pong",
		Width:         *width,
		Height:        *height,
		ShowFPS:       *showFPS,
		TPS:           *tps,
		Debug:         *debug,
		ScreenshotDir: *shots,
		World:         world,
	}

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := window.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		rc.Script = runner
	}

	if !*mute {
		bank, err := audio.Init()
		if err != nil {
			// Non-fatal, the game runs without sound
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
		rc.OnFrame = func(s *pong.State) { hub.Publish(*s) }
	}

	if err := window.Run(m, rc); err != nil {
		log.Fatal(err)
	}
}
