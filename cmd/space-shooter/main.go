package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/engine"
	"github.com/lixenwraith/space-shooter/game"
	"github.com/lixenwraith/space-shooter/input"
	"github.com/lixenwraith/space-shooter/render"
	"github.com/lixenwraith/space-shooter/terminal"
	"github.com/lixenwraith/space-shooter/window"
	"github.com/pkg/profile"
)

var (
	backendFlag = flag.String("backend", "terminal", "Renderer: terminal, window")
	colorFlag   = flag.String("color", "auto", "Terminal color mode: auto, truecolor, 256")
	assetsFlag  = flag.String("assets", constants.AssetsDir, "Directory holding the ship images")
	configFlag  = flag.String("config", "", "Optional TOML tuning file")
	seedFlag    = flag.Int64("seed", 0, "Enemy spawn seed (0 = time based)")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to "+constants.LogDir+"/")
	profileFlag = flag.String("profile", "", "Write a profile to the working directory: cpu, mem")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *profileFlag != "" {
		p, err := startProfile(*profileFlag)
		if err != nil {
			fatal(err)
		}
		defer p.Stop()
	}

	cfg := engine.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configFlag, cfg); err != nil {
			fatal(err)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Backend %s, seed %d, config %+v", *backendFlag, seed, cfg)

	sim := engine.NewSimulation(cfg, rand.New(rand.NewSource(seed)))
	clock := engine.NewMonotonicClock()
	paths := render.DefaultAssetPaths(*assetsFlag)

	var err error
	switch *backendFlag {
	case "window":
		err = runWindow(cfg, sim, paths, clock)
	case "terminal":
		err = runTerminal(cfg, sim, paths, clock)
	default:
		err = fmt.Errorf("unknown backend %q", *backendFlag)
	}
	if err != nil {
		fatal(err)
	}
	log.Printf("Exited after %d frames", sim.State().Frame)
}

func runTerminal(cfg engine.Config, sim *engine.Simulation, paths render.AssetPaths, clock engine.Clock) error {
	screen, err := terminal.Open(terminal.ParseColorMode(*colorFlag), cfg.ScreenWidth, cfg.ScreenHeight)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Close()

	sheet, err := render.LoadSpriteSheet(terminal.TextureLoader{}, paths, cfg)
	if err != nil {
		return err
	}

	keys := input.NewHoldTracker(clock, constants.KeyHoldTimeout)
	events := terminal.NewEvents(screen, keys)
	events.Start(crash)

	loop := game.NewLoop(sim, render.NewFrameRenderer(sheet), game.Platform{
		Keys:    keys,
		Events:  events,
		Clock:   clock,
		Surface: screen,
		Pacer:   game.SleepPacer{Delay: cfg.FrameDelay},
	})
	loop.Run()
	return nil
}

func runWindow(cfg engine.Config, sim *engine.Simulation, paths render.AssetPaths, clock engine.Clock) error {
	sheet, err := render.LoadSpriteSheet(window.Loader{}, paths, cfg)
	if err != nil {
		return err
	}
	loop := game.NewLoop(sim, render.NewFrameRenderer(sheet), window.Platform(clock))
	return window.Run(cfg, loop)
}

func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
	}
	return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem)", mode)
}

// crash restores the terminal and prints the panic; safe to call from any goroutine
func crash(r any) {
	terminal.EmergencyReset(os.Stdout)
	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSPACE-SHOOTER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func fatal(err error) {
	log.Printf("Fatal: %v", err)
	fmt.Fprintf(os.Stderr, "space-shooter: %v\n", err)
	os.Exit(1)
}
