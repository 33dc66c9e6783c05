package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marklanglo/pong/audio"
	"github.com/marklanglo/pong/config"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/engine"
	"github.com/marklanglo/pong/input"
	"github.com/marklanglo/pong/render"
	"github.com/marklanglo/pong/scenes"
	"github.com/marklanglo/pong/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file (default "+config.DefaultPath+")")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under the log directory")
	seedFlag   = flag.Uint64("seed", 0, "Seed for the computer player, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with audio disabled")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	path, explicit := config.DefaultPath, false
	if *configFlag != "" {
		path, explicit = *configFlag, true
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		return 2
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *dumpFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "pong: %v\n", err)
			return 1
		}
		return 0
	}

	if cfg.Log.Dir != "" {
		logDir = cfg.Log.Dir
	}
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	// Every configured asset must load before the terminal is taken over
	bank, err := audio.LoadBank(&cfg.Audio)
	if err != nil {
		// ErrAssetLoad already reads "cannot open ..."
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetTerminalReset(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	var player audio.Player = audio.Silent{}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(&cfg.Audio, bank)
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	renderer := render.NewTerminalRenderer(screen, constants.FieldWidth, constants.FieldHeight)
	clock := engine.NewTimeProvider()

	source := input.NewSource(screen, clock, cfg.Input.InitialHold(), cfg.Input.RepeatHold(), renderer.Resync)
	source.Start()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("main: seed %d", seed)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()
	core.Go(func() { cancelOnClose(ctx, source.Done(), cancel) })

	table := scenes.Build(renderer, player, vmath.NewFastRand(seed))
	driver := engine.NewDriver(table, renderer, source, engine.NewFrameLimiter(clock))
	return driver.Run(ctx)
}

// cancelOnClose ends the run when the input stream closes under it
func cancelOnClose(ctx context.Context, done <-chan struct{}, cancel context.CancelFunc) {
	select {
	case <-done:
		log.Printf("main: input closed, shutting down")
		cancel()
	case <-ctx.Done():
	}
}
