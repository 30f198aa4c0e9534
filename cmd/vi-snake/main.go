package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := setupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(2)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: keymap: %v\n", err)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vi-snake: needs an interactive terminal, try vi-snake-gui")
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// Audio is optional, a missing device leaves the game silent
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Sound
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}
	defer sound.Cleanup()

	metrics := status.NewRegistry()

	renderer := render.NewTerminalRenderer(screen)
	renderer.SetMuted(sound.Muted())

	clock := engine.NewTimerClock(cfg.FrameInterval.Duration, nil)
	loop, err := engine.NewLoop(clock, renderer, engine.LoopConfig{
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
		CellSize:     cfg.GridSize(),
		StepInterval: cfg.StepInterval.Duration,
		Dark:         cfg.Dark,
		Seed:         cfg.Seed,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
	loop.AddListener(sound)
	loop.AddListener(metrics)

	handler := input.NewInputHandler(keys, loop, sound, renderer)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	loop.Start()
	run(clock, screen, handler, events)

	loop.Stop()
	clock.Close()
	close(quit)
	core.SetCrashFinalizer(nil)
	screen.Fini()

	if flags.Stats {
		if err := metrics.WriteSummary(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "vi-snake: metrics: %v\n", err)
		}
	}
}

// run owns the loop goroutine: frame callbacks and input are serialized here
func run(clock *engine.TimerClock, screen tcell.Screen, handler *input.InputHandler, events <-chan tcell.Event) {
	for {
		select {
		case fire := <-clock.C():
			fire()
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			if !handler.HandleEvent(ev) {
				return
			}
		}
	}
}
