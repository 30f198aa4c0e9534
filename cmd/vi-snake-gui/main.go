package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render/gui"
	"github.com/lixenwraith/vi-snake/status"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// The window leaves stderr free, debug sends the loop log there
	if !flags.Debug {
		log.SetOutput(io.Discard)
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake-gui: %v\n", err)
		os.Exit(2)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake-gui: keymap: %v\n", err)
		os.Exit(2)
	}

	if !flags.Debug {
		rl.SetTraceLogLevel(rl.LogNone)
	}
	rl.InitWindow(int32(cfg.CanvasWidth), int32(cfg.CanvasHeight), "vi-snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(time.Second / cfg.FrameInterval.Duration))
	// Escape is bound through the keymap, not raylib's close key
	rl.SetExitKey(0)

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Sound
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}
	defer sound.Cleanup()

	metrics := status.NewRegistry()

	renderer := gui.NewRenderer()
	renderer.SetMuted(sound.Muted())

	clock := gui.NewFrameClock()
	loop, err := engine.NewLoop(clock, renderer, engine.LoopConfig{
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
		CellSize:     cfg.GridSize(),
		StepInterval: cfg.StepInterval.Duration,
		Dark:         cfg.Dark,
		Seed:         cfg.Seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake-gui: %v\n", err)
		os.Exit(1)
	}
	loop.AddListener(sound)
	loop.AddListener(metrics)

	handler := input.NewInputHandler(keys, loop, sound, renderer)

	loop.Start()
	for !rl.WindowShouldClose() {
		if !dispatch(handler, gui.PollActions(keys)) {
			break
		}
		clock.Poll()
		renderer.Draw()
	}
	loop.Stop()

	if flags.Stats {
		if err := metrics.WriteSummary(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "vi-snake-gui: metrics: %v\n", err)
		}
	}
}

// dispatch applies a frame's actions in order, false once one quits
func dispatch(h *input.InputHandler, actions []input.Action) bool {
	for _, a := range actions {
		if !h.Dispatch(a) {
			return false
		}
	}
	return true
}
